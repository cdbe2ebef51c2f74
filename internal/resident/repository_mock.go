// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=resident
//

// Package resident is a generated GoMock package.
package resident

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// BeginImport mocks base method.
func (m *MockRepository) BeginImport(ctx context.Context, nationalIDs []string) (ImportTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BeginImport", ctx, nationalIDs)
	ret0, _ := ret[0].(ImportTx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BeginImport indicates an expected call of BeginImport.
func (mr *MockRepositoryMockRecorder) BeginImport(ctx, nationalIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BeginImport", reflect.TypeOf((*MockRepository)(nil).BeginImport), ctx, nationalIDs)
}

// CreateResident mocks base method.
func (m *MockRepository) CreateResident(ctx context.Context, res *Resident) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResident", ctx, res)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateResident indicates an expected call of CreateResident.
func (mr *MockRepositoryMockRecorder) CreateResident(ctx, res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResident", reflect.TypeOf((*MockRepository)(nil).CreateResident), ctx, res)
}

// DeleteResident mocks base method.
func (m *MockRepository) DeleteResident(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteResident", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteResident indicates an expected call of DeleteResident.
func (mr *MockRepositoryMockRecorder) DeleteResident(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteResident", reflect.TypeOf((*MockRepository)(nil).DeleteResident), ctx, id)
}

// GetResident mocks base method.
func (m *MockRepository) GetResident(ctx context.Context, id uuid.UUID) (*Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResident", ctx, id)
	ret0, _ := ret[0].(*Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetResident indicates an expected call of GetResident.
func (mr *MockRepositoryMockRecorder) GetResident(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResident", reflect.TypeOf((*MockRepository)(nil).GetResident), ctx, id)
}

// ListResidents mocks base method.
func (m *MockRepository) ListResidents(ctx context.Context, filter ListFilter) ([]*Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListResidents", ctx, filter)
	ret0, _ := ret[0].([]*Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListResidents indicates an expected call of ListResidents.
func (mr *MockRepositoryMockRecorder) ListResidents(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListResidents", reflect.TypeOf((*MockRepository)(nil).ListResidents), ctx, filter)
}

// UpdateResident mocks base method.
func (m *MockRepository) UpdateResident(ctx context.Context, res *Resident) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResident", ctx, res)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateResident indicates an expected call of UpdateResident.
func (mr *MockRepositoryMockRecorder) UpdateResident(ctx, res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResident", reflect.TypeOf((*MockRepository)(nil).UpdateResident), ctx, res)
}

// MockImportTx is a mock of ImportTx interface.
type MockImportTx struct {
	ctrl     *gomock.Controller
	recorder *MockImportTxMockRecorder
	isgomock struct{}
}

// MockImportTxMockRecorder is the mock recorder for MockImportTx.
type MockImportTxMockRecorder struct {
	mock *MockImportTx
}

// NewMockImportTx creates a new mock instance.
func NewMockImportTx(ctrl *gomock.Controller) *MockImportTx {
	mock := &MockImportTx{ctrl: ctrl}
	mock.recorder = &MockImportTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockImportTx) EXPECT() *MockImportTxMockRecorder {
	return m.recorder
}

// Commit mocks base method.
func (m *MockImportTx) Commit() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Commit")
	ret0, _ := ret[0].(error)
	return ret0
}

// Commit indicates an expected call of Commit.
func (mr *MockImportTxMockRecorder) Commit() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockImportTx)(nil).Commit))
}

// CreateResidents mocks base method.
func (m *MockImportTx) CreateResidents(ctx context.Context, residents []*Resident) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResidents", ctx, residents)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateResidents indicates an expected call of CreateResidents.
func (mr *MockImportTxMockRecorder) CreateResidents(ctx, residents any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResidents", reflect.TypeOf((*MockImportTx)(nil).CreateResidents), ctx, residents)
}

// FindDuplicates mocks base method.
func (m *MockImportTx) FindDuplicates(ctx context.Context, nationalIDs []string) ([]*Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindDuplicates", ctx, nationalIDs)
	ret0, _ := ret[0].([]*Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindDuplicates indicates an expected call of FindDuplicates.
func (mr *MockImportTxMockRecorder) FindDuplicates(ctx, nationalIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindDuplicates", reflect.TypeOf((*MockImportTx)(nil).FindDuplicates), ctx, nationalIDs)
}

// Rollback mocks base method.
func (m *MockImportTx) Rollback() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rollback")
	ret0, _ := ret[0].(error)
	return ret0
}

// Rollback indicates an expected call of Rollback.
func (mr *MockImportTxMockRecorder) Rollback() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockImportTx)(nil).Rollback))
}
