// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=fee
//

// Package fee is a generated GoMock package.
package fee

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

// CreateCollection mocks base method.
func (m *MockRepository) CreateCollection(ctx context.Context, c *Collection) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCollection", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateCollection indicates an expected call of CreateCollection.
func (mr *MockRepositoryMockRecorder) CreateCollection(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCollection", reflect.TypeOf((*MockRepository)(nil).CreateCollection), ctx, c)
}

// CreateFee mocks base method.
func (m *MockRepository) CreateFee(ctx context.Context, f *Fee) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateFee", ctx, f)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateFee indicates an expected call of CreateFee.
func (mr *MockRepositoryMockRecorder) CreateFee(ctx, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateFee", reflect.TypeOf((*MockRepository)(nil).CreateFee), ctx, f)
}

// DeleteCollection mocks base method.
func (m *MockRepository) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCollection", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCollection indicates an expected call of DeleteCollection.
func (mr *MockRepositoryMockRecorder) DeleteCollection(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCollection", reflect.TypeOf((*MockRepository)(nil).DeleteCollection), ctx, id)
}

// DeleteFee mocks base method.
func (m *MockRepository) DeleteFee(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteFee", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteFee indicates an expected call of DeleteFee.
func (mr *MockRepositoryMockRecorder) DeleteFee(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteFee", reflect.TypeOf((*MockRepository)(nil).DeleteFee), ctx, id)
}

// GetCollection mocks base method.
func (m *MockRepository) GetCollection(ctx context.Context, id uuid.UUID) (*Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollection", ctx, id)
	ret0, _ := ret[0].(*Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollection indicates an expected call of GetCollection.
func (mr *MockRepositoryMockRecorder) GetCollection(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollection", reflect.TypeOf((*MockRepository)(nil).GetCollection), ctx, id)
}

// GetFee mocks base method.
func (m *MockRepository) GetFee(ctx context.Context, id uuid.UUID) (*Fee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetFee", ctx, id)
	ret0, _ := ret[0].(*Fee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetFee indicates an expected call of GetFee.
func (mr *MockRepositoryMockRecorder) GetFee(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetFee", reflect.TypeOf((*MockRepository)(nil).GetFee), ctx, id)
}

// ListCollections mocks base method.
func (m *MockRepository) ListCollections(ctx context.Context) ([]*Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCollections", ctx)
	ret0, _ := ret[0].([]*Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCollections indicates an expected call of ListCollections.
func (mr *MockRepositoryMockRecorder) ListCollections(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCollections", reflect.TypeOf((*MockRepository)(nil).ListCollections), ctx)
}

// ListFees mocks base method.
func (m *MockRepository) ListFees(ctx context.Context, filter ListFilter) ([]*Fee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListFees", ctx, filter)
	ret0, _ := ret[0].([]*Fee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListFees indicates an expected call of ListFees.
func (mr *MockRepositoryMockRecorder) ListFees(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListFees", reflect.TypeOf((*MockRepository)(nil).ListFees), ctx, filter)
}

// UpdateCollection mocks base method.
func (m *MockRepository) UpdateCollection(ctx context.Context, c *Collection) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCollection", ctx, c)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCollection indicates an expected call of UpdateCollection.
func (mr *MockRepositoryMockRecorder) UpdateCollection(ctx, c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCollection", reflect.TypeOf((*MockRepository)(nil).UpdateCollection), ctx, c)
}

// UpdateFee mocks base method.
func (m *MockRepository) UpdateFee(ctx context.Context, f *Fee) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateFee", ctx, f)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateFee indicates an expected call of UpdateFee.
func (mr *MockRepositoryMockRecorder) UpdateFee(ctx, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateFee", reflect.TypeOf((*MockRepository)(nil).UpdateFee), ctx, f)
}
