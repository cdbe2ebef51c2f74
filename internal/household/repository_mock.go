// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=household
//

// Package household is a generated GoMock package.
package household

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

// AddMember mocks base method.
func (m *MockRepository) AddMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMember", ctx, householdID, residentID)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddMember indicates an expected call of AddMember.
func (mr *MockRepositoryMockRecorder) AddMember(ctx, householdID, residentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockRepository)(nil).AddMember), ctx, householdID, residentID)
}

// CreateHousehold mocks base method.
func (m *MockRepository) CreateHousehold(ctx context.Context, h *Household) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateHousehold", ctx, h)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateHousehold indicates an expected call of CreateHousehold.
func (mr *MockRepositoryMockRecorder) CreateHousehold(ctx, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateHousehold", reflect.TypeOf((*MockRepository)(nil).CreateHousehold), ctx, h)
}

// DeleteHousehold mocks base method.
func (m *MockRepository) DeleteHousehold(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteHousehold", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteHousehold indicates an expected call of DeleteHousehold.
func (mr *MockRepositoryMockRecorder) DeleteHousehold(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteHousehold", reflect.TypeOf((*MockRepository)(nil).DeleteHousehold), ctx, id)
}

// GetHousehold mocks base method.
func (m *MockRepository) GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHousehold", ctx, id)
	ret0, _ := ret[0].(*Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHousehold indicates an expected call of GetHousehold.
func (mr *MockRepositoryMockRecorder) GetHousehold(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHousehold", reflect.TypeOf((*MockRepository)(nil).GetHousehold), ctx, id)
}

// ListHouseholds mocks base method.
func (m *MockRepository) ListHouseholds(ctx context.Context) ([]*Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHouseholds", ctx)
	ret0, _ := ret[0].([]*Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHouseholds indicates an expected call of ListHouseholds.
func (mr *MockRepositoryMockRecorder) ListHouseholds(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHouseholds", reflect.TypeOf((*MockRepository)(nil).ListHouseholds), ctx)
}

// RemoveMember mocks base method.
func (m *MockRepository) RemoveMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMember", ctx, householdID, residentID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockRepositoryMockRecorder) RemoveMember(ctx, householdID, residentID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockRepository)(nil).RemoveMember), ctx, householdID, residentID)
}

// UpdateHousehold mocks base method.
func (m *MockRepository) UpdateHousehold(ctx context.Context, h *Household) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateHousehold", ctx, h)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateHousehold indicates an expected call of UpdateHousehold.
func (mr *MockRepositoryMockRecorder) UpdateHousehold(ctx, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHousehold", reflect.TypeOf((*MockRepository)(nil).UpdateHousehold), ctx, h)
}
