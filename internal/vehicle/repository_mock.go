// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=vehicle
//

// Package vehicle is a generated GoMock package.
package vehicle

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

// CreateVehicle mocks base method.
func (m *MockRepository) CreateVehicle(ctx context.Context, v *Vehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateVehicle", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateVehicle indicates an expected call of CreateVehicle.
func (mr *MockRepositoryMockRecorder) CreateVehicle(ctx, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateVehicle", reflect.TypeOf((*MockRepository)(nil).CreateVehicle), ctx, v)
}

// DeleteVehicle mocks base method.
func (m *MockRepository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteVehicle", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteVehicle indicates an expected call of DeleteVehicle.
func (mr *MockRepositoryMockRecorder) DeleteVehicle(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteVehicle", reflect.TypeOf((*MockRepository)(nil).DeleteVehicle), ctx, id)
}

// GetVehicle mocks base method.
func (m *MockRepository) GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetVehicle", ctx, id)
	ret0, _ := ret[0].(*Vehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetVehicle indicates an expected call of GetVehicle.
func (mr *MockRepositoryMockRecorder) GetVehicle(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetVehicle", reflect.TypeOf((*MockRepository)(nil).GetVehicle), ctx, id)
}

// ListVehicles mocks base method.
func (m *MockRepository) ListVehicles(ctx context.Context, filter ListFilter) ([]*Vehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListVehicles", ctx, filter)
	ret0, _ := ret[0].([]*Vehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListVehicles indicates an expected call of ListVehicles.
func (mr *MockRepositoryMockRecorder) ListVehicles(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListVehicles", reflect.TypeOf((*MockRepository)(nil).ListVehicles), ctx, filter)
}

// UpdateVehicle mocks base method.
func (m *MockRepository) UpdateVehicle(ctx context.Context, v *Vehicle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateVehicle", ctx, v)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateVehicle indicates an expected call of UpdateVehicle.
func (mr *MockRepositoryMockRecorder) UpdateVehicle(ctx, v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateVehicle", reflect.TypeOf((*MockRepository)(nil).UpdateVehicle), ctx, v)
}
