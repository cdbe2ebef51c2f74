// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=repository_mock.go -package=payment
//

// Package payment is a generated GoMock package.
package payment

import (
	context "context"
	reflect "reflect"
	time "time"

	uuid "github.com/google/uuid"
	fee "github.com/hmdang/bluemoon/internal/fee"
	household "github.com/hmdang/bluemoon/internal/household"
	vehicle "github.com/hmdang/bluemoon/internal/vehicle"
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

// CreatePayment mocks base method.
func (m *MockRepository) CreatePayment(ctx context.Context, p *Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePayment", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreatePayment indicates an expected call of CreatePayment.
func (mr *MockRepositoryMockRecorder) CreatePayment(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePayment", reflect.TypeOf((*MockRepository)(nil).CreatePayment), ctx, p)
}

// DeletePayment mocks base method.
func (m *MockRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePayment", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePayment indicates an expected call of DeletePayment.
func (mr *MockRepositoryMockRecorder) DeletePayment(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePayment", reflect.TypeOf((*MockRepository)(nil).DeletePayment), ctx, id)
}

// GetPayment mocks base method.
func (m *MockRepository) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPayment", ctx, id)
	ret0, _ := ret[0].(*Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPayment indicates an expected call of GetPayment.
func (mr *MockRepositoryMockRecorder) GetPayment(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPayment", reflect.TypeOf((*MockRepository)(nil).GetPayment), ctx, id)
}

// ListPayments mocks base method.
func (m *MockRepository) ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPayments", ctx, filter)
	ret0, _ := ret[0].([]*Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPayments indicates an expected call of ListPayments.
func (mr *MockRepositoryMockRecorder) ListPayments(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPayments", reflect.TypeOf((*MockRepository)(nil).ListPayments), ctx, filter)
}

// UpdatePayment mocks base method.
func (m *MockRepository) UpdatePayment(ctx context.Context, p *Payment) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePayment", ctx, p)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdatePayment indicates an expected call of UpdatePayment.
func (mr *MockRepositoryMockRecorder) UpdatePayment(ctx, p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePayment", reflect.TypeOf((*MockRepository)(nil).UpdatePayment), ctx, p)
}

// UpdateStatus mocks base method.
func (m *MockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, paidAt *time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, id, status, paidAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRepositoryMockRecorder) UpdateStatus(ctx, id, status, paidAt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRepository)(nil).UpdateStatus), ctx, id, status, paidAt)
}

// MockFeeSource is a mock of FeeSource interface.
type MockFeeSource struct {
	ctrl     *gomock.Controller
	recorder *MockFeeSourceMockRecorder
	isgomock struct{}
}

// MockFeeSourceMockRecorder is the mock recorder for MockFeeSource.
type MockFeeSourceMockRecorder struct {
	mock *MockFeeSource
}

// NewMockFeeSource creates a new mock instance.
func NewMockFeeSource(ctrl *gomock.Controller) *MockFeeSource {
	mock := &MockFeeSource{ctrl: ctrl}
	mock.recorder = &MockFeeSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFeeSource) EXPECT() *MockFeeSourceMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockFeeSource) Get(ctx context.Context, id uuid.UUID) (*fee.Fee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*fee.Fee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockFeeSourceMockRecorder) Get(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockFeeSource)(nil).Get), ctx, id)
}

// MockHouseholdSource is a mock of HouseholdSource interface.
type MockHouseholdSource struct {
	ctrl     *gomock.Controller
	recorder *MockHouseholdSourceMockRecorder
	isgomock struct{}
}

// MockHouseholdSourceMockRecorder is the mock recorder for MockHouseholdSource.
type MockHouseholdSourceMockRecorder struct {
	mock *MockHouseholdSource
}

// NewMockHouseholdSource creates a new mock instance.
func NewMockHouseholdSource(ctrl *gomock.Controller) *MockHouseholdSource {
	mock := &MockHouseholdSource{ctrl: ctrl}
	mock.recorder = &MockHouseholdSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHouseholdSource) EXPECT() *MockHouseholdSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockHouseholdSource) List(ctx context.Context) ([]*household.Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*household.Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockHouseholdSourceMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockHouseholdSource)(nil).List), ctx)
}

// MockVehicleSource is a mock of VehicleSource interface.
type MockVehicleSource struct {
	ctrl     *gomock.Controller
	recorder *MockVehicleSourceMockRecorder
	isgomock struct{}
}

// MockVehicleSourceMockRecorder is the mock recorder for MockVehicleSource.
type MockVehicleSourceMockRecorder struct {
	mock *MockVehicleSource
}

// NewMockVehicleSource creates a new mock instance.
func NewMockVehicleSource(ctrl *gomock.Controller) *MockVehicleSource {
	mock := &MockVehicleSource{ctrl: ctrl}
	mock.recorder = &MockVehicleSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVehicleSource) EXPECT() *MockVehicleSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockVehicleSource) List(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*vehicle.Vehicle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockVehicleSourceMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockVehicleSource)(nil).List), ctx, filter)
}
