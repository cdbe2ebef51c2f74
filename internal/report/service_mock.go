// Code generated by MockGen. DO NOT EDIT.
// Source: service.go
//
// Generated by this command:
//
//	mockgen -source=service.go -destination=service_mock.go -package=report
//

// Package report is a generated GoMock package.
package report

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	fee "github.com/hmdang/bluemoon/internal/fee"
	payment "github.com/hmdang/bluemoon/internal/payment"
	gomock "go.uber.org/mock/gomock"
)

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

// GetCollection mocks base method.
func (m *MockFeeSource) GetCollection(ctx context.Context, id uuid.UUID) (*fee.Collection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCollection", ctx, id)
	ret0, _ := ret[0].(*fee.Collection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCollection indicates an expected call of GetCollection.
func (mr *MockFeeSourceMockRecorder) GetCollection(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCollection", reflect.TypeOf((*MockFeeSource)(nil).GetCollection), ctx, id)
}

// List mocks base method.
func (m *MockFeeSource) List(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*fee.Fee)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockFeeSourceMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockFeeSource)(nil).List), ctx, filter)
}

// MockPaymentSource is a mock of PaymentSource interface.
type MockPaymentSource struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentSourceMockRecorder
	isgomock struct{}
}

// MockPaymentSourceMockRecorder is the mock recorder for MockPaymentSource.
type MockPaymentSourceMockRecorder struct {
	mock *MockPaymentSource
}

// NewMockPaymentSource creates a new mock instance.
func NewMockPaymentSource(ctrl *gomock.Controller) *MockPaymentSource {
	mock := &MockPaymentSource{ctrl: ctrl}
	mock.recorder = &MockPaymentSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentSource) EXPECT() *MockPaymentSourceMockRecorder {
	return m.recorder
}

// List mocks base method.
func (m *MockPaymentSource) List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter)
	ret0, _ := ret[0].([]*payment.Payment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockPaymentSourceMockRecorder) List(ctx, filter any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockPaymentSource)(nil).List), ctx, filter)
}
