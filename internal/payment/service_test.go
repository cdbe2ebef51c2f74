package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/household"
	"github.com/hmdang/bluemoon/internal/payment"
	"github.com/hmdang/bluemoon/internal/vehicle"
)

var testTariff = payment.Tariff{
	Motorbike:        70_000,
	Car:              1_200_000,
	ManagementPerSqm: 7_000,
	ServicePerSqm:    10_000,
}

type serviceMocks struct {
	repo       *payment.MockRepository
	fees       *payment.MockFeeSource
	households *payment.MockHouseholdSource
	vehicles   *payment.MockVehicleSource
}

func newService(t *testing.T) (*payment.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:       payment.NewMockRepository(ctrl),
		fees:       payment.NewMockFeeSource(ctrl),
		households: payment.NewMockHouseholdSource(ctrl),
		vehicles:   payment.NewMockVehicleSource(ctrl),
	}

	svc := payment.NewService(m.repo, m.fees, m.households, m.vehicles, testTariff)

	return svc, m
}

func TestService_Disburse_VehicleFee(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()
	h1 := &household.Household{ID: uuid.New(), Address: "A-101", Area: 50}
	h2 := &household.Household{ID: uuid.New(), Address: "A-102", Area: 80}

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(&fee.Fee{ID: feeID, Name: "Parking Q1", Category: fee.CategoryVehicle}, nil)
	m.households.EXPECT().
		List(gomock.Any()).
		Return([]*household.Household{h1, h2}, nil)
	m.vehicles.EXPECT().
		List(gomock.Any(), vehicle.ListFilter{}).
		Return([]*vehicle.Vehicle{
			{ID: uuid.New(), HouseholdID: h1.ID, Kind: vehicle.KindMotorbike},
			{ID: uuid.New(), HouseholdID: h1.ID, Kind: vehicle.KindMotorbike},
			{ID: uuid.New(), HouseholdID: h1.ID, Kind: vehicle.KindCar},
			{ID: uuid.New(), HouseholdID: h2.ID, Kind: vehicle.KindBicycle},
		}, nil)

	created := map[uuid.UUID]int64{}

	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			p.ID = uuid.New()
			created[p.HouseholdID] = p.Amount
			return nil
		})

	result, err := svc.Disburse(context.Background(), feeID, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Failures)
	assert.Len(t, result.Payments, 2)

	// 2 motorbikes + 1 car, bicycles ride free.
	assert.Equal(t, int64(1_340_000), created[h1.ID])
	assert.Equal(t, int64(0), created[h2.ID])
}

func TestService_Disburse_AreaFees(t *testing.T) {
	tests := []struct {
		name       string
		category   fee.Category
		wantAmount int64
	}{
		{name: "Management", category: fee.CategoryManagement, wantAmount: 350_000},
		{name: "Service", category: fee.CategoryService, wantAmount: 500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			feeID := uuid.New()
			h := &household.Household{ID: uuid.New(), Address: "B-204", Area: 50}

			m.fees.EXPECT().
				Get(gomock.Any(), feeID).
				Return(&fee.Fee{ID: feeID, Category: tt.category}, nil)
			m.households.EXPECT().
				List(gomock.Any()).
				Return([]*household.Household{h}, nil)

			m.repo.EXPECT().
				CreatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *payment.Payment) error {
					assert.Equal(t, tt.wantAmount, p.Amount)
					assert.Equal(t, payment.StatusPending, p.Status)
					p.ID = uuid.New()
					return nil
				})

			result, err := svc.Disburse(context.Background(), feeID, nil)
			require.NoError(t, err)
			assert.Equal(t, 1, result.Created)
		})
	}
}

func TestService_Disburse_SkipsAlreadyBilled(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()
	h1 := &household.Household{ID: uuid.New(), Area: 50}
	h2 := &household.Household{ID: uuid.New(), Area: 60}

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(&fee.Fee{ID: feeID, Category: fee.CategoryManagement}, nil)
	m.households.EXPECT().
		List(gomock.Any()).
		Return([]*household.Household{h1, h2}, nil)

	// h1 was billed by an earlier run; the unique index rejects the insert
	// exactly once, with no retries.
	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			if p.HouseholdID == h1.ID {
				return payment.ErrDuplicate
			}
			p.ID = uuid.New()
			return nil
		})

	result, err := svc.Disburse(context.Background(), feeID, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Failures)
}

func TestService_Disburse_PartialFailure(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()
	h1 := &household.Household{ID: uuid.New(), Area: 40}
	h2 := &household.Household{ID: uuid.New(), Area: 50}
	h3 := &household.Household{ID: uuid.New(), Area: 60}

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(&fee.Fee{ID: feeID, Category: fee.CategoryService}, nil)
	m.households.EXPECT().
		List(gomock.Any()).
		Return([]*household.Household{h1, h2, h3}, nil)

	// h3 fails on every attempt; h1 and h2 succeed and stay created. One
	// success, one success, three exhausted retries.
	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Times(5).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			if p.HouseholdID == h3.ID {
				return errors.New("connection reset")
			}
			p.ID = uuid.New()
			return nil
		})

	result, err := svc.Disburse(context.Background(), feeID, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Zero(t, result.Skipped)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, h3.ID, result.Failures[0].HouseholdID)
	assert.Contains(t, result.Failures[0].Reason, "connection reset")
}

func TestService_Disburse_TransientErrorRetried(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()
	h := &household.Household{ID: uuid.New(), Area: 50}

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(&fee.Fee{ID: feeID, Category: fee.CategoryManagement}, nil)
	m.households.EXPECT().
		List(gomock.Any()).
		Return([]*household.Household{h}, nil)

	calls := 0

	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Times(3).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			calls++
			if calls < 3 {
				return errors.New("deadlock detected")
			}
			p.ID = uuid.New()
			return nil
		})

	result, err := svc.Disburse(context.Background(), feeID, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Failures)
}

func TestService_Disburse_UnsupportedCategory(t *testing.T) {
	categories := []fee.Category{
		fee.CategoryWater,
		fee.CategoryElectricity,
		fee.CategoryMaintenance,
		fee.CategoryOther,
	}

	for _, c := range categories {
		t.Run(string(c), func(t *testing.T) {
			svc, m := newService(t)

			feeID := uuid.New()

			m.fees.EXPECT().
				Get(gomock.Any(), feeID).
				Return(&fee.Fee{ID: feeID, Category: c}, nil)

			// No household listing, no inserts: the disbursement is refused
			// before any record is written.
			result, err := svc.Disburse(context.Background(), feeID, nil)
			assert.ErrorIs(t, err, payment.ErrUnsupportedCategory)
			assert.Nil(t, result)
		})
	}
}

func TestService_Disburse_FeeNotFound(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(nil, fee.ErrNotFound)

	result, err := svc.Disburse(context.Background(), feeID, nil)
	assert.ErrorIs(t, err, fee.ErrNotFound)
	assert.Nil(t, result)
}

func TestService_Disburse_PayDate(t *testing.T) {
	svc, m := newService(t)

	feeID := uuid.New()
	h := &household.Household{ID: uuid.New(), Area: 50}
	payDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	m.fees.EXPECT().
		Get(gomock.Any(), feeID).
		Return(&fee.Fee{ID: feeID, Category: fee.CategoryManagement}, nil)
	m.households.EXPECT().
		List(gomock.Any()).
		Return([]*household.Household{h}, nil)
	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *payment.Payment) error {
			assert.Equal(t, payDate, p.PayDate)
			return nil
		})

	_, err := svc.Disburse(context.Background(), feeID, &payDate)
	require.NoError(t, err)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    payment.CreateParams
		setupMock func(m serviceMocks)
		wantErr   error
	}

	feeID := uuid.New()
	householdID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: payment.CreateParams{
				FeeID:       feeID,
				HouseholdID: householdID,
				Amount:      150_000,
				Note:        "manual entry",
			},
			setupMock: func(m serviceMocks) {
				m.fees.EXPECT().
					Get(gomock.Any(), feeID).
					Return(&fee.Fee{ID: feeID, Category: fee.CategoryOther}, nil)
				m.repo.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *payment.Payment) error {
						p.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "NegativeAmount",
			params: payment.CreateParams{
				FeeID:       feeID,
				HouseholdID: householdID,
				Amount:      -1,
			},
			wantErr: payment.ErrInvalidAmount,
		},
		{
			name: "UnknownFee",
			params: payment.CreateParams{
				FeeID:       feeID,
				HouseholdID: householdID,
				Amount:      100,
			},
			setupMock: func(m serviceMocks) {
				m.fees.EXPECT().
					Get(gomock.Any(), feeID).
					Return(nil, fee.ErrNotFound)
			},
			wantErr: fee.ErrNotFound,
		},
		{
			name: "AlreadyBilled",
			params: payment.CreateParams{
				FeeID:       feeID,
				HouseholdID: householdID,
				Amount:      100,
			},
			setupMock: func(m serviceMocks) {
				m.fees.EXPECT().
					Get(gomock.Any(), feeID).
					Return(&fee.Fee{ID: feeID, Category: fee.CategoryOther}, nil)
				m.repo.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(payment.ErrDuplicate)
			},
			wantErr: payment.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, payment.StatusPending, got.Status)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	type testCase struct {
		name       string
		current    payment.Status
		next       payment.Status
		wantPaidAt bool
		wantErr    error
	}

	tests := []testCase{
		{name: "PendingToPaid", current: payment.StatusPending, next: payment.StatusPaid, wantPaidAt: true},
		{name: "PendingToFailed", current: payment.StatusPending, next: payment.StatusFailed},
		{name: "FailedToPending", current: payment.StatusFailed, next: payment.StatusPending},
		{name: "PaidIsTerminal", current: payment.StatusPaid, next: payment.StatusPending, wantErr: payment.ErrInvalidTransition},
		{name: "FailedToPaid", current: payment.StatusFailed, next: payment.StatusPaid, wantErr: payment.ErrInvalidTransition},
		{name: "UnknownStatus", current: payment.StatusPending, next: payment.Status("refunded"), wantErr: payment.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			id := uuid.New()

			if tt.next.Valid() {
				m.repo.EXPECT().
					GetPayment(gomock.Any(), id).
					Return(&payment.Payment{ID: id, Status: tt.current}, nil)
			}

			if tt.wantErr == nil {
				m.repo.EXPECT().
					UpdateStatus(gomock.Any(), id, tt.next, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, _ payment.Status, paidAt *time.Time) error {
						if tt.wantPaidAt {
							assert.NotNil(t, paidAt)
						} else {
							assert.Nil(t, paidAt)
						}
						return nil
					})
			}

			err := svc.UpdateStatus(context.Background(), id, tt.next)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()

	m.repo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(nil, payment.ErrNotFound)

	err := svc.UpdateStatus(context.Background(), id, payment.StatusPaid)
	assert.ErrorIs(t, err, payment.ErrNotFound)
}
