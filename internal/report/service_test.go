package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/payment"
	"github.com/hmdang/bluemoon/internal/report"
)

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fees := report.NewMockFeeSource(ctrl)
	payments := report.NewMockPaymentSource(ctrl)
	svc := report.NewService(fees, payments)

	collectionID := uuid.New()
	managementID := uuid.New()
	parkingID := uuid.New()

	fees.EXPECT().
		GetCollection(gomock.Any(), collectionID).
		Return(&fee.Collection{
			ID:      collectionID,
			Name:    "March 2026",
			DueDate: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		}, nil)
	fees.EXPECT().
		List(gomock.Any(), fee.ListFilter{CollectionID: &collectionID}).
		Return([]*fee.Fee{
			{ID: managementID, Name: "Management March", Category: fee.CategoryManagement},
			{ID: parkingID, Name: "Parking March", Category: fee.CategoryVehicle},
		}, nil)

	payments.EXPECT().
		List(gomock.Any(), payment.ListFilter{FeeID: &managementID}).
		Return([]*payment.Payment{
			{Amount: 350_000, Status: payment.StatusPaid},
			{Amount: 560_000, Status: payment.StatusPending},
		}, nil)
	payments.EXPECT().
		List(gomock.Any(), payment.ListFilter{FeeID: &parkingID}).
		Return([]*payment.Payment{
			{Amount: 1_340_000, Status: payment.StatusPaid},
		}, nil)

	summary, err := svc.Summarize(context.Background(), collectionID)
	require.NoError(t, err)

	require.Len(t, summary.Fees, 2)

	management := summary.Fees[0]
	assert.Equal(t, 2, management.Households)
	assert.Equal(t, 1, management.PaidCount)
	assert.Equal(t, int64(910_000), management.Billed)
	assert.Equal(t, int64(350_000), management.Collected)

	parking := summary.Fees[1]
	assert.Equal(t, 1, parking.Households)
	assert.Equal(t, 1, parking.PaidCount)

	assert.Equal(t, int64(2_250_000), summary.TotalBilled)
	assert.Equal(t, int64(1_690_000), summary.TotalCollected)
}

func TestService_Summarize_UnknownCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fees := report.NewMockFeeSource(ctrl)
	payments := report.NewMockPaymentSource(ctrl)
	svc := report.NewService(fees, payments)

	id := uuid.New()

	fees.EXPECT().
		GetCollection(gomock.Any(), id).
		Return(nil, fee.ErrCollectionNotFound)

	summary, err := svc.Summarize(context.Background(), id)
	assert.ErrorIs(t, err, fee.ErrCollectionNotFound)
	assert.Nil(t, summary)
}
