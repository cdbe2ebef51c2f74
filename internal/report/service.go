package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/payment"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=report

// FeeSource is satisfied by the fee service.
type FeeSource interface {
	GetCollection(ctx context.Context, id uuid.UUID) (*fee.Collection, error)
	List(ctx context.Context, filter fee.ListFilter) ([]*fee.Fee, error)
}

// PaymentSource is satisfied by the payment service.
type PaymentSource interface {
	List(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error)
}

type Service struct {
	fees     FeeSource
	payments PaymentSource
}

func NewService(fees FeeSource, payments PaymentSource) *Service {
	return &Service{fees: fees, payments: payments}
}

// FeeSummary aggregates the payments disbursed for one fee.
type FeeSummary struct {
	Fee        *fee.Fee
	Households int
	PaidCount  int
	Billed     int64
	Collected  int64
}

// CollectionSummary is the accountant's view of one billing period.
type CollectionSummary struct {
	Collection     *fee.Collection
	Fees           []FeeSummary
	TotalBilled    int64
	TotalCollected int64
}

// Summarize reports, for each fee in the collection, how many households
// were billed, how many have paid, and the billed/collected totals.
func (s *Service) Summarize(ctx context.Context, collectionID uuid.UUID) (*CollectionSummary, error) {
	col, err := s.fees.GetCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	fees, err := s.fees.List(ctx, fee.ListFilter{CollectionID: &collectionID})
	if err != nil {
		return nil, fmt.Errorf("listing fees: %w", err)
	}

	summary := &CollectionSummary{Collection: col}

	for _, f := range fees {
		payments, err := s.payments.List(ctx, payment.ListFilter{FeeID: &f.ID})
		if err != nil {
			return nil, fmt.Errorf("listing payments for fee %s: %w", f.ID, err)
		}

		fs := FeeSummary{Fee: f, Households: len(payments)}

		for _, p := range payments {
			fs.Billed += p.Amount

			if p.Status == payment.StatusPaid {
				fs.PaidCount++
				fs.Collected += p.Amount
			}
		}

		summary.Fees = append(summary.Fees, fs)
		summary.TotalBilled += fs.Billed
		summary.TotalCollected += fs.Collected
	}

	return summary, nil
}
