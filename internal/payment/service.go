package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/household"
	"github.com/hmdang/bluemoon/internal/vehicle"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	// CreatePayment inserts a payment and returns ErrDuplicate when the
	// (fee, household) unique index rejects it. The insert is the race-safety
	// mechanism for concurrent disbursements; there is no pre-check.
	CreatePayment(ctx context.Context, p *Payment) error
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	UpdatePayment(ctx context.Context, p *Payment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, paidAt *time.Time) error
	DeletePayment(ctx context.Context, id uuid.UUID) error
}

// FeeSource resolves fee definitions for disbursement. It is satisfied by
// the fee service.
type FeeSource interface {
	Get(ctx context.Context, id uuid.UUID) (*fee.Fee, error)
}

// HouseholdSource enumerates the households a disbursement fans out over.
type HouseholdSource interface {
	List(ctx context.Context) ([]*household.Household, error)
}

// VehicleSource enumerates vehicles for the vehicle-fee calculator.
type VehicleSource interface {
	List(ctx context.Context, filter vehicle.ListFilter) ([]*vehicle.Vehicle, error)
}

type Service struct {
	repo       Repository
	fees       FeeSource
	households HouseholdSource
	vehicles   VehicleSource
	tariff     Tariff
}

func NewService(repo Repository, fees FeeSource, households HouseholdSource, vehicles VehicleSource, tariff Tariff) *Service {
	return &Service{
		repo:       repo,
		fees:       fees,
		households: households,
		vehicles:   vehicles,
		tariff:     tariff,
	}
}

type ListFilter struct {
	FeeID       *uuid.UUID
	HouseholdID *uuid.UUID
	Status      *Status
}

// Failure records one household the disbursement could not bill.
type Failure struct {
	HouseholdID uuid.UUID
	Reason      string
}

// DisbursementResult reports the outcome per household: created records,
// duplicates skipped because the household was already billed, and failures
// after retries.
type DisbursementResult struct {
	Created  int
	Skipped  int
	Failures []Failure
	Payments []*Payment
}

// createAttempts bounds the retries for transient storage errors during a
// disbursement. Duplicates are never retried.
const createAttempts = 3

// Disburse fans a fee out to every household. Each household gets exactly
// one payment record with an amount from the fee's category calculator; a
// household already billed for this fee is skipped, and one household's
// storage failure never aborts the rest of the batch. Partial completion
// stands: already-created payments are not rolled back.
func (s *Service) Disburse(ctx context.Context, feeID uuid.UUID, payDate *time.Time) (*DisbursementResult, error) {
	f, err := s.fees.Get(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("resolving fee: %w", err)
	}

	calc, ok := s.tariff.calculatorFor(f.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCategory, f.Category)
	}

	households, err := s.households.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing households: %w", err)
	}

	var byHousehold map[uuid.UUID][]*vehicle.Vehicle

	if f.Category == fee.CategoryVehicle {
		vehicles, err := s.vehicles.List(ctx, vehicle.ListFilter{})
		if err != nil {
			return nil, fmt.Errorf("listing vehicles: %w", err)
		}

		byHousehold = make(map[uuid.UUID][]*vehicle.Vehicle, len(vehicles))
		for _, v := range vehicles {
			byHousehold[v.HouseholdID] = append(byHousehold[v.HouseholdID], v)
		}
	}

	date := time.Now()
	if payDate != nil {
		date = *payDate
	}

	result := &DisbursementResult{}

	for _, h := range households {
		amount, note := calc(h, byHousehold)

		p := &Payment{
			FeeID:       f.ID,
			HouseholdID: h.ID,
			Amount:      amount,
			Note:        note,
			Status:      StatusPending,
			PayDate:     date,
		}

		err := s.createWithRetry(ctx, p)

		switch {
		case err == nil:
			result.Created++
			result.Payments = append(result.Payments, p)
		case errors.Is(err, ErrDuplicate):
			result.Skipped++
		default:
			result.Failures = append(result.Failures, Failure{
				HouseholdID: h.ID,
				Reason:      err.Error(),
			})
		}
	}

	return result, nil
}

// createWithRetry retries transient storage errors a bounded number of
// times. A duplicate is a final answer, not a transient failure.
func (s *Service) createWithRetry(ctx context.Context, p *Payment) error {
	var err error

	for attempt := 0; attempt < createAttempts; attempt++ {
		err = s.repo.CreatePayment(ctx, p)
		if err == nil || errors.Is(err, ErrDuplicate) {
			return err
		}

		if ctx.Err() != nil {
			return err
		}
	}

	return err
}

type CreateParams struct {
	FeeID       uuid.UUID
	HouseholdID uuid.UUID
	Amount      int64
	Note        string
	PayDate     *time.Time
}

// Create records a single payment with a caller-supplied amount. It shares
// the uniqueness invariant with Disburse: a household already billed for the
// fee yields ErrDuplicate.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Payment, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.fees.Get(ctx, params.FeeID); err != nil {
		return nil, fmt.Errorf("resolving fee: %w", err)
	}

	date := time.Now()
	if params.PayDate != nil {
		date = *params.PayDate
	}

	p := &Payment{
		FeeID:       params.FeeID,
		HouseholdID: params.HouseholdID,
		Amount:      params.Amount,
		Note:        params.Note,
		Status:      StatusPending,
		PayDate:     date,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, p *Payment) error {
	if p.Amount < 0 {
		return ErrInvalidAmount
	}

	return s.repo.UpdatePayment(ctx, p)
}

// UpdateStatus moves a payment along pending -> paid/failed, with failed
// payments resettable to pending. Marking paid stamps PaidAt.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return err
	}

	if !p.Status.CanTransition(status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, status)
	}

	var paidAt *time.Time

	if status == StatusPaid {
		now := time.Now()
		paidAt = &now
	}

	return s.repo.UpdateStatus(ctx, id, status, paidAt)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePayment(ctx, id)
}
