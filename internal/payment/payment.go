package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a payment record.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	}

	return false
}

// CanTransition reports whether a payment in status s may move to next.
// Paid is terminal; failed payments may be reset to pending for another
// attempt.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusFailed
	case StatusFailed:
		return next == StatusPending
	}

	return false
}

var (
	ErrNotFound            = errors.New("payment not found")
	ErrDuplicate           = errors.New("payment already exists for this fee and household")
	ErrUnsupportedCategory = errors.New("fee category has no disbursement calculator")
	ErrInvalidAmount       = errors.New("payment amount must be non-negative")
	ErrInvalidTransition   = errors.New("invalid payment status transition")
)

// Payment is the amount a household owes for one fee. The pair
// (FeeID, HouseholdID) is unique; storage enforces it with a unique index
// and duplicate inserts surface as ErrDuplicate.
type Payment struct {
	ID          uuid.UUID
	FeeID       uuid.UUID
	HouseholdID uuid.UUID
	Amount      int64 // VND
	Note        string
	Status      Status
	PayDate     time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
