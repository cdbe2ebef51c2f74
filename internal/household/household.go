package household

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("household not found")
	ErrInvalidArea = errors.New("household area must be non-negative")
	ErrHasVehicles = errors.New("household still owns vehicles")
	ErrNotMember   = errors.New("resident is not a member of the household")
)

// Household is a dwelling unit. Area feeds the per-square-meter fee
// calculators, so it is validated on every write.
type Household struct {
	ID             uuid.UUID
	Address        string
	Area           float64 // square meters
	HeadResidentID *uuid.UUID
	MemberIDs      []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
