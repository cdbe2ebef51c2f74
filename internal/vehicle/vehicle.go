package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind is the vehicle type. The payment engine charges motorbikes and cars;
// bicycles are registered but free.
type Kind string

const (
	KindCar       Kind = "car"
	KindMotorbike Kind = "motorbike"
	KindBicycle   Kind = "bicycle"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCar, KindMotorbike, KindBicycle:
		return true
	}

	return false
}

var (
	ErrNotFound       = errors.New("vehicle not found")
	ErrDuplicatePlate = errors.New("license plate already registered")
	ErrUnknownKind    = errors.New("unknown vehicle kind")
)

type Vehicle struct {
	ID          uuid.UUID
	Plate       string
	HouseholdID uuid.UUID
	Kind        Kind
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
