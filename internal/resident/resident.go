package resident

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("resident not found")
	ErrDuplicate = errors.New("national id already registered")
)

type Resident struct {
	ID           uuid.UUID
	FullName     string
	NationalID   string
	DateOfBirth  time.Time
	Gender       string
	PhoneNumber  string
	HouseholdIDs []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
