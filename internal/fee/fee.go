package fee

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category classifies a fee. Only a subset of categories is disbursable
// (see the payment package); the rest exist for manually recorded charges.
type Category string

const (
	CategoryVehicle     Category = "vehicle"
	CategoryManagement  Category = "management"
	CategoryService     Category = "service"
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryMaintenance Category = "maintenance"
	CategoryOther       Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVehicle, CategoryManagement, CategoryService,
		CategoryWater, CategoryElectricity, CategoryMaintenance, CategoryOther:
		return true
	}

	return false
}

var (
	ErrNotFound           = errors.New("fee not found")
	ErrCollectionNotFound = errors.New("fee collection not found")
	ErrInUse              = errors.New("fee is still referenced")
	ErrInvalidCategory    = errors.New("invalid fee category")
)

// Fee is a charge definition. Its category decides how the payment engine
// computes per-household amounts.
type Fee struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Category     Category
	CollectionID *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Collection is a billing period bundling fees under a common due date.
type Collection struct {
	ID        uuid.UUID
	Name      string
	DueDate   time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
