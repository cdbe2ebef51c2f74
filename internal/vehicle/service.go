package vehicle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=vehicle
type Repository interface {
	CreateVehicle(ctx context.Context, v *Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	ListVehicles(ctx context.Context, filter ListFilter) ([]*Vehicle, error)
	UpdateVehicle(ctx context.Context, v *Vehicle) error
	DeleteVehicle(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Plate       string
	HouseholdID uuid.UUID
	Kind        Kind
}

type ListFilter struct {
	HouseholdID *uuid.UUID
	Kind        *Kind
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Vehicle, error) {
	if !params.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, params.Kind)
	}

	v := &Vehicle{
		Plate:       params.Plate,
		HouseholdID: params.HouseholdID,
		Kind:        params.Kind,
	}
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx, filter)
}

func (s *Service) Update(ctx context.Context, v *Vehicle) error {
	if !v.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, v.Kind)
	}

	return s.repo.UpdateVehicle(ctx, v)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVehicle(ctx, id)
}
