package household

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=household
type Repository interface {
	CreateHousehold(ctx context.Context, h *Household) error
	GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error)
	ListHouseholds(ctx context.Context) ([]*Household, error)
	UpdateHousehold(ctx context.Context, h *Household) error

	// DeleteHousehold removes membership rows and the household in one
	// transaction. Households that still own vehicles are rejected with
	// ErrHasVehicles.
	DeleteHousehold(ctx context.Context, id uuid.UUID) error

	AddMember(ctx context.Context, householdID, residentID uuid.UUID) error
	RemoveMember(ctx context.Context, householdID, residentID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Address string
	Area    float64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Household, error) {
	if params.Area < 0 {
		return nil, ErrInvalidArea
	}

	h := &Household{
		Address: params.Address,
		Area:    params.Area,
	}
	if err := s.repo.CreateHousehold(ctx, h); err != nil {
		return nil, err
	}

	return h, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Household, error) {
	return s.repo.GetHousehold(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Household, error) {
	return s.repo.ListHouseholds(ctx)
}

func (s *Service) Update(ctx context.Context, h *Household) error {
	if h.Area < 0 {
		return ErrInvalidArea
	}

	return s.repo.UpdateHousehold(ctx, h)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteHousehold(ctx, id)
}

func (s *Service) AddMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	return s.repo.AddMember(ctx, householdID, residentID)
}

// RemoveMember detaches a resident from the household. The head reference
// is cleared by the store when the departing member is the head.
func (s *Service) RemoveMember(ctx context.Context, householdID, residentID uuid.UUID) error {
	return s.repo.RemoveMember(ctx, householdID, residentID)
}

// SetHead promotes a member to head of household.
func (s *Service) SetHead(ctx context.Context, householdID, residentID uuid.UUID) error {
	h, err := s.repo.GetHousehold(ctx, householdID)
	if err != nil {
		return err
	}

	member := false

	for _, id := range h.MemberIDs {
		if id == residentID {
			member = true
			break
		}
	}

	if !member {
		return ErrNotMember
	}

	h.HeadResidentID = &residentID

	return s.repo.UpdateHousehold(ctx, h)
}
