package fee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fee
type Repository interface {
	CreateFee(ctx context.Context, f *Fee) error
	GetFee(ctx context.Context, id uuid.UUID) (*Fee, error)
	ListFees(ctx context.Context, filter ListFilter) ([]*Fee, error)
	UpdateFee(ctx context.Context, f *Fee) error
	DeleteFee(ctx context.Context, id uuid.UUID) error

	CreateCollection(ctx context.Context, c *Collection) error
	GetCollection(ctx context.Context, id uuid.UUID) (*Collection, error)
	ListCollections(ctx context.Context) ([]*Collection, error)
	UpdateCollection(ctx context.Context, c *Collection) error

	// DeleteCollection detaches all fees referencing the collection and
	// removes it, atomically.
	DeleteCollection(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Description  string
	Category     Category
	CollectionID *uuid.UUID
}

type ListFilter struct {
	CollectionID *uuid.UUID
	Category     *Category
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Fee, error) {
	if !params.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, params.Category)
	}

	if params.CollectionID != nil {
		if _, err := s.repo.GetCollection(ctx, *params.CollectionID); err != nil {
			return nil, err
		}
	}

	f := &Fee{
		Name:         params.Name,
		Description:  params.Description,
		Category:     params.Category,
		CollectionID: params.CollectionID,
	}
	if err := s.repo.CreateFee(ctx, f); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Fee, error) {
	return s.repo.GetFee(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Fee, error) {
	return s.repo.ListFees(ctx, filter)
}

func (s *Service) Update(ctx context.Context, f *Fee) error {
	if !f.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, f.Category)
	}

	return s.repo.UpdateFee(ctx, f)
}

// Delete removes a fee. Fees still bundled in a collection are protected;
// the caller must detach them first.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	f, err := s.repo.GetFee(ctx, id)
	if err != nil {
		return err
	}

	if f.CollectionID != nil {
		return ErrInUse
	}

	return s.repo.DeleteFee(ctx, id)
}

type CollectionParams struct {
	Name    string
	DueDate time.Time
}

func (s *Service) CreateCollection(ctx context.Context, params CollectionParams) (*Collection, error) {
	c := &Collection{
		Name:    params.Name,
		DueDate: params.DueDate,
	}
	if err := s.repo.CreateCollection(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) GetCollection(ctx context.Context, id uuid.UUID) (*Collection, error) {
	return s.repo.GetCollection(ctx, id)
}

func (s *Service) ListCollections(ctx context.Context) ([]*Collection, error) {
	return s.repo.ListCollections(ctx)
}

func (s *Service) UpdateCollection(ctx context.Context, c *Collection) error {
	return s.repo.UpdateCollection(ctx, c)
}

// DeleteCollection removes a billing period. Referencing fees are detached,
// not deleted; they keep existing without a collection.
func (s *Service) DeleteCollection(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCollection(ctx, id)
}
