package resident

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=resident
type Repository interface {
	CreateResident(ctx context.Context, res *Resident) error
	GetResident(ctx context.Context, id uuid.UUID) (*Resident, error)
	ListResidents(ctx context.Context, filter ListFilter) ([]*Resident, error)
	UpdateResident(ctx context.Context, res *Resident) error

	// DeleteResident clears household memberships and any head-of-household
	// reference before removing the resident, in one transaction.
	DeleteResident(ctx context.Context, id uuid.UUID) error

	BeginImport(ctx context.Context, nationalIDs []string) (ImportTx, error)
}

type ImportTx interface {
	FindDuplicates(ctx context.Context, nationalIDs []string) ([]*Resident, error)
	CreateResidents(ctx context.Context, residents []*Resident) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	FullName    string
	NationalID  string
	DateOfBirth time.Time
	Gender      string
	PhoneNumber string
}

type ListFilter struct {
	HouseholdID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Resident, error) {
	res := &Resident{
		FullName:    params.FullName,
		NationalID:  params.NationalID,
		DateOfBirth: params.DateOfBirth,
		Gender:      params.Gender,
		PhoneNumber: params.PhoneNumber,
	}
	if err := s.repo.CreateResident(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Resident, error) {
	return s.repo.GetResident(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Resident, error) {
	return s.repo.ListResidents(ctx, filter)
}

func (s *Service) Update(ctx context.Context, res *Resident) error {
	return s.repo.UpdateResident(ctx, res)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteResident(ctx, id)
}

type ImportResult struct {
	Imported  []*Resident
	New       []CreateParams
	Conflicts []Conflict
}

type Conflict struct {
	Incoming CreateParams
	Existing *Resident
}

// ImportBatch registers a batch of residents parsed from an uploaded file.
// When any incoming national id already exists, nothing is committed; the
// result splits the batch into new rows and conflicts so the caller can
// review and confirm the remainder.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	ids := nationalIDs(params)

	itx, err := s.repo.BeginImport(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	duplicates, err := itx.FindDuplicates(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find duplicates: %w", err)
	}

	lookup := make(map[string]*Resident, len(duplicates))
	for _, d := range duplicates {
		lookup[d.NationalID] = d
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		existing, found := lookup[p.NationalID]
		if found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	residents := paramsToResidents(newParams)
	if err := itx.CreateResidents(ctx, residents); err != nil {
		return nil, fmt.Errorf("create residents: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Imported: residents}, nil
}

// CreateBatch commits a reviewed batch without conflict detection. Used by
// the confirm endpoint after ImportBatch reported conflicts.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Resident, error) {
	if len(params) == 0 {
		return nil, nil
	}

	itx, err := s.repo.BeginImport(ctx, nationalIDs(params))
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	residents := paramsToResidents(params)
	if err := itx.CreateResidents(ctx, residents); err != nil {
		return nil, fmt.Errorf("create residents: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return residents, nil
}

func nationalIDs(params []CreateParams) []string {
	ids := make([]string, len(params))
	for i, p := range params {
		ids[i] = p.NationalID
	}

	return ids
}

func paramsToResidents(params []CreateParams) []*Resident {
	residents := make([]*Resident, len(params))
	for i, p := range params {
		residents[i] = &Resident{
			FullName:    p.FullName,
			NationalID:  p.NationalID,
			DateOfBirth: p.DateOfBirth,
			Gender:      p.Gender,
			PhoneNumber: p.PhoneNumber,
		}
	}

	return residents
}
