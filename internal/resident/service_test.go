package resident_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/resident"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	svc := resident.NewService(repo)

	repo.EXPECT().
		CreateResident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *resident.Resident) error {
			res.ID = uuid.New()
			res.CreatedAt = time.Now()
			return nil
		})

	got, err := svc.Create(context.Background(), resident.CreateParams{
		FullName:    "Nguyen Van An",
		NationalID:  "001203012345",
		DateOfBirth: time.Date(1985, 6, 12, 0, 0, 0, 0, time.UTC),
		Gender:      "male",
		PhoneNumber: "0912345678",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "001203012345", got.NationalID)
}

func TestService_Create_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	svc := resident.NewService(repo)

	repo.EXPECT().
		CreateResident(gomock.Any(), gomock.Any()).
		Return(resident.ErrDuplicate)

	got, err := svc.Create(context.Background(), resident.CreateParams{
		FullName:   "Nguyen Van An",
		NationalID: "001203012345",
	})
	assert.ErrorIs(t, err, resident.ErrDuplicate)
	assert.Nil(t, got)
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	itx := resident.NewMockImportTx(ctrl)
	svc := resident.NewService(repo)

	params := []resident.CreateParams{
		{
			FullName:    "Nguyen Van An",
			NationalID:  "001203012345",
			DateOfBirth: time.Date(1985, 6, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			FullName:    "Tran Thi Binh",
			NationalID:  "001203054321",
			DateOfBirth: time.Date(1990, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}
	ids := []string{"001203012345", "001203054321"}

	repo.EXPECT().BeginImport(gomock.Any(), ids).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), ids).Return(nil, nil)
	itx.EXPECT().CreateResidents(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 2)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	itx := resident.NewMockImportTx(ctrl)
	svc := resident.NewService(repo)

	params := []resident.CreateParams{
		{FullName: "Nguyen Van An", NationalID: "001203012345"},
		{FullName: "Tran Thi Binh", NationalID: "001203054321"},
	}
	ids := []string{"001203012345", "001203054321"}

	existing := &resident.Resident{
		ID:         uuid.New(),
		FullName:   "Nguyen Van An",
		NationalID: "001203012345",
	}

	// Conflicts abort the whole batch: nothing committed, the caller gets
	// the split so it can review and confirm the remainder.
	repo.EXPECT().BeginImport(gomock.Any(), ids).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), ids).Return([]*resident.Resident{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	svc := resident.NewService(repo)

	result, err := svc.ImportBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_FindDuplicatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	itx := resident.NewMockImportTx(ctrl)
	svc := resident.NewService(repo)

	params := []resident.CreateParams{{NationalID: "001203012345"}}

	repo.EXPECT().BeginImport(gomock.Any(), gomock.Any()).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	itx := resident.NewMockImportTx(ctrl)
	svc := resident.NewService(repo)

	params := []resident.CreateParams{
		{FullName: "Tran Thi Binh", NationalID: "001203054321"},
	}

	repo.EXPECT().BeginImport(gomock.Any(), []string{"001203054321"}).Return(itx, nil)
	itx.EXPECT().CreateResidents(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	residents, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, "Tran Thi Binh", residents[0].FullName)
}
