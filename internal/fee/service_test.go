package fee_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/fee"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    fee.CreateParams
		setupMock func(m *fee.MockRepository)
		wantErr   error
	}

	collectionID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: fee.CreateParams{
				Name:     "Parking Q1",
				Category: fee.CategoryVehicle,
			},
			setupMock: func(m *fee.MockRepository) {
				m.EXPECT().
					CreateFee(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f *fee.Fee) error {
						f.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "WithCollection",
			params: fee.CreateParams{
				Name:         "Management March",
				Category:     fee.CategoryManagement,
				CollectionID: &collectionID,
			},
			setupMock: func(m *fee.MockRepository) {
				m.EXPECT().
					GetCollection(gomock.Any(), collectionID).
					Return(&fee.Collection{ID: collectionID}, nil)
				m.EXPECT().
					CreateFee(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f *fee.Fee) error {
						f.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "InvalidCategory",
			params: fee.CreateParams{
				Name:     "Mystery",
				Category: fee.Category("mystery"),
			},
			wantErr: fee.ErrInvalidCategory,
		},
		{
			name: "UnknownCollection",
			params: fee.CreateParams{
				Name:         "Management March",
				Category:     fee.CategoryManagement,
				CollectionID: &collectionID,
			},
			setupMock: func(m *fee.MockRepository) {
				m.EXPECT().
					GetCollection(gomock.Any(), collectionID).
					Return(nil, fee.ErrCollectionNotFound)
			},
			wantErr: fee.ErrCollectionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := fee.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := fee.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	t.Run("Detached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := fee.NewMockRepository(ctrl)
		svc := fee.NewService(repo)

		id := uuid.New()

		repo.EXPECT().
			GetFee(gomock.Any(), id).
			Return(&fee.Fee{ID: id, Category: fee.CategoryOther}, nil)
		repo.EXPECT().DeleteFee(gomock.Any(), id).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("StillInCollection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := fee.NewMockRepository(ctrl)
		svc := fee.NewService(repo)

		id := uuid.New()
		collectionID := uuid.New()

		repo.EXPECT().
			GetFee(gomock.Any(), id).
			Return(&fee.Fee{ID: id, CollectionID: &collectionID}, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), fee.ErrInUse)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := fee.NewMockRepository(ctrl)
		svc := fee.NewService(repo)

		id := uuid.New()

		repo.EXPECT().GetFee(gomock.Any(), id).Return(nil, fee.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), fee.ErrNotFound)
	})
}

func TestService_Update_InvalidCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := fee.NewMockRepository(ctrl)
	svc := fee.NewService(repo)

	err := svc.Update(context.Background(), &fee.Fee{
		ID:       uuid.New(),
		Category: fee.Category("mystery"),
	})
	assert.ErrorIs(t, err, fee.ErrInvalidCategory)
}

func TestService_DeleteCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := fee.NewMockRepository(ctrl)
	svc := fee.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteCollection(gomock.Any(), id).Return(nil)

	assert.NoError(t, svc.DeleteCollection(context.Background(), id))
}

func TestService_CreateCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := fee.NewMockRepository(ctrl)
	svc := fee.NewService(repo)

	due := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateCollection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *fee.Collection) error {
			c.ID = uuid.New()
			return nil
		})

	got, err := svc.CreateCollection(context.Background(), fee.CollectionParams{
		Name:    "March 2026",
		DueDate: due,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, due, got.DueDate)
}
