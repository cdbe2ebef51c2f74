package household_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/household"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    household.CreateParams
		setupMock func(m *household.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: household.CreateParams{Address: "A-101, Block 2", Area: 75.5},
			setupMock: func(m *household.MockRepository) {
				m.EXPECT().
					CreateHousehold(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, h *household.Household) error {
						h.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "NegativeArea",
			params:  household.CreateParams{Address: "A-102", Area: -1},
			wantErr: household.ErrInvalidArea,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := household.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := household.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Area, got.Area)
		})
	}
}

func TestService_Update_NegativeArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := household.NewMockRepository(ctrl)
	svc := household.NewService(repo)

	err := svc.Update(context.Background(), &household.Household{ID: uuid.New(), Area: -0.5})
	assert.ErrorIs(t, err, household.ErrInvalidArea)
}

func TestService_SetHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := household.NewMockRepository(ctrl)
	svc := household.NewService(repo)

	householdID := uuid.New()
	residentID := uuid.New()

	repo.EXPECT().
		GetHousehold(gomock.Any(), householdID).
		Return(&household.Household{
			ID:        householdID,
			MemberIDs: []uuid.UUID{residentID, uuid.New()},
		}, nil)
	repo.EXPECT().
		UpdateHousehold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *household.Household) error {
			require.NotNil(t, h.HeadResidentID)
			assert.Equal(t, residentID, *h.HeadResidentID)
			return nil
		})

	assert.NoError(t, svc.SetHead(context.Background(), householdID, residentID))
}

func TestService_SetHead_NotMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := household.NewMockRepository(ctrl)
	svc := household.NewService(repo)

	householdID := uuid.New()

	repo.EXPECT().
		GetHousehold(gomock.Any(), householdID).
		Return(&household.Household{
			ID:        householdID,
			MemberIDs: []uuid.UUID{uuid.New()},
		}, nil)

	err := svc.SetHead(context.Background(), householdID, uuid.New())
	assert.ErrorIs(t, err, household.ErrNotMember)
}

func TestService_Delete_HasVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := household.NewMockRepository(ctrl)
	svc := household.NewService(repo)

	id := uuid.New()

	repo.EXPECT().
		DeleteHousehold(gomock.Any(), id).
		Return(household.ErrHasVehicles)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), household.ErrHasVehicles)
}

func TestService_AddRemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := household.NewMockRepository(ctrl)
	svc := household.NewService(repo)

	householdID := uuid.New()
	residentID := uuid.New()

	repo.EXPECT().AddMember(gomock.Any(), householdID, residentID).Return(nil)
	repo.EXPECT().RemoveMember(gomock.Any(), householdID, residentID).Return(nil)

	assert.NoError(t, svc.AddMember(context.Background(), householdID, residentID))
	assert.NoError(t, svc.RemoveMember(context.Background(), householdID, residentID))
}
