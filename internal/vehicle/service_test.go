package vehicle_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdang/bluemoon/internal/vehicle"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    vehicle.CreateParams
		setupMock func(m *vehicle.MockRepository)
		wantErr   error
	}

	householdID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: vehicle.CreateParams{
				Plate:       "29H1-123.45",
				HouseholdID: householdID,
				Kind:        vehicle.KindMotorbike,
			},
			setupMock: func(m *vehicle.MockRepository) {
				m.EXPECT().
					CreateVehicle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, v *vehicle.Vehicle) error {
						v.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "UnknownKind",
			params: vehicle.CreateParams{
				Plate:       "29A-543.21",
				HouseholdID: householdID,
				Kind:        vehicle.Kind("truck"),
			},
			wantErr: vehicle.ErrUnknownKind,
		},
		{
			name: "DuplicatePlate",
			params: vehicle.CreateParams{
				Plate:       "29H1-123.45",
				HouseholdID: householdID,
				Kind:        vehicle.KindCar,
			},
			setupMock: func(m *vehicle.MockRepository) {
				m.EXPECT().
					CreateVehicle(gomock.Any(), gomock.Any()).
					Return(vehicle.ErrDuplicatePlate)
			},
			wantErr: vehicle.ErrDuplicatePlate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := vehicle.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := vehicle.NewService(repo)
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

func TestService_Update_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := vehicle.NewMockRepository(ctrl)
	svc := vehicle.NewService(repo)

	err := svc.Update(context.Background(), &vehicle.Vehicle{
		ID:   uuid.New(),
		Kind: vehicle.Kind("hoverboard"),
	})
	assert.ErrorIs(t, err, vehicle.ErrUnknownKind)
}
