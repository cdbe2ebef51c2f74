package payment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/household"
	"github.com/hmdang/bluemoon/internal/vehicle"
)

var tariff = Tariff{
	Motorbike:        70_000,
	Car:              1_200_000,
	ManagementPerSqm: 7_000,
	ServicePerSqm:    10_000,
}

func TestTariff_CalculatorFor(t *testing.T) {
	supported := []fee.Category{
		fee.CategoryVehicle,
		fee.CategoryManagement,
		fee.CategoryService,
	}
	for _, c := range supported {
		calc, ok := tariff.calculatorFor(c)
		assert.True(t, ok, "category %s", c)
		assert.NotNil(t, calc)
	}

	unsupported := []fee.Category{
		fee.CategoryWater,
		fee.CategoryElectricity,
		fee.CategoryMaintenance,
		fee.CategoryOther,
		fee.Category("bogus"),
	}
	for _, c := range unsupported {
		calc, ok := tariff.calculatorFor(c)
		assert.False(t, ok, "category %s", c)
		assert.Nil(t, calc)
	}
}

func TestTariff_VehicleFee(t *testing.T) {
	h := &household.Household{ID: uuid.New(), Area: 50}

	byHousehold := map[uuid.UUID][]*vehicle.Vehicle{
		h.ID: {
			{Kind: vehicle.KindMotorbike},
			{Kind: vehicle.KindMotorbike},
			{Kind: vehicle.KindCar},
			{Kind: vehicle.KindBicycle},
		},
	}

	amount, note := tariff.vehicleFee(h, byHousehold)
	assert.Equal(t, int64(1_340_000), amount)
	assert.Equal(t, "2 motorbike(s), 1 car(s)", note)
}

func TestTariff_VehicleFee_NoVehicles(t *testing.T) {
	h := &household.Household{ID: uuid.New()}

	amount, _ := tariff.vehicleFee(h, nil)
	assert.Zero(t, amount)
}

func TestTariff_AreaFee(t *testing.T) {
	type testCase struct {
		name string
		rate float64
		area float64
		want int64
	}

	tests := []testCase{
		{name: "Management50", rate: tariff.ManagementPerSqm, area: 50, want: 350_000},
		{name: "Service50", rate: tariff.ServicePerSqm, area: 50, want: 500_000},
		{name: "FractionalAreaRounds", rate: tariff.ManagementPerSqm, area: 62.5, want: 437_500},
		{name: "ZeroArea", rate: tariff.ServicePerSqm, area: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := tariff.areaFee(tt.rate)
			require.NotNil(t, calc)

			amount, _ := calc(&household.Household{ID: uuid.New(), Area: tt.area}, nil)
			assert.Equal(t, tt.want, amount)
		})
	}
}

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusPaid))
	assert.True(t, StatusPending.CanTransition(StatusFailed))
	assert.True(t, StatusFailed.CanTransition(StatusPending))

	assert.False(t, StatusPaid.CanTransition(StatusPending))
	assert.False(t, StatusPaid.CanTransition(StatusFailed))
	assert.False(t, StatusFailed.CanTransition(StatusPaid))
	assert.False(t, StatusPending.CanTransition(StatusPending))
}
