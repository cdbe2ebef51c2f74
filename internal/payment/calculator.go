package payment

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hmdang/bluemoon/internal/fee"
	"github.com/hmdang/bluemoon/internal/household"
	"github.com/hmdang/bluemoon/internal/vehicle"
)

// Tariff holds the rates the calculators apply. Amounts are VND; per-area
// rates apply to the household floor area in square meters.
type Tariff struct {
	Motorbike        int64
	Car              int64
	ManagementPerSqm float64
	ServicePerSqm    float64
}

// calculator computes the amount one household owes for a fee, plus a note
// describing how the amount was derived. Pure; vehiclesByHousehold is only
// consulted by the vehicle calculator.
type calculator func(h *household.Household, vehiclesByHousehold map[uuid.UUID][]*vehicle.Vehicle) (int64, string)

// calculatorFor resolves the calculator for a fee category. The switch is
// exhaustive over the disbursable subset; every other known category returns
// false and the engine refuses the disbursement instead of writing nothing.
func (t Tariff) calculatorFor(c fee.Category) (calculator, bool) {
	switch c {
	case fee.CategoryVehicle:
		return t.vehicleFee, true
	case fee.CategoryManagement:
		return t.areaFee(t.ManagementPerSqm), true
	case fee.CategoryService:
		return t.areaFee(t.ServicePerSqm), true
	case fee.CategoryWater, fee.CategoryElectricity, fee.CategoryMaintenance, fee.CategoryOther:
		return nil, false
	}

	return nil, false
}

func (t Tariff) vehicleFee(h *household.Household, byHousehold map[uuid.UUID][]*vehicle.Vehicle) (int64, string) {
	var motorbikes, cars int64

	for _, v := range byHousehold[h.ID] {
		switch v.Kind {
		case vehicle.KindMotorbike:
			motorbikes++
		case vehicle.KindCar:
			cars++
		case vehicle.KindBicycle:
			// free
		}
	}

	amount := motorbikes*t.Motorbike + cars*t.Car
	note := fmt.Sprintf("%d motorbike(s), %d car(s)", motorbikes, cars)

	return amount, note
}

func (t Tariff) areaFee(rate float64) calculator {
	return func(h *household.Household, _ map[uuid.UUID][]*vehicle.Vehicle) (int64, string) {
		amount := int64(math.Round(h.Area * rate))
		note := fmt.Sprintf("%.1f m2 at %.0f VND/m2", h.Area, rate)

		return amount, note
	}
}
