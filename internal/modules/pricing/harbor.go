// README: Harbor strategy — crew-tier hourly with a per-kilometre distance surcharge.
package pricing

import (
	"fmt"

	"caravan/internal/modules/dispatch"
	"caravan/internal/types"
)

// Harbor prices off a crew-size hourly table, adds a flat one-hour travel
// fee approximating the return trip, and surcharges each kilometre of the
// origin-to-destination leg beyond the free threshold.
type Harbor struct{}

var harborHourlyByCrew = map[int]types.Money{
	2: types.CAD(120_00),
	3: types.CAD(155_00),
	4: types.CAD(190_00),
	5: types.CAD(225_00),
	6: types.CAD(260_00),
}

const (
	harborFreeKm        = 50.0
	harborPerKmCents    = 135
	harborFlatTravelHrs = 1.0
	harborMaxJobKm      = 400.0
)

func (Harbor) Vendor() string { return VendorHarbor }

func (Harbor) Calculate(job Job, asg *dispatch.Assignment, ov Overrides) (*Quote, error) {
	crew := crewForRooms(job.Rooms, job.HasHeavyItems())
	trucks := truckCountFor(crew)

	hourly, ok := hourlyFromTable(crew, harborHourlyByCrew, ov)
	if !ok {
		return nil, fmt.Errorf("harbor: no hourly rate for crew of %d", crew)
	}

	jobKm := asg.Plan.OriginToDestination.Km
	if jobKm > harborMaxJobKm {
		return nil, ErrTravelExceeded
	}

	hours := laborHours(job)
	labor := hourly.MulHours(hours)
	travel := hourly.MulHours(harborFlatTravelHrs)
	if over := jobKm - harborFreeKm; over > 0 {
		travel = travel.Add(types.FromDollars(float64(harborPerKmCents) / 100 * over))
	}

	heavy := heavyItemCost(job.HeavyItems, harborHeavyItemFees, ov)
	services, deferred := serviceCost(job.Services, harborServiceFees, ov)

	total := labor.Add(travel).Add(heavy).Add(services)
	return &Quote{
		Vendor:           VendorHarbor,
		Labor:            labor,
		Travel:           travel,
		HeavyItems:       heavy,
		Services:         services,
		Total:            total,
		CrewSize:         crew,
		TruckCount:       trucks,
		Hours:            hours,
		DeferredServices: deferred,
		Assignment:       asg,
	}, nil
}

var harborHeavyItemFees = map[string]types.Money{
	"piano":      types.CAD(200_00),
	"safe":       types.CAD(250_00),
	"pool_table": types.CAD(300_00),
	"appliance":  types.CAD(75_00),
}

var harborServiceFees = map[string]types.Money{
	"packing":      types.CAD(175_00),
	"junk_removal": types.CAD(110_00),
}
