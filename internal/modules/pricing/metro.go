// README: Metro strategy — dynamic calendar-tiered hourly pricing.
package pricing

import (
	"caravan/internal/modules/dispatch"
	"caravan/internal/types"
)

// Metro prices off the depot's daily calendar rate: the resolved rate is
// the one-truck two-mover hourly, adjusted upward by crew/truck tier.
// Travel bills from a flat tier table in the local regime and switches to
// per-kilometre plus fuel surcharge in long-distance mode.
type Metro struct{}

// One-truck crews add a flat increment per extra mover over the base rate;
// two-truck crews run off double the base rate with their own increments.
var (
	metroOneTruckIncrement = map[int]types.Money{
		2: types.CAD(0),
		3: types.CAD(30_00),
		4: types.CAD(60_00),
	}
	metroTwoTruckIncrement = map[int]types.Money{
		4: types.CAD(0),
		5: types.CAD(30_00),
		6: types.CAD(60_00),
	}
)

const (
	// Travel tiers are 15-minute-wide bands of total depot round-trip time.
	metroTravelBandMinutes = 15
	// Past this round-trip time the job is long distance: travel bills per
	// kilometre and a fuel surcharge applies.
	metroLongDistanceMinutes = 180
	// Hard serviceability limit on round-trip travel time.
	metroMaxTravelMinutes = 600

	metroPerKmCents = 150
)

// Fuel surcharge by travel-time band, long-distance mode only.
func metroFuelSurcharge(travelMin int) types.Money {
	switch {
	case travelMin < 240:
		return types.CAD(120_00)
	case travelMin < 300:
		return types.CAD(180_00)
	case travelMin < 360:
		return types.CAD(240_00)
	default:
		return types.CAD(300_00)
	}
}

func (Metro) Vendor() string { return VendorMetro }

func (Metro) Calculate(job Job, asg *dispatch.Assignment, ov Overrides) (*Quote, error) {
	rate := asg.BaseRate
	crew := crewForRooms(job.Rooms, job.HasHeavyItems())
	trucks := truckCountFor(crew)

	hourly, ok := ov.HourlyByCrew[crew]
	if !ok {
		if trucks == 1 {
			inc, found := metroOneTruckIncrement[crew]
			if !found {
				inc = metroOneTruckIncrement[4]
			}
			hourly = rate.Add(inc)
		} else {
			inc, found := metroTwoTruckIncrement[crew]
			if !found {
				inc = metroTwoTruckIncrement[6]
			}
			hourly = rate.MulInt(2).Add(inc)
		}
	}

	hours := laborHours(job)
	labor := hourly.MulHours(hours)

	travelMin := int(asg.Plan.TotalDuration().Minutes())
	if travelMin > metroMaxTravelMinutes {
		return nil, ErrTravelExceeded
	}

	var travel, fuel types.Money
	longDistance := travelMin > metroLongDistanceMinutes
	if longDistance {
		travel = types.FromDollars(float64(metroPerKmCents) / 100 * asg.Plan.TotalKm())
		fuel = metroFuelSurcharge(travelMin)
	} else {
		band := travelMin / metroTravelBandMinutes
		factor := 0.25 * float64(band+1)
		travel = rate.MulHours(factor).MulInt(int64(trucks))
		fuel = types.CAD(0)
	}

	heavy := heavyItemCost(job.HeavyItems, metroHeavyItemFees, ov)
	services, deferred := serviceCost(job.Services, metroServiceFees, ov)

	return &Quote{
		Vendor:           VendorMetro,
		Labor:            labor,
		Travel:           travel,
		Fuel:             fuel,
		HeavyItems:       heavy,
		Services:         services,
		Total:            labor.Add(travel).Add(fuel).Add(heavy).Add(services),
		CrewSize:         crew,
		TruckCount:       trucks,
		Hours:            hours,
		LongDistance:     longDistance,
		DeferredServices: deferred,
		Assignment:       asg,
	}, nil
}

var metroHeavyItemFees = map[string]types.Money{
	"piano":      types.CAD(250_00),
	"safe":       types.CAD(300_00),
	"pool_table": types.CAD(350_00),
	"appliance":  types.CAD(90_00),
}

// Storage is quoted by the depot manager, never priced here.
var metroServiceFees = map[string]types.Money{
	"packing":      types.CAD(150_00),
	"cleaning":     types.CAD(120_00),
	"junk_removal": types.CAD(100_00),
}
