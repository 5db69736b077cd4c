// README: Anchor strategy — fixed crew-tier hourly pricing.
package pricing

import (
	"fmt"

	"caravan/internal/modules/dispatch"
	"caravan/internal/types"
)

// Anchor prices off a fixed crew-size hourly table with no calendar
// dependency. Travel time bills at the same hourly rate over the full depot
// round trip, a one-time flat fee is added per truck, and a geographic
// multiplier raises the hourly for certain origin regions.
type Anchor struct{}

var anchorHourlyByCrew = map[int]types.Money{
	2: types.CAD(130_00),
	3: types.CAD(170_00),
	4: types.CAD(210_00),
	5: types.CAD(250_00),
	6: types.CAD(290_00),
}

var anchorRegionMultiplier = map[string]float64{
	"Mississauga": 1.10,
	"Brampton":    1.15,
	"Hamilton":    1.20,
}

const (
	anchorTruckFeeCents    = 80_00
	anchorMaxTravelMinutes = 480
)

func (Anchor) Vendor() string { return VendorAnchor }

func (Anchor) Calculate(job Job, asg *dispatch.Assignment, ov Overrides) (*Quote, error) {
	crew := crewForRooms(job.Rooms, job.HasHeavyItems())
	trucks := truckCountFor(crew)

	hourly, ok := hourlyFromTable(crew, anchorHourlyByCrew, ov)
	if !ok {
		return nil, fmt.Errorf("anchor: no hourly rate for crew of %d", crew)
	}
	if mult, found := anchorRegionMultiplier[job.OriginRegion]; found {
		hourly = hourly.MulHours(mult)
	}

	travel := asg.Plan.TotalDuration()
	if int(travel.Minutes()) > anchorMaxTravelMinutes {
		return nil, ErrTravelExceeded
	}

	hours := laborHours(job)
	labor := hourly.MulHours(hours)
	travelCost := hourly.MulHours(travel.Hours())
	truckFee := types.CAD(anchorTruckFeeCents).MulInt(int64(trucks))

	heavy := heavyItemCost(job.HeavyItems, anchorHeavyItemFees, ov)
	// Anchor quotes every extra service manually.
	services, deferred := serviceCost(job.Services, nil, ov)

	total := labor.Add(travelCost).Add(truckFee).Add(heavy).Add(services)
	return &Quote{
		Vendor:           VendorAnchor,
		Labor:            labor,
		Travel:           travelCost.Add(truckFee),
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

var anchorHeavyItemFees = map[string]types.Money{
	"piano":      types.CAD(300_00),
	"safe":       types.CAD(350_00),
	"pool_table": types.CAD(400_00),
	"appliance":  types.CAD(100_00),
}
