// README: Dispatch assignment model — the chosen depot for one request.
package dispatch

import (
	"time"

	"caravan/internal/maps"
	"caravan/internal/modules/calendar"
	"caravan/internal/types"
)

// RoutePlan holds the three driven legs of a job: depot to origin, origin
// to destination, destination back to the depot.
type RoutePlan struct {
	DepotToOrigin       maps.Leg
	OriginToDestination maps.Leg
	DestinationToDepot  maps.Leg
}

// TotalKm is the full depot round-trip distance.
func (p RoutePlan) TotalKm() float64 {
	return p.DepotToOrigin.Km + p.OriginToDestination.Km + p.DestinationToDepot.Km
}

// TotalDuration is the full depot round-trip travel time.
func (p RoutePlan) TotalDuration() time.Duration {
	return p.DepotToOrigin.Duration + p.OriginToDestination.Duration + p.DestinationToDepot.Duration
}

// Assignment is the per-request dispatch result. It lives only as long as
// the quote being computed.
type Assignment struct {
	LocationID types.ID
	Location   *calendar.LocationRecord
	// CrowKm is the great-circle distance from the origin to the depot,
	// the quantity the depot was selected on.
	CrowKm float64
	// BaseRate is the calendar rate resolved for the request date, and
	// RateDate the future date the lookup actually landed on.
	BaseRate types.Money
	RateDate time.Time
	Origin   types.Point
	Plan     RoutePlan
}
