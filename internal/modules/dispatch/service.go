// README: Geographic dispatch resolver; nearest eligible depot wins.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caravan/internal/maps"
	"caravan/internal/modules/calendar"
	"caravan/internal/types"
)

var (
	// ErrNoDispatcher means no location passed the service-area and data
	// filters, or the origin could not be geocoded.
	ErrNoDispatcher = errors.New("no serviceable dispatch location")
	// ErrNoRoute means road routing failed for one of the three legs.
	ErrNoRoute = errors.New("no route")
)

// StoreProvider hands out the current calendar store.
type StoreProvider interface {
	GetStore(ctx context.Context) *calendar.Store
}

// Geocoder resolves a free-text address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Point, error)
}

// Router computes road distance and duration between two endpoints, each a
// free-text address or a "lat,lng" pair.
type Router interface {
	Route(ctx context.Context, origin, destination string) (maps.Leg, error)
}

// Resolver selects the dispatch location for a request.
type Resolver struct {
	stores   StoreProvider
	geocoder Geocoder
	router   Router
}

func NewResolver(stores StoreProvider, geocoder Geocoder, router Router) *Resolver {
	return &Resolver{stores: stores, geocoder: geocoder, router: router}
}

type candidate struct {
	loc    *calendar.LocationRecord
	crowKm float64
}

// Resolve picks the nearest in-service-area location with usable data,
// resolves its rate for the requested date, and routes the three job legs.
// A rate failure at the nearest location fails the whole resolution: a
// farther depot is never silently substituted just because it has a rate.
func (r *Resolver) Resolve(ctx context.Context, origin, destination string, date time.Time) (*Assignment, error) {
	store := r.stores.GetStore(ctx)
	originRegion := ClassifyRegion(origin)

	var eligible []*calendar.LocationRecord
	for _, loc := range store.Locations {
		if !loc.HasRates() || loc.Coord == nil {
			continue
		}
		if !servesRegion(loc.Region, loc.Name, originRegion) {
			continue
		}
		eligible = append(eligible, loc)
	}
	if len(eligible) == 0 {
		return nil, ErrNoDispatcher
	}

	originPt, err := r.geocoder.Geocode(ctx, origin)
	if err != nil {
		return nil, fmt.Errorf("%w: geocode origin: %v", ErrNoDispatcher, err)
	}

	candidates := make([]candidate, 0, len(eligible))
	for _, loc := range eligible {
		candidates = append(candidates, candidate{
			loc:    loc,
			crowKm: haversineKm(originPt.Lat, originPt.Lng, loc.Coord.Lat, loc.Coord.Lng),
		})
	}
	sortByDistance(candidates, func(c candidate) float64 { return c.crowKm })

	// Deterministic tie-break: equidistant depots resolve by identifier.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.crowKm != candidates[0].crowKm {
			break
		}
		if c.loc.ID < best.loc.ID {
			best = c
		}
	}

	rate, rateDate, err := calendar.ResolveRate(best.loc, date)
	if err != nil {
		return nil, err
	}

	plan, err := r.routeLegs(ctx, best.loc, origin, destination)
	if err != nil {
		return nil, err
	}

	return &Assignment{
		LocationID: best.loc.ID,
		Location:   best.loc,
		CrowKm:     best.crowKm,
		BaseRate:   rate,
		RateDate:   rateDate,
		Origin:     originPt,
		Plan:       plan,
	}, nil
}

func (r *Resolver) routeLegs(ctx context.Context, loc *calendar.LocationRecord, origin, destination string) (RoutePlan, error) {
	depot := fmt.Sprintf("%f,%f", loc.Coord.Lat, loc.Coord.Lng)

	var plan RoutePlan
	var err error
	if plan.DepotToOrigin, err = r.router.Route(ctx, depot, origin); err != nil {
		return RoutePlan{}, fmt.Errorf("%w: depot to origin: %v", ErrNoRoute, err)
	}
	if plan.OriginToDestination, err = r.router.Route(ctx, origin, destination); err != nil {
		return RoutePlan{}, fmt.Errorf("%w: origin to destination: %v", ErrNoRoute, err)
	}
	if plan.DestinationToDepot, err = r.router.Route(ctx, destination, depot); err != nil {
		return RoutePlan{}, fmt.Errorf("%w: destination to depot: %v", ErrNoRoute, err)
	}
	return plan, nil
}
