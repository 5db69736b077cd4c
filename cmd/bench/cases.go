// README: Canned quote scenarios over a fixture store with stub geocoding/routing.
package main

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"caravan/internal/maps"
	"caravan/internal/modules/calendar"
	"caravan/internal/modules/dispatch"
	"caravan/internal/modules/pricing"
	"caravan/internal/modules/quote"
	"caravan/internal/types"
)

type Result struct {
	Scenario string
	Vendor   string
	Omitted  bool
	Note     string
}

type Scenario struct {
	Name string
	Req  quote.Request
}

type Runner struct {
	quotes *quote.Service
}

func NewRunner() *Runner {
	stores := &fixedStoreProvider{store: fixtureStore()}
	resolver := dispatch.NewResolver(stores, stubGeocoder{}, stubRouter{})
	pricer := pricing.NewService(nil)
	return &Runner{quotes: quote.NewService(resolver, pricer)}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	var results []Result
	for _, sc := range scenarios() {
		fmt.Printf("\n== %s ==\n", sc.Name)
		quotes, err := r.quotes.QuoteAll(ctx, sc.Req)
		if err != nil {
			fmt.Printf("  dispatch failed: %s\n", quote.FailureReason(err))
			for _, v := range pricing.Vendors {
				results = append(results, Result{Scenario: sc.Name, Vendor: v, Omitted: true, Note: quote.FailureReason(err)})
			}
			continue
		}
		quotedBy := make(map[string]bool)
		for _, q := range quotes {
			quotedBy[q.Vendor] = true
			fmt.Printf("  %-8s total=%-12s labor=%-12s travel=%-12s crew=%d trucks=%d hours=%.2f depot=%s\n",
				q.Vendor, q.Total, q.Labor, q.Travel, q.CrewSize, q.TruckCount, q.Hours, q.Assignment.LocationID)
			results = append(results, Result{Scenario: sc.Name, Vendor: q.Vendor})
		}
		for _, v := range pricing.Vendors {
			if !quotedBy[v] {
				fmt.Printf("  %-8s omitted\n", v)
				results = append(results, Result{Scenario: sc.Name, Vendor: v, Omitted: true})
			}
		}
	}
	return results
}

func scenarios() []Scenario {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	return []Scenario{
		{
			Name: "3-room condo move within Toronto",
			Req: quote.Request{
				Origin:      "88 Queen St E, Toronto, ON",
				Destination: "25 Bay St, Toronto, ON",
				MoveDate:    date,
				Rooms:       3,
				Elevator:    true,
			},
		},
		{
			Name: "house with piano, Mississauga to Hamilton",
			Req: quote.Request{
				Origin:       "500 Burnhamthorpe Rd, Mississauga, ON",
				Destination:  "120 King St W, Hamilton, ON",
				MoveDate:     date,
				Rooms:        4,
				StairFlights: 2,
				HeavyItems:   map[string]int{"piano": 1},
				Services:     []string{"packing", "storage"},
			},
		},
		{
			Name: "long-distance move to Ottawa",
			Req: quote.Request{
				Origin:      "10 Dundas St E, Toronto, ON",
				Destination: "150 Elgin St, Ottawa, ON",
				MoveDate:    date,
				Rooms:       2,
			},
		},
	}
}

type fixedStoreProvider struct{ store *calendar.Store }

func (p *fixedStoreProvider) GetStore(context.Context) *calendar.Store { return p.store }

func fixtureStore() *calendar.Store {
	store := calendar.NewStore()
	store.RefreshedAt = time.Now()

	add := func(id, name, region string, lat, lng float64, rate int64) {
		rec := calendar.NewLocationRecord(types.ID(id))
		rec.Name = name
		rec.Region = region
		rec.Coord = &types.Point{Lat: lat, Lng: lng}
		for d := 0; d < 365; d++ {
			day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
			rec.SetRate(calendar.DateKey(day), types.CAD(rate))
		}
		store.Locations[rec.ID] = rec
	}
	add("toronto-central", "Toronto Central", "Toronto", 43.6532, -79.3832, 179_00)
	add("north-york", "North York", "North York", 43.7615, -79.4111, 169_00)
	add("mississauga-east", "Mississauga East", "Mississauga", 43.5890, -79.6441, 159_00)
	return store
}

// stubGeocoder maps known fixture addresses to coordinates.
type stubGeocoder struct{}

var stubPoints = map[string]types.Point{
	"toronto":     {Lat: 43.6532, Lng: -79.3832},
	"mississauga": {Lat: 43.5890, Lng: -79.6441},
	"hamilton":    {Lat: 43.2557, Lng: -79.8711},
	"ottawa":      {Lat: 45.4215, Lng: -75.6972},
}

func (stubGeocoder) Geocode(_ context.Context, address string) (types.Point, error) {
	norm := strings.ToLower(address)
	for key, pt := range stubPoints {
		if strings.Contains(norm, key) {
			return pt, nil
		}
	}
	return types.Point{}, maps.ErrNoResult
}

// stubRouter synthesizes legs from great-circle distance at 60 km/h with a
// 1.3 road-winding factor.
type stubRouter struct{}

func (stubRouter) Route(ctx context.Context, origin, destination string) (maps.Leg, error) {
	o, err := resolveEndpoint(ctx, origin)
	if err != nil {
		return maps.Leg{}, err
	}
	d, err := resolveEndpoint(ctx, destination)
	if err != nil {
		return maps.Leg{}, err
	}
	km := 1.3 * greatCircleKm(o, d)
	return maps.Leg{Km: km, Duration: time.Duration(km / 60 * float64(time.Hour))}, nil
}

func resolveEndpoint(ctx context.Context, endpoint string) (types.Point, error) {
	var p types.Point
	if n, err := fmt.Sscanf(endpoint, "%f,%f", &p.Lat, &p.Lng); err == nil && n == 2 {
		return p, nil
	}
	return stubGeocoder{}.Geocode(ctx, endpoint)
}

func greatCircleKm(a, b types.Point) float64 {
	const r = 6371.0
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return r * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
