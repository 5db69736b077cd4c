// README: Road routing client backed by the Google Maps Directions API.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// Leg is one driven segment of a trip.
type Leg struct {
	Km       float64
	Duration time.Duration
}

// RouteService handles interactions with the Google Directions API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// Route returns driving distance and duration from origin to destination.
// Both endpoints are free text: an address or a "lat,lng" pair.
func (s *RouteService) Route(ctx context.Context, origin, destination string) (Leg, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      "CA",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Leg{}, fmt.Errorf("directions api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Leg{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return Leg{
		Km:       float64(leg.Distance.Meters) / 1000.0,
		Duration: leg.Duration,
	}, nil
}
