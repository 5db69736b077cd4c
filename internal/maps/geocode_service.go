// README: Geocoding client backed by the Google Maps Geocoding API.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"caravan/internal/types"
)

// ErrNoResult means the address could not be geocoded at all. Dispatch
// resolution treats this as a hard failure for the request.
var ErrNoResult = fmt.Errorf("geocode: no result")

// GeocodeService resolves free-text addresses to coordinates.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the coordinate of the first match for address. Input is
// free text straight from the caller; results are biased to Canada.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (types.Point, error) {
	r := &maps.GeocodingRequest{
		Address: address,
		Region:  "CA",
	}
	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return types.Point{}, fmt.Errorf("geocode api error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, ErrNoResult
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
