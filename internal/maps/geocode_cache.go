// README: Redis-backed cache decorator for geocode lookups.
package maps

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"caravan/internal/types"
)

const geocodeCacheTTL = 24 * time.Hour

// Geocoder is implemented by GeocodeService and by test stubs.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Point, error)
}

// CachedGeocoder caches successful lookups in Redis. Cache errors fall
// through to the inner geocoder; only definite results are cached.
type CachedGeocoder struct {
	inner Geocoder
	rdb   *redis.Client
}

func NewCachedGeocoder(inner Geocoder, rdb *redis.Client) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, rdb: rdb}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (types.Point, error) {
	key := "geocode:" + strings.ToLower(strings.TrimSpace(address))

	if v, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var p types.Point
		if _, err := fmt.Sscanf(v, "%f,%f", &p.Lat, &p.Lng); err == nil {
			return p, nil
		}
	}

	p, err := c.inner.Geocode(ctx, address)
	if err != nil {
		return types.Point{}, err
	}

	val := fmt.Sprintf("%f,%f", p.Lat, p.Lng)
	if err := c.rdb.Set(ctx, key, val, geocodeCacheTTL).Err(); err != nil {
		log.Printf("geocode cache set failed: %v", err)
	}
	return p, nil
}
