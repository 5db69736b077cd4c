// README: Vendor override store backed by PostgreSQL.
package pricing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"caravan/internal/types"
)

// Store reads per-vendor rate overrides from the vendor_overrides table:
//
//	vendor TEXT, kind TEXT, item TEXT, amount_cents BIGINT
//
// where kind is one of 'hourly' (item = crew size), 'heavy_item' or
// 'service'. Overrides are patched by the admin surface; this core only
// ever reads them.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) LoadOverrides(ctx context.Context, vendor string) (Overrides, error) {
	ov := Overrides{
		HourlyByCrew: make(map[int]types.Money),
		HeavyItems:   make(map[string]types.Money),
		Services:     make(map[string]types.Money),
	}

	rows, err := s.db.Query(ctx,
		`SELECT kind, item, amount_cents FROM vendor_overrides WHERE vendor = $1`, vendor)
	if err != nil {
		return Overrides{}, fmt.Errorf("load overrides for %s: %w", vendor, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, item string
		var cents int64
		if err := rows.Scan(&kind, &item, &cents); err != nil {
			return Overrides{}, fmt.Errorf("scan override row: %w", err)
		}
		if cents <= 0 {
			continue
		}
		switch kind {
		case "hourly":
			crew, err := strconv.Atoi(item)
			if err != nil || crew < 1 {
				continue
			}
			ov.HourlyByCrew[crew] = types.CAD(cents)
		case "heavy_item":
			ov.HeavyItems[item] = types.CAD(cents)
		case "service":
			ov.Services[item] = types.CAD(cents)
		}
	}
	if err := rows.Err(); err != nil {
		return Overrides{}, fmt.Errorf("read override rows: %w", err)
	}
	return ov, nil
}
