// README: DB-backed override store tests (skipped unless CARAVAN_TEST_DSN is set).
package pricing

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"caravan/internal/types"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("CARAVAN_TEST_DSN")
	if dsn == "" {
		t.Skip("CARAVAN_TEST_DSN not set; skipping DB-backed override tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS vendor_overrides (
			vendor       TEXT   NOT NULL,
			kind         TEXT   NOT NULL,
			item         TEXT   NOT NULL,
			amount_cents BIGINT NOT NULL,
			PRIMARY KEY (vendor, kind, item)
		)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE vendor_overrides"); err != nil {
		t.Fatalf("truncate table: %v", err)
	}

	return NewStore(db)
}

func insertOverride(t *testing.T, s *Store, vendor, kind, item string, cents int64) {
	t.Helper()
	_, err := s.db.Exec(context.Background(),
		`INSERT INTO vendor_overrides (vendor, kind, item, amount_cents) VALUES ($1, $2, $3, $4)`,
		vendor, kind, item, cents)
	if err != nil {
		t.Fatalf("insert override: %v", err)
	}
}

func TestStore_LoadOverrides(t *testing.T) {
	s := setupTestStore(t)

	insertOverride(t, s, VendorMetro, "hourly", "3", 185_00)
	insertOverride(t, s, VendorMetro, "heavy_item", "piano", 275_00)
	insertOverride(t, s, VendorMetro, "service", "packing", 160_00)
	insertOverride(t, s, VendorAnchor, "hourly", "2", 140_00)

	ov, err := s.LoadOverrides(context.Background(), VendorMetro)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if got := ov.HourlyByCrew[3]; got != types.CAD(185_00) {
		t.Errorf("hourly[3] = %s, want 185.00", got)
	}
	if got := ov.HeavyItems["piano"]; got != types.CAD(275_00) {
		t.Errorf("heavy_item[piano] = %s, want 275.00", got)
	}
	if got := ov.Services["packing"]; got != types.CAD(160_00) {
		t.Errorf("service[packing] = %s, want 160.00", got)
	}
	// Rows for other vendors never leak.
	if _, found := ov.HourlyByCrew[2]; found {
		t.Error("anchor override leaked into metro")
	}
}

func TestStore_SkipsMalformedRows(t *testing.T) {
	s := setupTestStore(t)

	insertOverride(t, s, VendorHarbor, "hourly", "not-a-crew", 120_00)
	insertOverride(t, s, VendorHarbor, "heavy_item", "safe", -50_00)
	insertOverride(t, s, VendorHarbor, "service", "packing", 180_00)

	ov, err := s.LoadOverrides(context.Background(), VendorHarbor)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if len(ov.HourlyByCrew) != 0 {
		t.Errorf("non-numeric crew key stored: %v", ov.HourlyByCrew)
	}
	if len(ov.HeavyItems) != 0 {
		t.Errorf("non-positive amount stored: %v", ov.HeavyItems)
	}
	if got := ov.Services["packing"]; got != types.CAD(180_00) {
		t.Errorf("service[packing] = %s, want 180.00", got)
	}
}

func TestStore_EmptyVendorIsUsable(t *testing.T) {
	s := setupTestStore(t)

	ov, err := s.LoadOverrides(context.Background(), VendorMetro)
	if err != nil {
		t.Fatalf("load overrides: %v", err)
	}
	if len(ov.HourlyByCrew)+len(ov.HeavyItems)+len(ov.Services) != 0 {
		t.Fatalf("expected empty overrides, got %+v", ov)
	}
}
