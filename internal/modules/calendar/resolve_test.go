// README: Date resolution tests (forward scan, month-day projection).
package calendar

import (
	"testing"
	"time"

	"caravan/internal/types"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRate_ExactDate(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("2025-06-01", types.CAD(150_00))

	rate, on, err := ResolveRate(loc, day(2025, 6, 1))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rate.Amount != 150_00 {
		t.Errorf("rate = %s, want 150.00 CAD", rate)
	}
	if !on.Equal(day(2025, 6, 1)) {
		t.Errorf("resolved date = %s, want 2025-06-01", on)
	}
}

func TestResolveRate_NearestFutureNeverPast(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("2025-05-30", types.CAD(120_00)) // in the past; must never be chosen
	loc.SetRate("2025-06-10", types.CAD(180_00))
	loc.SetRate("2025-06-20", types.CAD(200_00))

	rate, on, err := ResolveRate(loc, day(2025, 6, 1))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rate.Amount != 180_00 {
		t.Errorf("rate = %s, want the chronologically nearest future entry 180.00", rate)
	}
	if !on.Equal(day(2025, 6, 10)) {
		t.Errorf("resolved date = %s, want 2025-06-10", on)
	}
}

func TestResolveRate_MonthDayKeyMatchesAnyYear(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("06-15", types.CAD(175_00))

	for _, target := range []time.Time{day(2025, 6, 1), day(2031, 6, 14)} {
		rate, on, err := ResolveRate(loc, target)
		if err != nil {
			t.Fatalf("resolve from %s: %v", target, err)
		}
		if rate.Amount != 175_00 {
			t.Errorf("rate = %s, want 175.00", rate)
		}
		if on.Month() != time.June || on.Day() != 15 {
			t.Errorf("resolved to %s, want June 15", on)
		}
	}
}

func TestResolveRate_ExactKeyWinsOverMonthDay(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("2025-06-01", types.CAD(150_00))
	loc.SetRate("06-01", types.CAD(999_00))

	rate, _, err := ResolveRate(loc, day(2025, 6, 1))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rate.Amount != 150_00 {
		t.Errorf("rate = %s, want exact-year entry 150.00", rate)
	}
}

func TestResolveRate_MonthDayWrapsYearEnd(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("01-05", types.CAD(160_00))

	_, on, err := ResolveRate(loc, day(2025, 12, 20))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !on.Equal(day(2026, 1, 5)) {
		t.Errorf("resolved date = %s, want 2026-01-05", on)
	}
}

func TestResolveRate_NoEntryWithinWindowFails(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("2025-01-01", types.CAD(150_00)) // over a year before the target

	if _, _, err := ResolveRate(loc, day(2026, 1, 15)); err != ErrNoRate {
		t.Fatalf("expected ErrNoRate, got %v", err)
	}

	empty := NewLocationRecord("b")
	if _, _, err := ResolveRate(empty, day(2025, 6, 1)); err != ErrNoRate {
		t.Fatalf("empty calendar: expected ErrNoRate, got %v", err)
	}
}

func TestSetRate_RejectsNonPositive(t *testing.T) {
	loc := NewLocationRecord("a")
	loc.SetRate("2025-06-01", types.CAD(0))
	loc.SetRate("2025-06-02", types.CAD(-100))
	if loc.HasRates() {
		t.Fatalf("non-positive rates must never be stored: %v", loc.Rates)
	}
}
