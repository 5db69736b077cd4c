// README: Canonical per-location calendar data and the aggregate store.
package calendar

import (
	"time"

	"caravan/internal/types"
)

// LocationRecord is the canonical form of one dispatch location's published
// sheet. Records are built once per refresh and never partially mutated.
type LocationRecord struct {
	ID      types.ID
	Name    string
	Address string
	// Coord is nil when the sheet carries no usable coordinate; such a
	// location is excluded from dispatch but kept for display.
	Coord  *types.Point
	Region string

	Phone      string
	Email      string
	Manager    string
	TruckCount int
	TerminalID string

	// Rates maps a date key to a strictly positive rate. Keys are either a
	// full date ("2025-06-01") or a year-less month-day ("06-01") when the
	// source block carried no resolvable year. An absent key means unknown,
	// never zero.
	Rates map[string]types.Money

	// PricingNotes carries formula hints taken verbatim from the sheet
	// ("min 3 hours", surcharge remarks) for operator eyes.
	PricingNotes string
	// Notes collects restricted-date and free-text operational remarks.
	Notes []string
}

func NewLocationRecord(id types.ID) *LocationRecord {
	return &LocationRecord{
		ID:    id,
		Rates: make(map[string]types.Money),
	}
}

// SetRate records a rate under key, silently dropping non-positive values.
// The strictly-positive invariant is enforced here rather than trusted to
// every parser.
func (l *LocationRecord) SetRate(key string, rate types.Money) {
	if rate.Amount <= 0 {
		return
	}
	l.Rates[key] = rate
}

// HasRates reports whether the record carries at least one calendar entry.
func (l *LocationRecord) HasRates() bool { return len(l.Rates) > 0 }

// DateKey formats t as a full calendar key.
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// MonthDayKey formats t as a year-less calendar key.
func MonthDayKey(t time.Time) string { return t.Format("01-02") }

// Key builds a calendar key from parsed components; year 0 means the source
// block carried no resolvable year.
func Key(year, month, day int) string {
	if year == 0 {
		return time.Date(2000, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("01-02")
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Store is the aggregate of all location records from one refresh cycle.
// It is swapped wholesale on successful refresh and retained stale on
// failure; readers never observe a half-built store.
type Store struct {
	Locations   map[types.ID]*LocationRecord
	RefreshedAt time.Time
}

func NewStore() *Store {
	return &Store{Locations: make(map[types.ID]*LocationRecord)}
}

// Age returns time elapsed since the store was assembled.
func (s *Store) Age(now time.Time) time.Duration {
	if s.RefreshedAt.IsZero() {
		return 1<<63 - 1
	}
	return now.Sub(s.RefreshedAt)
}
