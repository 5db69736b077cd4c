// README: Forward-looking rate resolution over sparse calendars.
package calendar

import (
	"errors"
	"time"

	"caravan/internal/types"
)

// ErrNoRate means no calendar entry exists within the lookahead window.
var ErrNoRate = errors.New("no rate available")

// lookaheadDays bounds the forward scan; one year covers every recurring
// month-day entry.
const lookaheadDays = 366

// ResolveRate returns the rate of the chronologically nearest date at or
// after target with a known entry, along with the date it landed on. Exact
// year-month-day keys win over year-less month-day keys for the same day.
// Sources publish sparse, irregular coverage; the business rule is "quote
// the soonest confirmed date", never a fabricated default.
func ResolveRate(loc *LocationRecord, target time.Time) (types.Money, time.Time, error) {
	day := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i <= lookaheadDays; i++ {
		d := day.AddDate(0, 0, i)
		if rate, ok := loc.Rates[DateKey(d)]; ok {
			return rate, d, nil
		}
		if rate, ok := loc.Rates[MonthDayKey(d)]; ok {
			return rate, d, nil
		}
	}
	return types.Money{}, time.Time{}, ErrNoRate
}
