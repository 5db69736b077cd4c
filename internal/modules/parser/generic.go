// README: Heuristic parser that works on any sheet layout.
package parser

import (
	"strconv"
	"strings"

	"caravan/internal/modules/calendar"
	"caravan/internal/modules/sheets"
	"caravan/internal/types"
)

// Generic extracts a location record from an arbitrary grid by scanning for
// structural tokens: month headers set the current month (and year, when
// present), day-number cells pair with a plausible rate in the same column
// one or two rows below, and label-prefixed cells carry metadata. A record
// with no calendar entries is valid output; the location is simply excluded
// from dispatch.
func Generic(id string, t sheets.RawTable) *calendar.LocationRecord {
	rec := calendar.NewLocationRecord(types.ID(id))

	month, year := 0, 0
	for r := 0; r < t.Rows(); r++ {
		if isWeekdayHeaderRow(t[r]) {
			continue
		}
		for c := 0; c < t.Cols(r); c++ {
			cell := t.Cell(r, c)
			if cell == "" {
				continue
			}

			if isNotesMarker(cell) {
				rec.Notes = append(rec.Notes, collectNotes(t, r, c)...)
				continue
			}
			if label, value, ok := splitLabel(cell, t.Cell(r, c+1)); ok {
				applyMetadata(rec, label, value)
				continue
			}
			if m, y, ok := monthToken(cell); ok {
				month = m
				if y != 0 {
					year = y
				}
				continue
			}
			if y, ok := yearToken(cell); ok {
				year = y
				continue
			}

			// Combined "Jun 15" day labels carry their own month.
			if m, d, ok := monthDayToken(cell); ok {
				if rate, ok := rateBelow(t, r, c); ok {
					rec.SetRate(calendar.Key(year, m, d), rate)
				}
				continue
			}

			// Bare day numbers only make sense inside a month block.
			if month == 0 {
				continue
			}
			if day, ok := dayNumber(cell); ok {
				if rate, ok := rateBelow(t, r, c); ok {
					rec.SetRate(calendar.Key(year, month, day), rate)
				}
			}
		}
	}

	if rec.Name == "" {
		rec.Name = guessName(t)
	}
	return rec
}

// rateBelow finds the rate cell paired with a day cell at (r, c): the same
// column, one or two rows down. The scan stops at the next day number so a
// following week row is never mistaken for a rate.
func rateBelow(t sheets.RawTable, r, c int) (types.Money, bool) {
	for dr := 1; dr <= 2; dr++ {
		cell := t.Cell(r+dr, c)
		if cell == "" {
			continue
		}
		if _, isDay := dayNumber(cell); isDay {
			break
		}
		if rate, ok := rateToken(cell); ok {
			return rate, true
		}
	}
	return types.Money{}, false
}

func applyMetadata(rec *calendar.LocationRecord, label, value string) {
	switch label {
	case "address":
		rec.Address = value
	case "phone":
		rec.Phone = value
	case "email":
		rec.Email = value
	case "manager":
		rec.Manager = value
	case "trucks":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && n > 0 {
			rec.TruckCount = n
		}
	case "terminal":
		rec.TerminalID = value
	case "region":
		rec.Region = value
	case "name":
		rec.Name = value
	case "coords":
		if p, ok := parseLatLng(value); ok {
			rec.Coord = &p
		}
	case "pricing":
		if rec.PricingNotes != "" {
			rec.PricingNotes += "; "
		}
		rec.PricingNotes += value
	}
}

// collectNotes gathers the free text attached to a notes marker: the
// remainder of the marker cell, then the rest of its row.
func collectNotes(t sheets.RawTable, r, c int) []string {
	var notes []string
	cell := t.Cell(r, c)
	if i := strings.IndexByte(cell, ':'); i >= 0 {
		if rest := strings.TrimSpace(cell[i+1:]); rest != "" {
			notes = append(notes, rest)
		}
	}
	for cc := c + 1; cc < t.Cols(r); cc++ {
		if v := t.Cell(r, cc); v != "" {
			notes = append(notes, v)
		}
	}
	// A bare marker usually puts the text on the following row.
	if len(notes) == 0 {
		if v := t.Cell(r+1, c); v != "" {
			if _, isRate := rateToken(v); !isRate {
				notes = append(notes, v)
			}
		}
	}
	return notes
}

// guessName picks the first textual cell near the top of the sheet that is
// not a structural token.
func guessName(t sheets.RawTable) string {
	for r := 0; r < t.Rows() && r < 3; r++ {
		for c := 0; c < t.Cols(r); c++ {
			cell := t.Cell(r, c)
			if cell == "" {
				continue
			}
			if _, _, ok := monthToken(cell); ok {
				continue
			}
			if _, ok := yearToken(cell); ok {
				continue
			}
			if !strings.ContainsFunc(cell, func(r rune) bool {
				return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			}) {
				continue
			}
			return cell
		}
	}
	return ""
}
