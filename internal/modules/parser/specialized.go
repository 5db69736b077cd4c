// README: Hand-written parsers for known per-location sheet layouts.
package parser

import (
	"strconv"
	"strings"
	"time"

	"caravan/internal/modules/calendar"
	"caravan/internal/modules/sheets"
	"caravan/internal/types"
)

// parseTorontoCentral handles the tidy two-column export the Toronto
// Central manager publishes: a fixed metadata block in rows 0–6 (labels in
// column 0, values in column 1), a "DATE,RATE" header, then one full date
// and rate per row. The generic heuristics cannot pair full "2025-06-01"
// date cells, hence the specialized layout.
func parseTorontoCentral(id string, t sheets.RawTable) *calendar.LocationRecord {
	rec := calendar.NewLocationRecord(types.ID(id))
	rec.Name = t.Cell(0, 1)
	rec.Address = t.Cell(1, 1)
	rec.Phone = t.Cell(2, 1)
	rec.Email = t.Cell(3, 1)
	rec.Manager = t.Cell(4, 1)
	if n, err := strconv.Atoi(t.Cell(5, 1)); err == nil {
		rec.TruckCount = n
	}
	if p, ok := parseLatLng(t.Cell(6, 1)); ok {
		rec.Coord = &p
	}
	rec.Region = "Toronto"

	// Locate the header; the metadata block occasionally grows a row.
	start := -1
	for r := 5; r < t.Rows() && r < 12; r++ {
		if strings.EqualFold(t.Cell(r, 0), "DATE") && strings.EqualFold(t.Cell(r, 1), "RATE") {
			start = r + 1
			break
		}
	}
	if start < 0 {
		return rec
	}

	for r := start; r < t.Rows(); r++ {
		cell := t.Cell(r, 0)
		if cell == "" {
			continue
		}
		if isNotesMarker(cell) {
			rec.Notes = append(rec.Notes, collectNotes(t, r, 0)...)
			continue
		}
		d, err := time.Parse("2006-01-02", cell)
		if err != nil {
			continue
		}
		if rate, ok := rateToken(t.Cell(r, 1)); ok {
			rec.SetRate(calendar.DateKey(d), rate)
		}
	}
	return rec
}

// parseNorthYork handles the North York "week strip" layout: a banner row,
// a metadata row pair, then repeating strips where a row of combined
// "Jun 1" day labels sits directly above its rate row. The banner text is
// the layout guard; anything else falls through to the generic parser.
func parseNorthYork(id string, t sheets.RawTable) *calendar.LocationRecord {
	if !strings.Contains(strings.ToUpper(t.Cell(0, 0)), "DAILY RATE BOARD") {
		return nil
	}

	rec := calendar.NewLocationRecord(types.ID(id))
	rec.Name = t.Cell(0, 1)
	rec.Region = "North York"

	// Row 1 holds "Address | <value> | Phone | <value>"; row 2 the same for
	// coordinates and trucks.
	if strings.EqualFold(t.Cell(1, 0), "address") {
		rec.Address = t.Cell(1, 1)
	}
	if strings.EqualFold(t.Cell(1, 2), "phone") {
		rec.Phone = t.Cell(1, 3)
	}
	if strings.EqualFold(t.Cell(2, 0), "gps") {
		if p, ok := parseLatLng(t.Cell(2, 1)); ok {
			rec.Coord = &p
		}
	}
	if strings.EqualFold(t.Cell(2, 2), "trucks") {
		if n, err := strconv.Atoi(t.Cell(2, 3)); err == nil {
			rec.TruckCount = n
		}
	}

	year := 0
	for r := 3; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(r); c++ {
			cell := t.Cell(r, c)
			if cell == "" {
				continue
			}
			if y, ok := yearToken(cell); ok {
				year = y
				continue
			}
			if isNotesMarker(cell) {
				rec.Notes = append(rec.Notes, collectNotes(t, r, c)...)
				continue
			}
			m, d, ok := monthDayToken(cell)
			if !ok {
				continue
			}
			if rate, ok := rateToken(t.Cell(r+1, c)); ok {
				rec.SetRate(calendar.Key(year, m, d), rate)
			}
		}
	}
	return rec
}
