// README: Token recognizers shared by the heuristic and specialized parsers.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"caravan/internal/types"
)

// Plausible calendar-rate bounds in dollars. Numeric tokens outside this
// range are never stored as rates: day numbers sit below it, and postal
// fragments, years and phone fragments sit above it. This filter is the
// dominant defence against data-quality defects in the published sheets.
const (
	minPlausibleRate = 50
	maxPlausibleRate = 999
)

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var weekdayNames = map[string]bool{
	"monday": true, "mon": true,
	"tuesday": true, "tue": true, "tues": true,
	"wednesday": true, "wed": true,
	"thursday": true, "thu": true, "thur": true, "thurs": true,
	"friday": true, "fri": true,
	"saturday": true, "sat": true,
	"sunday": true, "sun": true,
}

var yearRe = regexp.MustCompile(`\b(20\d{2})\b`)

// monthToken recognizes a month header cell ("June", "JUN 2025",
// "June, 2025"). The year is 0 when the cell carries none.
func monthToken(cell string) (month, year int, ok bool) {
	norm := strings.ToLower(strings.TrimSpace(cell))
	norm = strings.NewReplacer(",", " ", "-", " ", "/", " ", ".", " ").Replace(norm)
	fields := strings.Fields(norm)
	if len(fields) == 0 || len(fields) > 3 {
		return 0, 0, false
	}
	m, isMonth := monthNames[fields[0]]
	if !isMonth {
		return 0, 0, false
	}
	if match := yearRe.FindString(norm); match != "" {
		year, _ = strconv.Atoi(match)
	}
	// "June 1" is a day label, not a month header.
	if year == 0 && len(fields) > 1 {
		if _, err := strconv.Atoi(fields[1]); err == nil {
			return 0, 0, false
		}
	}
	return m, year, true
}

// monthDayToken recognizes combined day labels like "Jun 1" or "June 15".
func monthDayToken(cell string) (month, day int, ok bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(cell)))
	if len(fields) != 2 {
		return 0, 0, false
	}
	m, isMonth := monthNames[strings.Trim(fields[0], ".")]
	if !isMonth {
		return 0, 0, false
	}
	d, err := strconv.Atoi(strings.TrimSuffix(fields[1], ","))
	if err != nil || d < 1 || d > 31 {
		return 0, 0, false
	}
	return m, d, true
}

// yearToken recognizes a standalone year cell.
func yearToken(cell string) (int, bool) {
	v := strings.TrimSpace(cell)
	if len(v) != 4 {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 2000 || n > 2099 {
		return 0, false
	}
	return n, true
}

// dayNumber recognizes a bare calendar day cell (integer 1–31).
func dayNumber(cell string) (int, bool) {
	v := strings.TrimSpace(cell)
	if v == "" || strings.ContainsAny(v, ".,$ ") {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 31 {
		return 0, false
	}
	return n, true
}

// rateToken parses a numeric cell as a rate, rejecting anything outside the
// plausible range.
func rateToken(cell string) (types.Money, bool) {
	v := strings.TrimSpace(cell)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(v)
	if v == "" {
		return types.Money{}, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return types.Money{}, false
	}
	if f < minPlausibleRate || f > maxPlausibleRate {
		return types.Money{}, false
	}
	return types.FromDollars(f), true
}

// isWeekdayHeaderRow reports whether row r is a day-of-week header
// (at least four weekday-name cells).
func isWeekdayHeaderRow(cells []string) bool {
	hits := 0
	for _, c := range cells {
		norm := strings.ToLower(strings.Trim(strings.TrimSpace(c), "."))
		if weekdayNames[norm] {
			hits++
		}
	}
	return hits >= 4
}

// parseLatLng parses "43.6532,-79.3832" style coordinate cells.
func parseLatLng(cell string) (types.Point, bool) {
	parts := strings.Split(strings.TrimSpace(cell), ",")
	if len(parts) != 2 {
		return types.Point{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return types.Point{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return types.Point{}, false
	}
	return types.Point{Lat: lat, Lng: lng}, true
}

var notesMarkers = []string{"restricted dates", "restricted", "notes", "note"}

// isNotesMarker recognizes free-text block markers.
func isNotesMarker(cell string) bool {
	norm := strings.ToLower(strings.TrimSpace(cell))
	norm = strings.TrimSuffix(norm, ":")
	for _, m := range notesMarkers {
		if norm == m || strings.HasPrefix(norm, m+":") {
			return true
		}
	}
	return false
}

var metadataLabels = map[string]string{
	"address": "address", "location address": "address",
	"phone": "phone", "tel": "phone", "telephone": "phone",
	"email": "email", "e-mail": "email",
	"manager": "manager", "contact": "manager", "dispatcher": "manager",
	"trucks": "trucks", "truck count": "trucks", "# of trucks": "trucks",
	"terminal": "terminal", "terminal id": "terminal",
	"region": "region", "area": "region", "service area": "region",
	"name": "name", "location": "name", "branch": "name",
	"coordinates": "coords", "gps": "coords", "lat/lng": "coords",
	"pricing": "pricing", "formula": "pricing", "minimum": "pricing",
}

// splitLabel recognizes label-prefixed metadata, either "Label: value"
// within one cell or a label cell with the value in the next column.
func splitLabel(cell, nextCell string) (label, value string, ok bool) {
	norm := strings.TrimSpace(cell)
	if i := strings.IndexByte(norm, ':'); i > 0 {
		key := strings.ToLower(strings.TrimSpace(norm[:i]))
		if canon, found := metadataLabels[key]; found {
			v := strings.TrimSpace(norm[i+1:])
			if v == "" {
				v = strings.TrimSpace(nextCell)
			}
			return canon, v, v != ""
		}
		return "", "", false
	}
	if canon, found := metadataLabels[strings.ToLower(norm)]; found {
		v := strings.TrimSpace(nextCell)
		return canon, v, v != ""
	}
	return "", "", false
}
