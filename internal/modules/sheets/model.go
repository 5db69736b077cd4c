// README: Raw tabular grid model for one location's published rate sheet.
package sheets

import "strings"

// RawTable is the opaque 2-D grid of text cells fetched for one location
// identifier. Rows may be ragged; cell access is bounds-safe. A table is
// never mutated after construction, only replaced wholesale on refresh.
type RawTable [][]string

// Cell returns the trimmed cell at (row, col), or "" when out of bounds.
func (t RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Rows returns the number of rows in the grid.
func (t RawTable) Rows() int { return len(t) }

// Cols returns the width of one row (rows may be ragged).
func (t RawTable) Cols(row int) int {
	if row < 0 || row >= len(t) {
		return 0
	}
	return len(t[row])
}

// IsEmpty reports whether the grid contains no non-blank cell.
func (t RawTable) IsEmpty() bool {
	for r := range t {
		for c := range t[r] {
			if strings.TrimSpace(t[r][c]) != "" {
				return false
			}
		}
	}
	return true
}
