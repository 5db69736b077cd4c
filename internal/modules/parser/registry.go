// README: Parser registry; specialized layouts first, generic fallback always.
package parser

import (
	"log"

	"caravan/internal/modules/calendar"
	"caravan/internal/modules/sheets"
)

// ParseFunc extracts a location record from one raw grid. Returning nil, or
// a record with no calendar entries, hands the table to the next strategy.
type ParseFunc func(id string, t sheets.RawTable) *calendar.LocationRecord

// Registry maps location identifiers to hand-written parsers for layouts
// the generic heuristics demonstrably fail on. Every identifier is backed
// by the generic parser; specialized variants are added only when needed.
type Registry struct {
	specialized map[string]ParseFunc
}

func NewRegistry() *Registry {
	r := &Registry{specialized: make(map[string]ParseFunc)}
	r.Register("toronto-central", parseTorontoCentral)
	r.Register("north-york", parseNorthYork)
	return r
}

func (r *Registry) Register(id string, fn ParseFunc) {
	r.specialized[id] = fn
}

// ParseLocation implements calendar.Parser. It degrades rather than fails:
// a panicking or empty-handed specialized parser falls back to the generic
// one, and nothing ever escapes as a panic.
func (r *Registry) ParseLocation(id string, table sheets.RawTable) *calendar.LocationRecord {
	if table.IsEmpty() {
		return nil
	}
	if fn, ok := r.specialized[id]; ok {
		if rec := runSafe(fn, id, table); rec != nil && rec.HasRates() {
			return rec
		}
		log.Printf("parser: specialized parser for %s yielded no calendar; falling back", id)
	}
	return runSafe(Generic, id, table)
}

func runSafe(fn ParseFunc, id string, table sheets.RawTable) (rec *calendar.LocationRecord) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("parser: %s: recovered from panic: %v", id, p)
			rec = nil
		}
	}()
	return fn(id, table)
}
