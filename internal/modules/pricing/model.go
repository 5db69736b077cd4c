// README: Pricing model — jobs, quotes, vendor identifiers, overrides.
package pricing

import (
	"errors"
	"time"

	"caravan/internal/modules/dispatch"
	"caravan/internal/types"
)

// Vendor identifiers, each selecting one pricing strategy family.
const (
	VendorMetro  = "metro"  // dynamic calendar-tiered
	VendorAnchor = "anchor" // fixed crew-tier
	VendorHarbor = "harbor" // distance-surcharge
)

// Vendors lists every known vendor in quoting order.
var Vendors = []string{VendorMetro, VendorAnchor, VendorHarbor}

var (
	ErrUnknownVendor = errors.New("unknown vendor")
	// ErrTravelExceeded means the computed travel exceeds the vendor's
	// maximum serviceable threshold. A definite per-vendor failure.
	ErrTravelExceeded = errors.New("travel exceeds vendor maximum")
)

// Job is the size/options portion of a service request.
type Job struct {
	MoveDate     time.Time
	Rooms        int
	StairFlights int
	Elevator     bool
	// HeavyItems maps item type (piano, safe, pool_table, appliance) to
	// quantity.
	HeavyItems map[string]int
	// Services are requested extras (packing, storage, cleaning,
	// junk_removal).
	Services []string
	// OriginRegion is the classified region of the origin address, used by
	// vendors with geographic surcharges.
	OriginRegion string
}

// HasHeavyItems reports whether any heavy item is present.
func (j Job) HasHeavyItems() bool {
	for _, qty := range j.HeavyItems {
		if qty > 0 {
			return true
		}
	}
	return false
}

// Quote is the priced result for one vendor. Each quote is a pure function
// of (job, assignment, override table); nothing is persisted here.
type Quote struct {
	QuoteID types.ID
	Vendor  string

	Total types.Money

	Labor      types.Money
	Travel     types.Money
	Fuel       types.Money
	HeavyItems types.Money
	Services   types.Money

	CrewSize   int
	TruckCount int
	Hours      float64
	// LongDistance marks quotes priced in the per-distance regime.
	LongDistance bool
	// DeferredServices were requested but are priced by manual vendor
	// assessment, not included in Total.
	DeferredServices []string

	Assignment *dispatch.Assignment
}

// Overrides are per-vendor table patches sourced from the admin override
// store, consulted before any static rate table.
type Overrides struct {
	HourlyByCrew map[int]types.Money
	HeavyItems   map[string]types.Money
	Services     map[string]types.Money
}
