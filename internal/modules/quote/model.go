// README: Service request model and per-vendor failure reasons.
package quote

import (
	"errors"
	"time"
)

// Request is an immutable job description from the consumer.
type Request struct {
	Origin      string
	Destination string
	MoveDate    time.Time

	Rooms        int
	StairFlights int
	Elevator     bool
	HeavyItems   map[string]int
	Services     []string
}

var ErrBadRequest = errors.New("bad request")

// Failure reasons surfaced to the quote consumer. A per-vendor failure
// omits that vendor from aggregate results; it is never a system error.
const (
	ReasonNoRate         = "no rate available"
	ReasonNoDispatcher   = "no dispatcher in area"
	ReasonTravelExceeded = "travel time exceeds maximum"
	ReasonNoRoute        = "no route between addresses"
)
