// README: Quote assembler orchestrating dispatch resolution and vendor pricing.
package quote

import (
	"context"
	"errors"
	"log"
	"time"

	"caravan/internal/modules/calendar"
	"caravan/internal/modules/dispatch"
	"caravan/internal/modules/pricing"
)

// Resolver selects the dispatch location for a request.
type Resolver interface {
	Resolve(ctx context.Context, origin, destination string, date time.Time) (*dispatch.Assignment, error)
}

// Pricer computes one vendor's quote for a resolved assignment.
type Pricer interface {
	Calculate(ctx context.Context, vendor string, job pricing.Job, asg *dispatch.Assignment) (*pricing.Quote, error)
}

// Service assembles price quotes. It owns no state: every quote is a pure
// function of the request, the dispatch assignment and the current tables.
type Service struct {
	resolver Resolver
	pricer   Pricer
}

func NewService(resolver Resolver, pricer Pricer) *Service {
	return &Service{resolver: resolver, pricer: pricer}
}

// QuoteVendor computes one vendor's quote, or an error whose failure reason
// FailureReason() can name.
func (s *Service) QuoteVendor(ctx context.Context, vendor string, req Request) (*pricing.Quote, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	asg, err := s.resolver.Resolve(ctx, req.Origin, req.Destination, req.MoveDate)
	if err != nil {
		return nil, err
	}
	return s.pricer.Calculate(ctx, vendor, job(req), asg)
}

// QuoteAll computes quotes for every known vendor. The dispatch assignment
// is resolved once and shared; vendors that fail are omitted, with the
// failure logged. A dispatch-level failure yields an empty result set.
func (s *Service) QuoteAll(ctx context.Context, req Request) ([]*pricing.Quote, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	asg, err := s.resolver.Resolve(ctx, req.Origin, req.Destination, req.MoveDate)
	if err != nil {
		log.Printf("quote: dispatch resolution failed: %v", err)
		return nil, err
	}

	j := job(req)
	var quotes []*pricing.Quote
	for _, vendor := range pricing.Vendors {
		q, err := s.pricer.Calculate(ctx, vendor, j, asg)
		if err != nil {
			log.Printf("quote: vendor %s omitted: %v", vendor, err)
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func job(req Request) pricing.Job {
	return pricing.Job{
		MoveDate:     req.MoveDate,
		Rooms:        req.Rooms,
		StairFlights: req.StairFlights,
		Elevator:     req.Elevator,
		HeavyItems:   req.HeavyItems,
		Services:     req.Services,
		OriginRegion: dispatch.ClassifyRegion(req.Origin),
	}
}

func validate(req Request) error {
	if req.Origin == "" || req.Destination == "" || req.MoveDate.IsZero() {
		return ErrBadRequest
	}
	if req.Rooms < 0 || req.StairFlights < 0 {
		return ErrBadRequest
	}
	return nil
}

// FailureReason maps a quoting error to the consumer-facing reason string.
// Unrecognized errors report as a dispatch failure, the conservative
// default.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, calendar.ErrNoRate):
		return ReasonNoRate
	case errors.Is(err, pricing.ErrTravelExceeded):
		return ReasonTravelExceeded
	case errors.Is(err, dispatch.ErrNoRoute):
		return ReasonNoRoute
	default:
		return ReasonNoDispatcher
	}
}
