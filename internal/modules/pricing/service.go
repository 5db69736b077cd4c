// README: Pricing service — strategy selection by vendor plus override lookup.
package pricing

import (
	"context"
	"log"

	"github.com/google/uuid"

	"caravan/internal/modules/dispatch"
	"caravan/internal/types"
)

// Strategy is one vendor's pricing family. Strategies are pure: the quote
// is a function of (job, assignment, overrides) only.
type Strategy interface {
	Vendor() string
	Calculate(job Job, asg *dispatch.Assignment, ov Overrides) (*Quote, error)
}

// OverrideSource loads per-vendor table patches. A nil source means no
// overrides.
type OverrideSource interface {
	LoadOverrides(ctx context.Context, vendor string) (Overrides, error)
}

// Service holds the closed set of vendor strategies.
type Service struct {
	strategies map[string]Strategy
	overrides  OverrideSource
}

func NewService(overrides OverrideSource) *Service {
	s := &Service{
		strategies: make(map[string]Strategy),
		overrides:  overrides,
	}
	for _, st := range []Strategy{Metro{}, Anchor{}, Harbor{}} {
		s.strategies[st.Vendor()] = st
	}
	return s
}

// Calculate prices one vendor's quote. Override-store failures degrade to
// the static tables; they never fail a quote.
func (s *Service) Calculate(ctx context.Context, vendor string, job Job, asg *dispatch.Assignment) (*Quote, error) {
	st, ok := s.strategies[vendor]
	if !ok {
		return nil, ErrUnknownVendor
	}

	var ov Overrides
	if s.overrides != nil {
		loaded, err := s.overrides.LoadOverrides(ctx, vendor)
		if err != nil {
			log.Printf("pricing: override lookup for %s failed: %v", vendor, err)
		} else {
			ov = loaded
		}
	}

	q, err := st.Calculate(job, asg, ov)
	if err != nil {
		return nil, err
	}
	q.QuoteID = types.ID(uuid.NewString())
	return q, nil
}
