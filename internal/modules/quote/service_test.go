// README: Quote assembler tests (validation, vendor omission, failure reasons).
package quote

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"caravan/internal/maps"
	"caravan/internal/modules/calendar"
	"caravan/internal/modules/dispatch"
	"caravan/internal/modules/pricing"
	"caravan/internal/types"
)

type stubResolver struct {
	asg   *dispatch.Assignment
	err   error
	calls int
}

func (s *stubResolver) Resolve(ctx context.Context, origin, destination string, date time.Time) (*dispatch.Assignment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.asg, nil
}

type stubPricer struct {
	failVendors map[string]error
	gotRegion   string
}

func (s *stubPricer) Calculate(ctx context.Context, vendor string, job pricing.Job, asg *dispatch.Assignment) (*pricing.Quote, error) {
	s.gotRegion = job.OriginRegion
	if err, ok := s.failVendors[vendor]; ok {
		return nil, err
	}
	return &pricing.Quote{Vendor: vendor, Total: types.CAD(900_00), Assignment: asg}, nil
}

func testAssignment() *dispatch.Assignment {
	return &dispatch.Assignment{
		LocationID: "toronto-central",
		BaseRate:   types.CAD(150_00),
		Plan: dispatch.RoutePlan{
			DepotToOrigin:       maps.Leg{Km: 10, Duration: 15 * time.Minute},
			OriginToDestination: maps.Leg{Km: 12, Duration: 20 * time.Minute},
			DestinationToDepot:  maps.Leg{Km: 11, Duration: 15 * time.Minute},
		},
	}
}

func validRequest() Request {
	return Request{
		Origin:      "100 Queen St W, Toronto",
		Destination: "50 Burnhamthorpe Rd, Mississauga",
		MoveDate:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Rooms:       3,
	}
}

func TestQuoteVendor_RejectsBadRequests(t *testing.T) {
	svc := NewService(&stubResolver{asg: testAssignment()}, &stubPricer{})

	cases := []struct {
		name string
		mut  func(*Request)
	}{
		{"missing origin", func(r *Request) { r.Origin = "" }},
		{"missing destination", func(r *Request) { r.Destination = "" }},
		{"zero move date", func(r *Request) { r.MoveDate = time.Time{} }},
		{"negative rooms", func(r *Request) { r.Rooms = -1 }},
		{"negative stairs", func(r *Request) { r.StairFlights = -2 }},
	}
	for _, tc := range cases {
		req := validRequest()
		tc.mut(&req)
		if _, err := svc.QuoteVendor(context.Background(), pricing.VendorMetro, req); !errors.Is(err, ErrBadRequest) {
			t.Errorf("%s: expected ErrBadRequest, got %v", tc.name, err)
		}
	}
}

func TestQuoteVendor_ClassifiesOriginRegion(t *testing.T) {
	pricer := &stubPricer{}
	svc := NewService(&stubResolver{asg: testAssignment()}, pricer)

	req := validRequest()
	if _, err := svc.QuoteVendor(context.Background(), pricing.VendorAnchor, req); err != nil {
		t.Fatalf("quote: %v", err)
	}
	if pricer.gotRegion != "Toronto" {
		t.Fatalf("origin region = %q, want Toronto", pricer.gotRegion)
	}
}

func TestQuoteAll_ResolvesDispatchOnce(t *testing.T) {
	resolver := &stubResolver{asg: testAssignment()}
	svc := NewService(resolver, &stubPricer{})

	quotes, err := svc.QuoteAll(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("quote all: %v", err)
	}
	if len(quotes) != len(pricing.Vendors) {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(pricing.Vendors))
	}
	if resolver.calls != 1 {
		t.Fatalf("resolver called %d times, want 1", resolver.calls)
	}
}

func TestQuoteAll_OmitsFailingVendors(t *testing.T) {
	pricer := &stubPricer{failVendors: map[string]error{
		pricing.VendorMetro: pricing.ErrTravelExceeded,
	}}
	svc := NewService(&stubResolver{asg: testAssignment()}, pricer)

	quotes, err := svc.QuoteAll(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("quote all: %v", err)
	}
	if len(quotes) != len(pricing.Vendors)-1 {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(pricing.Vendors)-1)
	}
	for _, q := range quotes {
		if q.Vendor == pricing.VendorMetro {
			t.Fatal("failing vendor must be omitted, never quoted")
		}
		if q.Total.IsZero() {
			t.Fatalf("vendor %s returned a zero-total quote", q.Vendor)
		}
	}
}

func TestQuoteAll_DispatchFailureYieldsNoQuotes(t *testing.T) {
	svc := NewService(&stubResolver{err: dispatch.ErrNoDispatcher}, &stubPricer{})

	quotes, err := svc.QuoteAll(context.Background(), validRequest())
	if !errors.Is(err, dispatch.ErrNoDispatcher) {
		t.Fatalf("expected ErrNoDispatcher, got %v", err)
	}
	if len(quotes) != 0 {
		t.Fatalf("expected no quotes, got %d", len(quotes))
	}
}

func TestFailureReason(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{calendar.ErrNoRate, ReasonNoRate},
		{fmt.Errorf("resolve rate: %w", calendar.ErrNoRate), ReasonNoRate},
		{pricing.ErrTravelExceeded, ReasonTravelExceeded},
		{dispatch.ErrNoRoute, ReasonNoRoute},
		{dispatch.ErrNoDispatcher, ReasonNoDispatcher},
		{errors.New("anything else"), ReasonNoDispatcher},
	}
	for _, tc := range cases {
		if got := FailureReason(tc.err); got != tc.want {
			t.Errorf("FailureReason(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
