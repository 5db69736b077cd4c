// README: Pricing service tests (vendor routing, override degradation).
package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"caravan/internal/types"
)

type fakeOverrides struct {
	ov  Overrides
	err error
}

func (f fakeOverrides) LoadOverrides(ctx context.Context, vendor string) (Overrides, error) {
	return f.ov, f.err
}

func TestService_UnknownVendor(t *testing.T) {
	svc := NewService(nil)
	asg := testAssignment(150_00, 30*time.Minute, 20)
	if _, err := svc.Calculate(context.Background(), "acme", Job{Rooms: 2}, asg); !errors.Is(err, ErrUnknownVendor) {
		t.Fatalf("expected ErrUnknownVendor, got %v", err)
	}
}

func TestService_KnownVendorsAssignQuoteID(t *testing.T) {
	svc := NewService(nil)
	asg := testAssignment(150_00, 30*time.Minute, 20)
	for _, vendor := range Vendors {
		q, err := svc.Calculate(context.Background(), vendor, Job{Rooms: 3}, asg)
		if err != nil {
			t.Fatalf("%s: %v", vendor, err)
		}
		if q.QuoteID == "" {
			t.Errorf("%s: quote id not assigned", vendor)
		}
		if q.Vendor != vendor {
			t.Errorf("quote vendor = %s, want %s", q.Vendor, vendor)
		}
	}
}

func TestService_OverridesApplied(t *testing.T) {
	src := fakeOverrides{ov: Overrides{HourlyByCrew: map[int]types.Money{2: types.CAD(145_00)}}}
	svc := NewService(src)
	asg := testAssignment(150_00, 30*time.Minute, 20)
	q, err := svc.Calculate(context.Background(), VendorAnchor, Job{Rooms: 3}, asg)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Labor.Amount != 797_50 {
		t.Fatalf("labor = %s, want 797.50 from the overridden hourly", q.Labor)
	}
}

// A broken override store must never fail the quote.
func TestService_OverrideFailureDegrades(t *testing.T) {
	src := fakeOverrides{err: errors.New("db down")}
	svc := NewService(src)
	asg := testAssignment(150_00, 30*time.Minute, 20)
	q, err := svc.Calculate(context.Background(), VendorAnchor, Job{Rooms: 3}, asg)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Labor.Amount != 715_00 {
		t.Fatalf("labor = %s, want the static table 715.00", q.Labor)
	}
}
