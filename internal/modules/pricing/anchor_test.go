// README: Anchor strategy tests (fixed hourly table, truck fee, region multiplier).
package pricing

import (
	"testing"
	"time"

	"caravan/internal/types"
)

func TestAnchor_LaborAndTravel(t *testing.T) {
	// 3 rooms → 2 movers at $130/hr, 5.5 labor hours, 60-minute round trip.
	asg := testAssignment(150_00, 60*time.Minute, 30)
	q, err := Anchor{}.Calculate(Job{Rooms: 3}, asg, Overrides{})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Labor.Amount != 715_00 {
		t.Errorf("labor = %s, want 715.00 (5.5h × $130)", q.Labor)
	}
	// One travel hour at the hourly plus one $80 truck fee.
	if q.Travel.Amount != 210_00 {
		t.Errorf("travel = %s, want 210.00", q.Travel)
	}
	if q.Total != q.Labor.Add(q.Travel) {
		t.Errorf("total = %s, want %s", q.Total, q.Labor.Add(q.Travel))
	}
}

// The calendar rate never feeds Anchor pricing; only the crew table does.
func TestAnchor_IgnoresCalendarRate(t *testing.T) {
	low := testAssignment(99_00, 60*time.Minute, 30)
	high := testAssignment(450_00, 60*time.Minute, 30)
	ql, err := Anchor{}.Calculate(Job{Rooms: 3}, low, Overrides{})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	qh, err := Anchor{}.Calculate(Job{Rooms: 3}, high, Overrides{})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if ql.Total != qh.Total {
		t.Fatalf("totals differ with calendar rate: %s vs %s", ql.Total, qh.Total)
	}
}

func TestAnchor_RegionMultiplier(t *testing.T) {
	cases := []struct {
		region    string
		wantLabor int64 // cents, 5.5h
	}{
		{"Toronto", 715_00},
		{"Mississauga", 786_50},  // 130 × 1.10 = 143/hr
		{"Brampton", 822_25},     // 130 × 1.15 = 149.50/hr
		{"Hamilton", 858_00},     // 130 × 1.20 = 156/hr
	}
	for _, tc := range cases {
		asg := testAssignment(150_00, 30*time.Minute, 20)
		q, err := Anchor{}.Calculate(Job{Rooms: 3, OriginRegion: tc.region}, asg, Overrides{})
		if err != nil {
			t.Fatalf("%s: %v", tc.region, err)
		}
		if q.Labor.Amount != tc.wantLabor {
			t.Errorf("%s: labor = %s, want %d cents", tc.region, q.Labor, tc.wantLabor)
		}
	}
}

func TestAnchor_TruckFeePerTruck(t *testing.T) {
	asg := testAssignment(150_00, 30*time.Minute, 20)
	q, err := Anchor{}.Calculate(Job{Rooms: 6}, asg, Overrides{}) // crew 5 → 2 trucks
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	// 0.5 travel hours at $250/hr plus 2 × $80.
	if q.Travel.Amount != 285_00 {
		t.Fatalf("travel = %s, want 285.00", q.Travel)
	}
}

func TestAnchor_TravelExceedsMaximum(t *testing.T) {
	asg := testAssignment(150_00, 481*time.Minute, 300)
	if _, err := (Anchor{}).Calculate(Job{Rooms: 2}, asg, Overrides{}); err != ErrTravelExceeded {
		t.Fatalf("expected ErrTravelExceeded, got %v", err)
	}
}

func TestAnchor_AllServicesDeferred(t *testing.T) {
	asg := testAssignment(150_00, 30*time.Minute, 20)
	job := Job{Rooms: 2, Services: []string{"packing", "cleaning", "storage"}}
	q, err := Anchor{}.Calculate(job, asg, Overrides{})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !q.Services.IsZero() {
		t.Errorf("services = %s, want zero", q.Services)
	}
	if len(q.DeferredServices) != 3 {
		t.Errorf("deferred = %v, want all three services", q.DeferredServices)
	}
}

func TestAnchor_HourlyOverride(t *testing.T) {
	asg := testAssignment(150_00, 30*time.Minute, 20)
	ov := Overrides{HourlyByCrew: map[int]types.Money{2: types.CAD(145_00)}}
	q, err := Anchor{}.Calculate(Job{Rooms: 3}, asg, ov)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.Labor.Amount != 797_50 {
		t.Fatalf("labor = %s, want 797.50 (5.5h × $145)", q.Labor)
	}
}
