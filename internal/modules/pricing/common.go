// README: Crew sizing, labor hours, and ancillary-cost helpers shared by all strategies.
package pricing

import (
	"sort"

	"caravan/internal/types"
)

// minLaborHours is the floor every vendor bills regardless of job size.
const minLaborHours = 2.0

// crewForRooms is a monotonic step table from room count to crew size. Any
// heavy item raises the crew to at least three movers.
func crewForRooms(rooms int, hasHeavy bool) int {
	crew := 2
	switch {
	case rooms >= 6:
		crew = 5
	case rooms >= 5:
		crew = 4
	case rooms >= 4:
		crew = 3
	}
	if hasHeavy && crew < 3 {
		crew = 3
	}
	return crew
}

// truckCountFor derives the truck count from crew size.
func truckCountFor(crew int) int {
	if crew >= 5 {
		return 2
	}
	return 1
}

// baseHoursByRooms is the labor-hours lookup before stairs and elevator
// additions.
var baseHoursByRooms = map[int]float64{
	0: 1.5, 1: 3.5, 2: 4.5, 3: 5.5, 4: 6.5, 5: 7.5,
}

const (
	hoursPerStairFlight = 0.25
	hoursForElevator    = 0.5
	maxRoomsInTable     = 5
	hoursBeyondTable    = 8.5
)

// laborHours computes billable labor time for a job: room-count base hours
// plus fixed stairs and elevator additions, floored at two hours.
func laborHours(j Job) float64 {
	rooms := j.Rooms
	if rooms < 0 {
		rooms = 0
	}
	hours, ok := baseHoursByRooms[rooms]
	if !ok && rooms > maxRoomsInTable {
		hours = hoursBeyondTable
	}
	hours += float64(j.StairFlights) * hoursPerStairFlight
	if j.Elevator {
		hours += hoursForElevator
	}
	if hours < minLaborHours {
		hours = minLaborHours
	}
	return hours
}

// heavyItemCost sums per-item fixed fees. Items the vendor has no fee for
// are skipped; overrides win over the static table. Cost is independent of
// crew size.
func heavyItemCost(items map[string]int, table map[string]types.Money, ov Overrides) types.Money {
	total := types.CAD(0)
	for item, qty := range items {
		if qty <= 0 {
			continue
		}
		fee, ok := ov.HeavyItems[item]
		if !ok {
			fee, ok = table[item]
		}
		if !ok {
			continue
		}
		total = total.Add(fee.MulInt(int64(qty)))
	}
	return total
}

// serviceCost sums flat-rate additional services and collects the rest as
// deferred (manual vendor assessment). Duplicate requests count once.
func serviceCost(services []string, table map[string]types.Money, ov Overrides) (types.Money, []string) {
	total := types.CAD(0)
	seen := make(map[string]bool)
	var deferred []string
	for _, svc := range services {
		if svc == "" || seen[svc] {
			continue
		}
		seen[svc] = true
		fee, ok := ov.Services[svc]
		if !ok {
			fee, ok = table[svc]
		}
		if !ok {
			deferred = append(deferred, svc)
			continue
		}
		total = total.Add(fee)
	}
	sort.Strings(deferred)
	return total, deferred
}

// hourlyFromTable resolves a crew-size hourly rate, overrides first. Crews
// larger than the table's top tier bill at the top tier.
func hourlyFromTable(crew int, table map[int]types.Money, ov Overrides) (types.Money, bool) {
	if rate, ok := ov.HourlyByCrew[crew]; ok {
		return rate, true
	}
	if rate, ok := table[crew]; ok {
		return rate, true
	}
	top := 0
	for c := range table {
		if c > top {
			top = c
		}
	}
	if crew > top && top > 0 {
		return table[top], true
	}
	return types.Money{}, false
}
