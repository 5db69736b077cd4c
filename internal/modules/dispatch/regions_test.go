// README: Region classifier tests.
package dispatch

import "testing"

func TestClassifyRegion(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{"88 Queen St E, Toronto, ON M5C 1S6", "Toronto"},
		{"100 City Centre Dr, Mississauga, ON", "Mississauga"},
		{"4700 Keele St, North York, ON", "North York"},
		{"120 King St W, Hamilton", "Hamilton"},
		{"somewhere on a rural route", ""},
		{"", ""},
		{"SCARBOROUGH town centre", "Scarborough"},
	}
	for _, tc := range cases {
		if got := ClassifyRegion(tc.address); got != tc.want {
			t.Errorf("ClassifyRegion(%q) = %q, want %q", tc.address, got, tc.want)
		}
	}
}

func TestServesRegion(t *testing.T) {
	cases := []struct {
		name         string
		locRegion    string
		locName      string
		originRegion string
		want         bool
	}{
		{"exact match", "Toronto", "Toronto Central", "Toronto", true},
		{"unknown origin keeps all", "Ottawa", "Ottawa Depot", "", true},
		{"name carries the region", "", "Mississauga East", "Mississauga", true},
		{"core Toronto subregions share depots", "Toronto", "Toronto Central", "Scarborough", true},
		{"subregion depot serves downtown", "Etobicoke", "Etobicoke Depot", "Toronto", true},
		{"different city", "Ottawa", "Ottawa Depot", "Toronto", false},
		{"case-insensitive", "toronto", "x", "Toronto", true},
	}
	for _, tc := range cases {
		if got := servesRegion(tc.locRegion, tc.locName, tc.originRegion); got != tc.want {
			t.Errorf("%s: servesRegion(%q, %q, %q) = %v, want %v",
				tc.name, tc.locRegion, tc.locName, tc.originRegion, got, tc.want)
		}
	}
}
