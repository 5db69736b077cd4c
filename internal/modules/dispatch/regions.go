// README: Coarse keyword classifier mapping free-text addresses to named regions.
package dispatch

import "strings"

// regionKeywords maps lowercase address keywords to canonical region names.
// Longer keywords are listed under the same canonical name as their
// containing region where ambiguity exists (e.g. "east york" before "york").
var regionKeywords = []struct {
	keyword string
	region  string
}{
	{"scarborough", "Scarborough"},
	{"north york", "North York"},
	{"east york", "East York"},
	{"etobicoke", "Etobicoke"},
	{"toronto", "Toronto"},
	{"mississauga", "Mississauga"},
	{"brampton", "Brampton"},
	{"vaughan", "Vaughan"},
	{"markham", "Markham"},
	{"richmond hill", "Richmond Hill"},
	{"oakville", "Oakville"},
	{"burlington", "Burlington"},
	{"hamilton", "Hamilton"},
	{"oshawa", "Oshawa"},
	{"pickering", "Pickering"},
	{"ajax", "Ajax"},
	{"whitby", "Whitby"},
	{"barrie", "Barrie"},
	{"ottawa", "Ottawa"},
}

// ClassifyRegion returns the canonical region for a free-text address, or
// "" when no keyword matches. An unrecognized region never excludes a
// location: the caller keeps every candidate tentatively eligible.
func ClassifyRegion(address string) string {
	norm := strings.ToLower(address)
	for _, rk := range regionKeywords {
		if strings.Contains(norm, rk.keyword) {
			return rk.region
		}
	}
	return ""
}

// servesRegion reports whether a location whose region/name metadata is
// (locRegion, locName) may serve the given origin region. Core-Toronto
// subregions are served by Toronto depots and vice versa.
func servesRegion(locRegion, locName, originRegion string) bool {
	if originRegion == "" {
		return true
	}
	if strings.EqualFold(locRegion, originRegion) {
		return true
	}
	if strings.Contains(strings.ToLower(locName), strings.ToLower(originRegion)) {
		return true
	}
	if isCoreToronto(originRegion) && (isCoreToronto(locRegion) || locRegion == "Toronto") {
		return true
	}
	return false
}

func isCoreToronto(region string) bool {
	switch region {
	case "Toronto", "Scarborough", "North York", "East York", "Etobicoke":
		return true
	}
	return false
}
