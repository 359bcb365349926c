package location

import "regexp"

// Location is a coarse city/state resolved from a ZIP prefix.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Resolve maps a 5-digit ZIP code to a city/state pair using the first three
// digits. Malformed input and unknown prefixes both report not-found. The
// lookup is a single map access against a table built once at init.
func Resolve(zip string) (Location, bool) {
	if !zipPattern.MatchString(zip) {
		return Location{}, false
	}
	loc, ok := prefixTable[zip[:3]]
	return loc, ok
}

// ValidZip reports whether the input is exactly five digits.
func ValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}
