package domain

import "strings"

// AddressComponents is the structured address object returned by a
// Nominatim-compatible reverse geocoder. Every field is optional; an empty
// string means the service omitted the component.
type AddressComponents struct {
	Road          string
	HouseNumber   string
	Suburb        string
	Neighbourhood string
	Quarter       string
	District      string
	City          string
	Town          string
	Village       string
	State         string
	County        string
	DisplayName   string
}

// GeocodeResult is the derived outcome of one reverse-geocoding call. Empty
// strings mean the component could not be derived. A failed lookup yields the
// zero value.
type GeocodeResult struct {
	Address           string
	CityCandidate     string
	DistrictCandidate string
}

// DeriveGeocodeResult applies the candidate priority rules (see the package
// doc) and assembles the display address.
func DeriveGeocodeResult(a AddressComponents) GeocodeResult {
	return GeocodeResult{
		Address:           formatAddress(a),
		CityCandidate:     firstNonEmpty(a.State, a.County, a.City, a.Town, a.Village),
		DistrictCandidate: firstNonEmpty(a.Suburb, a.Neighbourhood, a.Quarter, a.District),
	}
}

// formatAddress joins road, house number, suburb-or-neighbourhood, and the
// settlement name with ", ", skipping absent components. When nothing is
// available it falls back to the service's own display_name.
func formatAddress(a AddressComponents) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{
		a.Road,
		a.HouseNumber,
		firstNonEmpty(a.Suburb, a.Neighbourhood),
		firstNonEmpty(a.City, a.Town, a.Village),
	} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return a.DisplayName
	}
	return strings.Join(parts, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
