package domain

// MatchResult pairs the dictionary identifiers resolved from geocoder
// candidates. A zero ID means no match; that is an expected outcome, not an
// error. When DistrictID is non-zero, CityID is always the district's own
// parent city.
type MatchResult struct {
	CityID     int64
	DistrictID int64
}

// LocationUpdate is the single atomic message a resolution proposes to the
// owning form: display address plus the matched dictionary identifiers. The
// form consumes it once, so its own cascading country→city→district reset
// cannot interleave with partial field writes. Zero-valued fields leave the
// corresponding form field untouched.
type LocationUpdate struct {
	Address    string
	CountryID  int64
	CityID     int64
	DistrictID int64
}

// FindMatchingLocation matches the geocoder's free-text city and district
// candidates against the dictionary.
//
// The city list is scanned first. The district scan is scoped to the matched
// city when there is one; if the scoped scan fails (or no city matched at
// all), every district is scanned and the first name match wins, back-filling
// CityID with that district's parent — overriding a city matched in the first
// step. Districts sharing a normalized name across cities therefore resolve
// to whichever appears first in dictionary order.
func FindMatchingLocation(cityCandidate, districtCandidate string, dict Dictionary) MatchResult {
	var res MatchResult

	if cityCandidate != "" {
		for _, c := range dict.Cities {
			if NamesMatch(c.Name, cityCandidate) {
				res.CityID = c.ID
				break
			}
		}
	}

	if districtCandidate == "" {
		return res
	}

	if res.CityID != 0 {
		for _, d := range dict.Districts {
			if d.CityID == res.CityID && NamesMatch(d.Name, districtCandidate) {
				res.DistrictID = d.ID
				return res
			}
		}
	}

	for _, d := range dict.Districts {
		if NamesMatch(d.Name, districtCandidate) {
			res.DistrictID = d.ID
			res.CityID = d.CityID
			return res
		}
	}

	return res
}
