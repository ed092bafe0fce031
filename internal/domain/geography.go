package domain

// Country is a top-level entry of the geography dictionary.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// City belongs to exactly one Country.
type City struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"countryId"`
	Name      string `json:"name"`
}

// District belongs to exactly one City.
type District struct {
	ID     int64  `json:"id"`
	CityID int64  `json:"cityId"`
	Name   string `json:"name"`
}

// Dictionary holds the console's geography reference data. It is loaded once
// at startup and treated as immutable for the lifetime of the process.
// Matching functions scan the slices in order, so dictionary order decides
// ties.
type Dictionary struct {
	Countries []Country  `json:"countries"`
	Cities    []City     `json:"cities"`
	Districts []District `json:"districts"`
}

// Empty reports whether the dictionary carries no matchable entries.
func (d Dictionary) Empty() bool {
	return len(d.Cities) == 0 && len(d.Districts) == 0
}

// CityByID looks up a city by identifier.
func (d Dictionary) CityByID(id int64) (City, bool) {
	for _, c := range d.Cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// DistrictByID looks up a district by identifier.
func (d Dictionary) DistrictByID(id int64) (District, bool) {
	for _, dist := range d.Districts {
		if dist.ID == id {
			return dist, true
		}
	}
	return District{}, false
}
