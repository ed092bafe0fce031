package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testDictionary models a small slice of the console's real reference data.
// Գյումրի's Կենտրոն district deliberately precedes Երևան's in list order so
// the scoped-versus-unscoped scans are distinguishable.
func testDictionary() Dictionary {
	return Dictionary{
		Countries: []Country{
			{ID: 1, Name: "Հայաստան"},
		},
		Cities: []City{
			{ID: 10, CountryID: 1, Name: "Երևան"},
			{ID: 11, CountryID: 1, Name: "Գյումրի"},
		},
		Districts: []District{
			{ID: 200, CityID: 11, Name: "Կենտրոն"},
			{ID: 100, CityID: 10, Name: "Կենտրոն"},
			{ID: 101, CityID: 10, Name: "Նորք-Մարաշ"},
			{ID: 102, CityID: 10, Name: "Աջափնյակ"},
			{ID: 201, CityID: 11, Name: "Անի"},
		},
	}
}

func TestFindMatchingLocation_CityAndScopedDistrict(t *testing.T) {
	res := FindMatchingLocation("Երևան", "Կենտրոն", testDictionary())

	// The scoped scan must win even though Գյումրի's Կենտրոն comes first in
	// dictionary order.
	assert.Equal(t, MatchResult{CityID: 10, DistrictID: 100}, res)
}

func TestFindMatchingLocation_DistrictBackfillsCity(t *testing.T) {
	res := FindMatchingLocation("", "Նորք Մարաշ", testDictionary())

	assert.Equal(t, int64(101), res.DistrictID)
	assert.Equal(t, int64(10), res.CityID, "city must be back-filled from the district's parent")
}

func TestFindMatchingLocation_UnscopedFallbackOverwritesCity(t *testing.T) {
	// Երևան matches in step 1, but Անի exists only under Գյումրի; the
	// fallback match must override the step-1 city.
	res := FindMatchingLocation("Երևան", "Անի", testDictionary())

	assert.Equal(t, MatchResult{CityID: 11, DistrictID: 201}, res)
}

func TestFindMatchingLocation_UnscopedTieBreakIsListOrder(t *testing.T) {
	res := FindMatchingLocation("", "Կենտրոն", testDictionary())

	assert.Equal(t, MatchResult{CityID: 11, DistrictID: 200}, res,
		"first district in dictionary order wins when names collide across cities")
}

func TestFindMatchingLocation_CityOnly(t *testing.T) {
	res := FindMatchingLocation("Գյումրի", "", testDictionary())

	assert.Equal(t, MatchResult{CityID: 11}, res)
}

func TestFindMatchingLocation_NoCandidates(t *testing.T) {
	res := FindMatchingLocation("", "", testDictionary())

	assert.Equal(t, MatchResult{}, res)
}

func TestFindMatchingLocation_UnknownNames(t *testing.T) {
	res := FindMatchingLocation("Տավուշ", "Դիլիջան", testDictionary())

	assert.Equal(t, MatchResult{}, res, "absence of a match is not an error")
}

func TestFindMatchingLocation_CityMatchedDistrictUnknown(t *testing.T) {
	res := FindMatchingLocation("Երևան", "Վերին Պտղնի", testDictionary())

	assert.Equal(t, MatchResult{CityID: 10}, res, "unmatched district leaves the city from step 1")
}

func TestDictionary_Lookups(t *testing.T) {
	dict := testDictionary()

	city, ok := dict.CityByID(10)
	assert.True(t, ok)
	assert.Equal(t, "Երևան", city.Name)

	_, ok = dict.CityByID(99)
	assert.False(t, ok)

	district, ok := dict.DistrictByID(101)
	assert.True(t, ok)
	assert.Equal(t, int64(10), district.CityID)

	_, ok = dict.DistrictByID(99)
	assert.False(t, ok)

	assert.False(t, dict.Empty())
	assert.True(t, Dictionary{}.Empty())
}
