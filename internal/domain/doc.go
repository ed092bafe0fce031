// Package domain models the geography reference data of the restaurant
// administration console and the rules for reconciling it with reverse
// geocoding output.
//
// # Geography Dictionary
//
// The console maintains its own country → city → district reference
// dictionaries, loaded once per process and immutable afterwards. A District
// belongs to exactly one City, a City to exactly one Country. These
// dictionaries are the source of truth for the cascading selects on the
// restaurant form; whatever administrative names the external geocoder
// returns are only candidates to be matched against them.
//
// # Nominatim Conventions
//
// Reverse lookups go to a Nominatim-compatible endpoint
// (/reverse?format=json&zoom=18&addressdetails=1). The nested "address"
// object carries up to twelve optional components; none is guaranteed.
// Observed quirks that drive the candidate priority rules:
//
//	City candidate:     state → county → city → town → village.
//	  Yerevan is a marz-level unit, so Nominatim reports it under "state"
//	  rather than "city"; smaller settlements appear as town or village.
//	District candidate: suburb → neighbourhood → quarter → district.
//	  Yerevan's administrative districts usually arrive as "suburb".
//
// The display address is assembled from road, house number,
// suburb-or-neighbourhood, and city/town/village joined by ", ", falling
// back to the service's own display_name when all four are absent.
//
// # Name Matching
//
// Geocoder responses spell multi-word administrative names inconsistently:
// the same district arrives as "Նորք Մարաշ", "Նորք-Մարաշ", or
// "Նորք - Մարաշ" depending on the underlying OSM tagging. [Normalize]
// therefore lowercases, trims, and folds hyphen and whitespace runs into
// single spaces before comparison. [NamesMatch] requires equal word counts
// and positionally equal words: place names are short and order-preserving,
// and token-set or edit-distance matching would equate unrelated districts
// that share a word ("Նոր Նորք" vs "Նորք").
//
// # Matching Hierarchy
//
// [FindMatchingLocation] scans cities first, then districts scoped to the
// matched city, then all districts as a fallback. A district matched without
// a city back-fills the city from its own parent, so a returned pair is
// never internally inconsistent. When the unscoped fallback finds districts
// with identical normalized names in different cities, the first one in
// dictionary order wins; the console's dictionary keeps such collisions rare
// and no smarter tie-break has been needed.
package domain
