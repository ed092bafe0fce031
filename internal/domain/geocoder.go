package domain

import "context"

// Geocoder converts a map coordinate into address data.
//
// Implementations must degrade gracefully: a failed lookup yields the zero
// GeocodeResult rather than an error, so the map marker stays usable and the
// operator can fill the fields manually when the external service is down.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coord Coordinate) GeocodeResult
}
