// Package resolver turns map coordinates into proposed location updates by
// chaining the reverse geocoding client and the geography dictionary matcher,
// and tracks the per-editor state needed to apply those updates safely.
package resolver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
	"github.com/sanasaryank/trio-admin-sub000/internal/observability"
)

// Resolver resolves coordinates against a fixed geography dictionary.
type Resolver struct {
	geocoder domain.Geocoder
	dict     domain.Dictionary
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// New creates a Resolver over the session-immutable dictionary.
func New(geocoder domain.Geocoder, dict domain.Dictionary, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		geocoder: geocoder,
		dict:     dict,
		metrics:  metrics,
		logger:   logger,
	}
}

// CheckReadiness reports whether the resolver can serve lookups.
func (r *Resolver) CheckReadiness(_ context.Context) error {
	if r.dict.Empty() {
		return errors.New("geography dictionary is not loaded")
	}
	return nil
}

// Dictionary returns the geography dictionary the resolver matches against.
func (r *Resolver) Dictionary() domain.Dictionary {
	return r.dict
}

// Resolve geocodes the coordinate and matches the returned candidates
// against the dictionary. The country is back-filled from the matched city,
// so the update is internally consistent across all three select levels.
// The zero update means no enrichment was available; per the geocoder
// contract this degrades gracefully and never fails.
func (r *Resolver) Resolve(ctx context.Context, coord domain.Coordinate) domain.LocationUpdate {
	geo := r.geocoder.ReverseGeocode(ctx, coord)
	match := domain.FindMatchingLocation(geo.CityCandidate, geo.DistrictCandidate, r.dict)

	update := domain.LocationUpdate{
		Address:    geo.Address,
		CityID:     match.CityID,
		DistrictID: match.DistrictID,
	}
	if city, ok := r.dict.CityByID(match.CityID); ok {
		update.CountryID = city.CountryID
	}

	switch {
	case update.CityID != 0:
		r.metrics.Resolutions.WithLabelValues("matched").Inc()
	case update.Address != "":
		r.metrics.Resolutions.WithLabelValues("address_only").Inc()
	default:
		r.metrics.Resolutions.WithLabelValues("empty").Inc()
	}

	r.logger.Debug("coordinate resolved",
		"lat", coord.Lat,
		"lon", coord.Lon,
		"city_id", update.CityID,
		"district_id", update.DistrictID,
		"has_address", update.Address != "",
	)
	return update
}
