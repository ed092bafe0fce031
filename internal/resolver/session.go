package resolver

import (
	"context"
	"sync"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
)

// FormSink receives a session's resolution output. Implemented by the owning
// restaurant editor form. Apply is called at most once per coordinate change,
// with zero-valued fields meaning "leave that form field untouched".
type FormSink interface {
	Apply(update domain.LocationUpdate)
}

// Session bridges map interaction to form state for one restaurant location
// editor. It owns the current marker coordinate, a resolving flag for the
// transient UI indicator, and the previous-value trackers that let the form
// tell a session-driven select change apart from an operator-driven one —
// the form's cascading country→city→district reset must only run for the
// latter, or it would erase the values the session just set.
type Session struct {
	resolver *Resolver
	sink     FormSink

	mu            sync.Mutex
	coordinate    domain.Coordinate
	resolving     bool
	generation    uint64
	prevCountryID int64
	prevCityID    int64
}

// NewSession creates a session for one editor instance. The initial
// coordinate comes from the form's stored value and falls back to the
// default map center when that value is the unset sentinel; the trackers
// start at the form's currently selected country and city.
func NewSession(resolver *Resolver, sink FormSink, initial, defaultCenter domain.Coordinate, countryID, cityID int64) *Session {
	if initial.IsZero() {
		initial = defaultCenter
	}
	return &Session{
		resolver:      resolver,
		sink:          sink,
		coordinate:    initial,
		prevCountryID: countryID,
		prevCityID:    cityID,
	}
}

// Coordinate returns the current marker position.
func (s *Session) Coordinate() domain.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coordinate
}

// Resolving reports whether a geocode lookup is in flight.
func (s *Session) Resolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolving
}

// OnCoordinateChanged handles a map click or a marker drag release; both
// funnel through here. The coordinate is stored immediately so the marker
// moves without waiting on the network, then the resolution runs and its
// update is applied only if no newer coordinate change superseded it in the
// meantime. Nothing here can fail: a degraded geocode simply applies less.
func (s *Session) OnCoordinateChanged(ctx context.Context, coord domain.Coordinate) {
	s.mu.Lock()
	s.coordinate = coord
	s.resolving = true
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	update := s.resolver.Resolve(ctx, coord)

	s.mu.Lock()
	if gen != s.generation {
		// A newer change is in flight; its completion owns the form state.
		s.mu.Unlock()
		return
	}
	s.resolving = false
	if update == (domain.LocationUpdate{}) {
		s.mu.Unlock()
		return
	}
	// Advance the trackers before the form sees the update so the cascading
	// reset observes a consistent prior state.
	if update.CityID != 0 {
		s.prevCountryID = update.CountryID
		s.prevCityID = update.CityID
	}
	s.mu.Unlock()

	s.sink.Apply(update)
}

// ObserveCountryChange records a country select change and reports whether
// it was operator-driven. Session-driven changes return false because the
// tracker already holds the new value.
func (s *Session) ObserveCountryChange(countryID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	operator := countryID != s.prevCountryID
	s.prevCountryID = countryID
	return operator
}

// ObserveCityChange is the city-select counterpart of ObserveCountryChange.
func (s *Session) ObserveCityChange(cityID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	operator := cityID != s.prevCityID
	s.prevCityID = cityID
	return operator
}
