package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
	"github.com/sanasaryank/trio-admin-sub000/internal/resolver"
)

// Auditor records completed resolutions. Nil when auditing is disabled.
type Auditor interface {
	RecordResolution(ctx context.Context, coord domain.Coordinate, update domain.LocationUpdate) error
}

// Server exposes the location resolution endpoint plus health, readiness,
// and metrics routes.
type Server struct {
	httpServer    *http.Server
	resolver      *resolver.Resolver
	defaultCenter domain.Coordinate
	auditor       Auditor
	logger        *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and
// POST /v1/locations/resolve routes.
func NewServer(addr string, res *resolver.Resolver, defaultCenter domain.Coordinate, auditor Auditor, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		resolver:      res,
		defaultCenter: defaultCenter,
		auditor:       auditor,
		logger:        logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/locations/resolve", s.handleResolve)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.resolver.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type resolveRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type resolveResponse struct {
	Address    string `json:"address,omitempty"`
	CountryID  int64  `json:"countryId,omitempty"`
	CityID     int64  `json:"cityId,omitempty"`
	DistrictID int64  `json:"districtId,omitempty"`
	Matched    bool   `json:"matched"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	coord := domain.Coordinate{Lat: req.Latitude, Lon: req.Longitude}
	if err := coord.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if coord.IsZero() {
		coord = s.defaultCenter
	}

	update := s.resolver.Resolve(r.Context(), coord)

	if s.auditor != nil {
		if err := s.auditor.RecordResolution(r.Context(), coord, update); err != nil {
			s.logger.Warn("resolution audit failed", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Address:    update.Address,
		CountryID:  update.CountryID,
		CityID:     update.CityID,
		DistrictID: update.DistrictID,
		Matched:    update.CityID != 0,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
