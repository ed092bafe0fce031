package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
	"github.com/sanasaryank/trio-admin-sub000/internal/observability"
)

// Client implements domain.Geocoder against a Nominatim-compatible reverse
// geocoding endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	language   string
	throttle   *Throttle
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a throttled Nominatim client. The userAgent must
// identify this deployment per the Nominatim usage policy; language is sent
// as the Accept-Language hint so administrative names come back in the
// console's dictionary language.
func NewClient(baseURL, userAgent, language string, timeout time.Duration, throttle *Throttle, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		language:  language,
		throttle:  throttle,
		metrics:   metrics,
		logger:    logger,
	}
}

// ReverseGeocode converts a coordinate to address data. Any failure —
// transport error, non-200 status, undecodable body — collapses into the
// zero GeocodeResult: the caller never sees an error, only missing
// enrichment.
func (c *Client) ReverseGeocode(ctx context.Context, coord domain.Coordinate) domain.GeocodeResult {
	components, err := c.doRequest(ctx, coord)
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		c.logger.Debug("reverse geocode failed", "lat", coord.Lat, "lon", coord.Lon, "error", err)
		return domain.GeocodeResult{}
	}

	result := domain.DeriveGeocodeResult(components)
	if result.Address == "" && result.CityCandidate == "" && result.DistrictCandidate == "" {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
	} else {
		c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	}
	return result
}

func (c *Client) doRequest(ctx context.Context, coord domain.Coordinate) (domain.AddressComponents, error) {
	waitStart := time.Now()
	if err := c.throttle.Wait(ctx); err != nil {
		return domain.AddressComponents{}, fmt.Errorf("throttle wait: %w", err)
	}
	c.metrics.ThrottleWaitDuration.Observe(time.Since(waitStart).Seconds())

	params := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(coord.Lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(coord.Lon, 'f', -1, 64)},
		"zoom":           {"18"},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return domain.AddressComponents{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.language)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.AddressComponents{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.AddressComponents{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var nr response
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return domain.AddressComponents{}, fmt.Errorf("decode response: %w", err)
	}
	return nr.components(), nil
}

// Nominatim API response types. Every address field is optional.

type response struct {
	DisplayName string  `json:"display_name"`
	Address     address `json:"address"`
}

type address struct {
	Road          string `json:"road"`
	HouseNumber   string `json:"house_number"`
	Suburb        string `json:"suburb"`
	Neighbourhood string `json:"neighbourhood"`
	Quarter       string `json:"quarter"`
	District      string `json:"district"`
	City          string `json:"city"`
	Town          string `json:"town"`
	Village       string `json:"village"`
	State         string `json:"state"`
	County        string `json:"county"`
}

func (r response) components() domain.AddressComponents {
	return domain.AddressComponents{
		Road:          r.Address.Road,
		HouseNumber:   r.Address.HouseNumber,
		Suburb:        r.Address.Suburb,
		Neighbourhood: r.Address.Neighbourhood,
		Quarter:       r.Address.Quarter,
		District:      r.Address.District,
		City:          r.Address.City,
		Town:          r.Address.Town,
		Village:       r.Address.Village,
		State:         r.Address.State,
		County:        r.Address.County,
		DisplayName:   r.DisplayName,
	}
}
