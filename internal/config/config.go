package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Reverse geocoding configuration.
	GeocoderBaseURL     string
	GeocoderUserAgent   string
	GeocoderLanguage    string
	GeocoderTimeout     time.Duration
	GeocoderMinInterval time.Duration
	GeocoderCacheSize   int

	// Geography dictionary and map defaults.
	DictionaryPath   string
	DefaultCenterLat float64
	DefaultCenterLon float64

	// Resolution audit publishing.
	KafkaEnabled    bool
	KafkaBrokers    []string
	KafkaAuditTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	geocoderTimeout, err := parseDuration("GEOCODER_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	// The public Nominatim usage policy caps clients at one request per
	// second; the floor is configurable for self-hosted instances.
	minInterval, err := parseDuration("GEOCODER_MIN_INTERVAL", "1s")
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseInt("GEOCODER_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	centerLat, err := parseFloat("DEFAULT_CENTER_LAT", 40.1776)
	if err != nil {
		return nil, err
	}
	centerLon, err := parseFloat("DEFAULT_CENTER_LON", 44.5126)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		GeocoderBaseURL:     envOrDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent:   envOrDefault("GEOCODER_USER_AGENT", "trio-admin-location/1.0 (restaurant console)"),
		GeocoderLanguage:    envOrDefault("GEOCODER_LANGUAGE", "hy"),
		GeocoderTimeout:     geocoderTimeout,
		GeocoderMinInterval: minInterval,
		GeocoderCacheSize:   cacheSize,

		DictionaryPath:   envOrDefault("DICTIONARY_PATH", "geography.json"),
		DefaultCenterLat: centerLat,
		DefaultCenterLon: centerLon,

		KafkaEnabled:    os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAuditTopic: envOrDefault("KAFKA_AUDIT_TOPIC", "location-resolution-audit"),
	}

	if cfg.GeocoderBaseURL == "" {
		return nil, errors.New("GEOCODER_BASE_URL is required")
	}
	if cfg.DictionaryPath == "" {
		return nil, errors.New("DICTIONARY_PATH is required")
	}
	if cfg.DefaultCenterLat < -90 || cfg.DefaultCenterLat > 90 {
		return nil, errors.New("DEFAULT_CENTER_LAT out of range [-90, 90]")
	}
	if cfg.DefaultCenterLon < -180 || cfg.DefaultCenterLon > 180 {
		return nil, errors.New("DEFAULT_CENTER_LON out of range [-180, 180]")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
		}
		if cfg.KafkaAuditTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_AUDIT_TOPIC is not set")
		}
	}

	return cfg, nil
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parseDuration(name, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(name, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return d, nil
}

func parseInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

func parseFloat(name string, def float64) (float64, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return f, nil
}
