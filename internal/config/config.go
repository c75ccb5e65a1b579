package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Readings served until a live feed is wired in.
	SeaIceConcentration float64
	DriftSpeed          float64
	WindSpeed           float64

	// Assessment publishing.
	PublishEnabled  bool
	PublishInterval time.Duration
	KafkaBrokers    []string
	KafkaTopic      string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	sic, err := parseReading("SEA_ICE_CONCENTRATION", "65")
	if err != nil {
		return nil, err
	}
	drift, err := parseReading("ICE_DRIFT_SPEED", "12")
	if err != nil {
		return nil, err
	}
	wind, err := parseReading("WIND_SPEED", "8")
	if err != nil {
		return nil, err
	}

	publishEnabled, err := strconv.ParseBool(sharedcfg.EnvOrDefault("PUBLISH_ENABLED", "false"))
	if err != nil {
		return nil, errors.New("invalid PUBLISH_ENABLED")
	}

	publishInterval, err := time.ParseDuration(sharedcfg.EnvOrDefault("PUBLISH_INTERVAL", "1h"))
	if err != nil || publishInterval <= 0 {
		return nil, errors.New("invalid PUBLISH_INTERVAL")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")),
		ShutdownTimeout: shutdownTimeout,

		SeaIceConcentration: sic,
		DriftSpeed:          drift,
		WindSpeed:           wind,

		PublishEnabled:  publishEnabled,
		PublishInterval: publishInterval,
		KafkaBrokers:    sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "polar-risk-assessments"),
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, errors.New("LOG_FORMAT must be json or text")
	}
	if cfg.PublishEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when PUBLISH_ENABLED is true")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_TOPIC is required when PUBLISH_ENABLED is true")
		}
	}

	return cfg, nil
}

// parseReading parses a numeric reading. Out-of-range values are accepted and
// clamped later; only non-numeric, NaN and infinite values are rejected.
func parseReading(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(sharedcfg.EnvOrDefault(key, def)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}
