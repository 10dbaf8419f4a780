// Package config provides configuration loading and validation for the CLI and the HTTP server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

// EnvPrefix prefixes every environment override, e.g. CVM_SERVER_PORT
const EnvPrefix = "CVM"

// Config is the full runtime configuration. Every field has a default; a config file
// and environment variables override them.
type Config struct {
	Server      ServerConfig        `mapstructure:"server" json:"server"`
	DatabaseURL string              `mapstructure:"database_url" json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables persistence
	Log         LogConfig           `mapstructure:"log" json:"log"`
	Batch       BatchConfig         `mapstructure:"batch" json:"batch"`
	Calibration scoring.Calibration `mapstructure:"calibration" json:"calibration"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port           int   `mapstructure:"port" json:"port"`
	RateLimit      int   `mapstructure:"rate_limit" json:"rate_limit"` // requests per minute per client, 0 disables
	RateLimitBurst int   `mapstructure:"rate_limit_burst" json:"rate_limit_burst"`
	MaxBodyBytes   int64 `mapstructure:"max_body_bytes" json:"max_body_bytes"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	JSON  bool `mapstructure:"json" json:"json"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// BatchConfig configures batch ranking
type BatchConfig struct {
	Workers int `mapstructure:"workers" json:"workers"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			RateLimit:      120,
			RateLimitBurst: 20,
			MaxBodyBytes:   2 << 20,
		},
		Batch:       BatchConfig{Workers: 4},
		Calibration: scoring.DefaultCalibration(),
	}
}

// envBindings lists the keys that can be set from the environment, with any extra
// unprefixed variable names accepted for them
var envBindings = map[string][]string{
	"server.port":   {"PORT"},
	"database_url":  {"DATABASE_URL"},
	"log.json":      nil,
	"log.debug":     nil,
	"batch.workers": nil,
}

// Load reads the configuration file at path (YAML, JSON or TOML by extension) over
// the defaults, then applies environment overrides. An empty path loads defaults and
// environment only. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, extra := range envBindings {
		names := append([]string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, extra...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("config error: rate limits must be non-negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config error: 'server.max_body_bytes' must be positive")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("config error: 'batch.workers' must be at least 1, got %d", c.Batch.Workers)
	}
	return validateCalibration(c.Calibration)
}

// calibrationValue names one calibration setting for validation
type calibrationValue struct {
	name  string
	value float64
}

// validateCalibration reports the first invalid setting in declaration order
func validateCalibration(cal scoring.Calibration) error {
	k := cal.Keywords
	for _, w := range []calibrationValue{
		{"keywords.required_weight", k.RequiredWeight},
		{"keywords.preferred_weight", k.PreferredWeight},
		{"keywords.technical_weight", k.TechnicalWeight},
		{"keywords.soft_weight", k.SoftWeight},
		{"education.level_weight", cal.Education.LevelWeight},
		{"education.domain_weight", cal.Education.DomainWeight},
	} {
		if w.value < 0 {
			return fmt.Errorf("config error: 'calibration.%s' must be non-negative", w.name)
		}
	}

	for _, r := range []calibrationValue{
		{"keywords.penalty_ratio", k.PenaltyRatio},
		{"keywords.penalty_factor", k.PenaltyFactor},
		{"keywords.fuzzy_min_similarity", k.FuzzyMinSimilarity},
		{"warnings.required_ratio", cal.Warnings.RequiredRatio},
		{"coherence.penalty_floor", cal.Coherence.PenaltyFloor},
	} {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("config error: 'calibration.%s' must be between 0 and 1", r.name)
		}
	}

	for _, s := range []calibrationValue{
		{"experience.unknown", cal.Experience.Unknown},
		{"experience.at_min", cal.Experience.AtMin},
		{"experience.at_preferred", cal.Experience.AtPreferred},
		{"education.missing", cal.Education.Missing},
		{"education.exact_match", cal.Education.ExactMatch},
		{"certifications.none_required", cal.Certifications.NoneRequired},
		{"sector.floor", cal.Sector.Floor},
		{"warnings.coherence", cal.Warnings.Coherence},
		{"warnings.sector", cal.Warnings.Sector},
		{"warnings.education", cal.Warnings.Education},
		{"warnings.keywords", cal.Warnings.Keywords},
		{"warnings.experience", cal.Warnings.Experience},
		{"confidence.low_average", cal.Confidence.LowAverage},
		{"confidence.medium_average", cal.Confidence.MediumAverage},
	} {
		if s.value < 0 || s.value > 100 {
			return fmt.Errorf("config error: 'calibration.%s' must be between 0 and 100", s.name)
		}
	}

	if k.MaxMatchedDisplay < 0 || k.MaxMissingDisplay < 0 {
		return fmt.Errorf("config error: keyword display caps must be non-negative")
	}
	if cal.Confidence.LowAverage > cal.Confidence.MediumAverage {
		return fmt.Errorf("config error: 'calibration.confidence.low_average' exceeds 'medium_average'")
	}
	return nil
}
