package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "DATABASE_URL", "CVM_SERVER_PORT", "CVM_DATABASE_URL",
		"CVM_LOG_JSON", "CVM_LOG_DEBUG", "CVM_BATCH_WORKERS",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, scoring.DefaultCalibration(), cfg.Calibration)
}

func TestLoad_ValidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", `
server:
  port: 9090
database_url: postgres://localhost:5432/cv
log:
  json: true
  debug: true
batch:
  workers: 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/cv", cfg.DatabaseURL)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst, "unset keys keep their defaults")
}

func TestLoad_ValidJSON(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.json", `{"server": {"port": 7070}, "batch": {"workers": 2}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Batch.Workers)
}

func TestLoad_PartialCalibrationOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", `
calibration:
  keywords:
    max_missing_display: 5
  warnings:
    coherence: 40
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := scoring.DefaultCalibration()
	assert.Equal(t, 5, cfg.Calibration.Keywords.MaxMissingDisplay)
	assert.Equal(t, 40.0, cfg.Calibration.Warnings.Coherence)
	assert.Equal(t, defaults.Keywords.RequiredWeight, cfg.Calibration.Keywords.RequiredWeight)
	assert.Equal(t, defaults.Keywords.MaxMatchedDisplay, cfg.Calibration.Keywords.MaxMatchedDisplay)
	assert.Equal(t, defaults.Experience, cfg.Calibration.Experience)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "server:\n  port: 9090\n")
	t.Setenv("CVM_SERVER_PORT", "6060")
	t.Setenv("DATABASE_URL", "postgres://env/cv")
	t.Setenv("CVM_BATCH_WORKERS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
	assert.Equal(t, "postgres://env/cv", cfg.DatabaseURL)
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func TestLoad_RelativePath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cvm.yaml"), []byte("server:\n  port: 5050\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("cvm.yaml")
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Server.Port)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValuesFailValidation(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "config.yaml", "batch:\n  workers: 0\n")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "server.port"},
		{name: "negative rate limit", mutate: func(c *Config) { c.Server.RateLimit = -1 }, wantErr: "rate limits"},
		{name: "zero body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: "max_body_bytes"},
		{name: "no workers", mutate: func(c *Config) { c.Batch.Workers = 0 }, wantErr: "batch.workers"},
		{name: "negative weight", mutate: func(c *Config) { c.Calibration.Keywords.SoftWeight = -0.1 }, wantErr: "keywords.soft_weight"},
		{name: "ratio above one", mutate: func(c *Config) { c.Calibration.Keywords.PenaltyRatio = 1.5 }, wantErr: "keywords.penalty_ratio"},
		{name: "threshold above 100", mutate: func(c *Config) { c.Calibration.Warnings.Sector = 120 }, wantErr: "warnings.sector"},
		{name: "negative display cap", mutate: func(c *Config) { c.Calibration.Keywords.MaxMatchedDisplay = -1 }, wantErr: "display caps"},
		{
			name: "confidence bounds inverted",
			mutate: func(c *Config) {
				c.Calibration.Confidence.LowAverage = 70
				c.Calibration.Confidence.MediumAverage = 50
			},
			wantErr: "low_average",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsFirstInvalidCalibrationSetting(t *testing.T) {
	cfg := Default()
	cfg.Calibration.Keywords.TechnicalWeight = -1
	cfg.Calibration.Keywords.SoftWeight = -1
	cfg.Calibration.Education.DomainWeight = -1
	cfg.Calibration.Warnings.Experience = 150
	cfg.Calibration.Warnings.Coherence = 150

	for i := 0; i < 50; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, "config error: 'calibration.keywords.technical_weight' must be non-negative", err.Error())
	}

	cfg = Default()
	cfg.Calibration.Warnings.Experience = 150
	cfg.Calibration.Warnings.Coherence = 150
	for i := 0; i < 50; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'calibration.warnings.coherence'")
	}
}
