package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "config.json", cfg.SettingsFile)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "cryptokaro", cfg.MetricsNamespace)
				assert.Equal(t, 4, cfg.BatchConcurrency)
				assert.Equal(t, 1<<20, cfg.MaxRequestBytes)
			},
		},
		{
			name: "load custom settings file",
			envVars: map[string]string{
				"SETTINGS_FILE": "/etc/cryptokaro/config.yaml",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/etc/cryptokaro/config.yaml", cfg.SettingsFile)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "true",
				"METRICS_NAMESPACE": "custom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "custom", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom command limits",
			envVars: map[string]string{
				"BATCH_CONCURRENCY": "16",
				"MAX_REQUEST_BYTES": "4096",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 16, cfg.BatchConcurrency)
				assert.Equal(t, 4096, cfg.MaxRequestBytes)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			cfg := Load()

			tt.validate(t, cfg)
		})
	}
}
