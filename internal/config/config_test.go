package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "course_catalog.json", cfg.Catalog.Path)
	assert.Equal(t, "course-catalog-service", cfg.Tracing.ServiceName)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
catalog:
  path: /var/lib/coursecat/catalog.json
tracing:
  sample_ratio: 0.25
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/var/lib/coursecat/catalog.json", cfg.Catalog.Path)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
	// Untouched values keep their defaults.
	assert.Equal(t, "development", cfg.Server.Mode)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "0.5")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "false")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Tracing.SampleRatio)
	assert.False(t, cfg.Tracing.Insecure)
}

func TestLoadConfigRejectsBadSampleRatio(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLE_RATIO", "2.0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
