package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":3333", cfg.Addr)
	assert.Equal(t, ":9999", cfg.DiagAddr)
	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, TraceExporterNone, cfg.Trace.Exporter)
	assert.Equal(t, 1.0, cfg.Trace.SampleRatio)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("REST_ADDR", ":8080")
	t.Setenv("REST_DB_DRIVER", "postgres")
	t.Setenv("REST_DB_DSN", "postgres://u:p@db:5432/articles")
	t.Setenv("REST_LOG_LEVEL", "debug")
	t.Setenv("REST_TRACE_EXPORTER", "stdout")
	t.Setenv("REST_TRACE_SAMPLE_RATIO", "0.25")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "postgres://u:p@db:5432/articles", cfg.DB.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, TraceExporterStdout, cfg.Trace.Exporter)
	assert.Equal(t, 0.25, cfg.Trace.SampleRatio)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("addr: \":4000\"\npublic_url: http://api.local\ndb:\n  auto_migrate: false\n"), 0o600))

	cfg, err := Load(New(), file)
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "http://api.local", cfg.PublicURL)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown db driver", "REST_DB_DRIVER", "mysql"},
		{"unknown trace exporter", "REST_TRACE_EXPORTER", "jaeger"},
		{"sample ratio above one", "REST_TRACE_SAMPLE_RATIO", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load(New(), "")
			assert.Error(t, err)
		})
	}
}
