package config

import (
	"testing"

	"roadmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "SESSION_COOKIE", "SESSION_MAX", "ROADMAP_CONTENT", "ROADMAP_YEAR", "ROADMAP_ACTIVE", "EXPORT_WORKERS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "roadmap_session", cfg.Server.SessionCookie)
	assert.Equal(t, 10000, cfg.Server.MaxSessions)
	assert.Equal(t, "", cfg.Roadmap.ContentPath)
	assert.Equal(t, "2024", cfg.Roadmap.DefaultYear)
	assert.Equal(t, 1, cfg.Roadmap.DefaultActive)
	assert.Equal(t, 4, cfg.Export.Workers)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ROADMAP_CONTENT", " content/roadmap.yaml ")
	t.Setenv("ROADMAP_ACTIVE", "3")
	t.Setenv("EXPORT_WORKERS", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "content/roadmap.yaml", cfg.Roadmap.ContentPath)
	assert.Equal(t, 3, cfg.Roadmap.DefaultActive)
	assert.Equal(t, 2, cfg.Export.Workers)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"active out of range", "ROADMAP_ACTIVE", "5"},
		{"non numeric port", "PORT", "http"},
		{"zero workers", "EXPORT_WORKERS", "0"},
		{"negative session cap", "SESSION_MAX", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
