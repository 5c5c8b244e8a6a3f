package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-dashboard-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.Equal(t, "./uploads", cfg.Upload.Dir)
	assert.Equal(t, 10*1024*1024, cfg.Upload.MaxBytes())
	assert.True(t, cfg.Simulation.Enabled)
	assert.Equal(t, "@every 30s", cfg.Simulation.Schedule)
	assert.True(t, cfg.App.SeedSampleData)
	assert.Equal(t, 16, cfg.Realtime.Buffer)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("SIMULATION_ENABLED", "false")
	t.Setenv("SIMULATION_SCHEDULE", "@every 5s")
	t.Setenv("WS_BUFFER", "0")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Simulation.Enabled)
	assert.Equal(t, "@every 5s", cfg.Simulation.Schedule)
	assert.Equal(t, 1, cfg.Realtime.Buffer)
}

func TestLoad_LimiteDeCargaInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPLOAD_MAX_MB", "-1")

	_, err := config.Load()

	assert.Error(t, err)
}
