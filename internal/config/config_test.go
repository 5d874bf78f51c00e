package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=127.0.0.1:9000\nOTP_BASE_URL=http://otp.local/otp\nPLAN_THROTTLE=250ms\nKAFKA_BROKERS=a:9092, b:9092\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
	assert.Equal(t, "http://otp.local/otp", cfg.OTPBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.PlanThrottle)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Brokers())
	// untouched keys keep their defaults
	assert.Equal(t, "default", cfg.OTPRouter)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, 750*time.Millisecond, cfg.PlanThrottle)
	assert.Equal(t, "none", cfg.EventsDriver)
	assert.Empty(t, cfg.Brokers())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgres://u:p@db:5432/trips")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/trips", cfg.DBSource)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
