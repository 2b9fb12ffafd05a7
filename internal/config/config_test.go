package config

import (
	"testing"
	"time"

	"ramadhan-masjid-bot/internal/ramadhan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"TELEGRAM_BOT_TOKEN": "123:abc",
		"SUPABASE_URL":       "https://example.supabase.co",
		"SUPABASE_KEY":       "service-key",
		"SUPER_ADMIN_ID":     "42",
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(mapEnv(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.SuperAdminID)
	assert.Equal(t, "Asia/Jakarta", cfg.Location.String())
	assert.Equal(t, ramadhan.GeofenceBypassed, cfg.Geofence.Mode)
	assert.Equal(t, 100.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, 1447, cfg.SeasonID)
	assert.Equal(t, 30, cfg.TargetSubuh)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 1.0, cfg.RateLimitPerSec)
	assert.Equal(t, 100, cfg.LogMaxSizeMB)
	assert.False(t, cfg.LogCompress)

	y, m, d := cfg.RamadhanStart.Date()
	assert.Equal(t, []int{2026, 2, 18}, []int{y, int(m), d})
	assert.Equal(t, cfg.Location, cfg.RamadhanStart.Location())

	assert.True(t, cfg.IsAdmin(42))
	assert.False(t, cfg.IsAdmin(7))
}

func TestFromEnvOverrides(t *testing.T) {
	env := baseEnv()
	env["TIMEZONE"] = "UTC"
	env["GEOFENCE_MODE"] = "enforced"
	env["GEOFENCE_RADIUS_M"] = "250"
	env["MASJID_LAT"] = "-6.1702"
	env["MASJID_LON"] = "106.8311"
	env["RAMADHAN_START"] = "2027-02-08"
	env["LOG_COMPRESS"] = "true"
	env["LOG_LEVEL"] = "DEBUG"

	cfg, err := FromEnv(mapEnv(env))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, ramadhan.GeofenceEnforced, cfg.Geofence.Mode)
	assert.Equal(t, 250.0, cfg.Geofence.RadiusMeters)
	assert.Equal(t, -6.1702, cfg.Geofence.Venue.Latitude)
	assert.Equal(t, 106.8311, cfg.Geofence.Venue.Longitude)
	assert.Equal(t, time.Date(2027, 2, 8, 0, 0, 0, 0, time.UTC), cfg.RamadhanStart)
	assert.True(t, cfg.LogCompress)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvCollectsErrors(t *testing.T) {
	env := map[string]string{
		"SUPER_ADMIN_ID": "not-a-number",
		"GEOFENCE_MODE":  "strict",
		"MASJID_LAT":     "north",
	}

	_, err := FromEnv(mapEnv(env))
	require.Error(t, err)
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "SUPABASE_URL", "SUPABASE_KEY", "SUPER_ADMIN_ID", "GEOFENCE_MODE", "MASJID_LAT"} {
		assert.Contains(t, err.Error(), key)
	}
}
