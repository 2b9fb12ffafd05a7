package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"ramadhan-masjid-bot/internal/ramadhan"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	TelegramBotToken string
	SupabaseURL      string
	SupabaseKey      string
	MustJoinChannel  string
	SuperAdminID     int64
	StartImageURL    string

	Location      *time.Location
	Geofence      ramadhan.Geofence
	SeasonID      int
	RamadhanStart time.Time
	TargetSubuh   int

	RateLimitPerSec float64
	RateLimitBurst  int

	MetricsAddr string
	MetricsUser string
	MetricsPass string

	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

type User struct {
	ID        int64
	FirstName string
	Username  string
}

// Load membaca .env (jika ada) lalu environment variable.
// Nilai bool menandakan apakah file .env ditemukan.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg, err := FromEnv(os.Getenv)
	return cfg, dotenv, err
}

func FromEnv(getenv func(string) string) (*Config, error) {
	e := &env{get: getenv}

	cfg := &Config{
		TelegramBotToken: e.required("TELEGRAM_BOT_TOKEN"),
		SupabaseURL:      e.required("SUPABASE_URL"),
		SupabaseKey:      e.required("SUPABASE_KEY"),
		MustJoinChannel:  e.get("MUST_JOIN_CHANNEL"),
		StartImageURL:    e.get("START_IMAGE_URL"),
		SuperAdminID:     e.integer64("SUPER_ADMIN_ID", 0, true),

		SeasonID:    e.integer("SEASON_ID", 1447),
		TargetSubuh: e.integer("TARGET_SUBUH", 30),

		RateLimitPerSec: e.number("RATE_LIMIT_PER_SEC", 1),
		RateLimitBurst:  e.integer("RATE_LIMIT_BURST", 5),

		MetricsAddr: e.get("METRICS_ADDR"),
		MetricsUser: e.get("METRICS_USER"),
		MetricsPass: e.get("METRICS_PASS"),

		LogLevel:      strings.ToLower(e.get("LOG_LEVEL")),
		LogPath:       e.get("LOG_PATH"),
		LogMaxSizeMB:  e.integer("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups: e.integer("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: e.integer("LOG_MAX_AGE_DAYS", 7),
		LogCompress:   e.boolean("LOG_COMPRESS", false),
	}

	tz := e.get("TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		e.fail("TIMEZONE", err)
		loc = time.UTC
	}
	cfg.Location = loc

	start := e.get("RAMADHAN_START")
	if start == "" {
		start = "2026-02-18" // 1 Ramadhan 1447H
	}
	cfg.RamadhanStart, err = time.ParseInLocation("2006-01-02", start, loc)
	if err != nil {
		e.fail("RAMADHAN_START", err)
	}

	mode, err := ramadhan.ParseGeofenceMode(e.get("GEOFENCE_MODE"))
	if err != nil {
		e.fail("GEOFENCE_MODE", err)
	}
	cfg.Geofence = ramadhan.Geofence{
		Venue: ramadhan.Coordinate{
			Latitude:  e.number("MASJID_LAT", 0),
			Longitude: e.number("MASJID_LON", 0),
		},
		RadiusMeters: e.number("GEOFENCE_RADIUS_M", 100),
		Mode:         mode,
	}

	if len(e.errs) > 0 {
		return nil, errors.Errorf("invalid configuration: %s", strings.Join(e.errs, "; "))
	}
	return cfg, nil
}

// IsAdmin memeriksa apakah pengguna Telegram adalah super admin yang dikonfigurasi.
func (c *Config) IsAdmin(telegramID int64) bool {
	return c.SuperAdminID != 0 && telegramID == c.SuperAdminID
}

type env struct {
	get  func(string) string
	errs []string
}

func (e *env) fail(key string, err error) {
	e.errs = append(e.errs, fmt.Sprintf("%s: %v", key, err))
}

func (e *env) required(key string) string {
	val := strings.TrimSpace(e.get(key))
	if val == "" {
		e.errs = append(e.errs, key+" is not set")
	}
	return val
}

func (e *env) integer64(key string, def int64, required bool) int64 {
	val := strings.TrimSpace(e.get(key))
	if val == "" {
		if required {
			e.errs = append(e.errs, key+" is not set")
		}
		return def
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		e.fail(key, errors.Errorf("%q must be a number", val))
		return def
	}
	return n
}

func (e *env) integer(key string, def int) int {
	return int(e.integer64(key, int64(def), false))
}

func (e *env) number(key string, def float64) float64 {
	val := strings.TrimSpace(e.get(key))
	if val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		e.fail(key, errors.Errorf("%q must be a number", val))
		return def
	}
	return f
}

func (e *env) boolean(key string, def bool) bool {
	val := strings.TrimSpace(e.get(key))
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}
