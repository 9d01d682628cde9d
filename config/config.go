package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string
	PushTTL         int
	PushTimeout     time.Duration

	CancelWindow        time.Duration
	AvailabilityWindow  time.Duration
	CancelNotifiesStaff bool
	BookingLockTimeout  time.Duration

	AnnouncementTick time.Duration
	Location         *time.Location

	StaffCacheTTL time.Duration

	CORSOrigins    []string
	SocketPongWait time.Duration
}

// Load reads .env when present, then the environment.
func Load() Config {
	logger := slog.Default().With("component", "config")

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file loaded", "err", err)
	}

	return Config{
		DatabaseURL:         getString("DATABASE_URL", ""),
		HTTPAddr:            getString("HTTP_ADDR", ":9090"),
		RedisAddr:           getString("REDIS_ADDR", ""),
		RedisPassword:       getString("REDIS_PASSWORD", ""),
		RedisDB:             getInt(logger, "REDIS_DB", 0),
		JWTSecret:           getString("JWT_SECRET", ""),
		VAPIDPublicKey:      getString("VAPID_PUBLIC_KEY", ""),
		VAPIDPrivateKey:     getString("VAPID_PRIVATE_KEY", ""),
		VAPIDSubscriber:     getString("VAPID_SUBSCRIBER", "mailto:admin@example.com"),
		PushTTL:             getInt(logger, "PUSH_TTL_SECONDS", 60),
		PushTimeout:         getDuration(logger, "PUSH_TIMEOUT", 10*time.Second),
		CancelWindow:        getDuration(logger, "CANCEL_WINDOW", 10*time.Minute),
		AvailabilityWindow:  getDuration(logger, "AVAILABILITY_WINDOW", 7*24*time.Hour),
		CancelNotifiesStaff: getBool(logger, "CANCEL_NOTIFIES_STAFF", false),
		BookingLockTimeout:  getDuration(logger, "BOOKING_LOCK_TIMEOUT", 10*time.Second),
		AnnouncementTick:    getDuration(logger, "ANNOUNCEMENT_TICK", time.Minute),
		Location:            loadLocation(logger, getString("TIMEZONE", "Asia/Kolkata")),
		StaffCacheTTL:       getDuration(logger, "STAFF_CACHE_TTL", time.Minute),
		CORSOrigins:         getList("CORS_ORIGINS"),
		SocketPongWait:      getDuration(logger, "SOCKET_PONG_WAIT", time.Minute),
	}
}

func getString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

// getList splits a comma separated value, dropping blanks.
func getList(key string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(key), ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}

func getInt(logger *slog.Logger, key string, fallback int) int {
	raw := getString(key, "")
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid integer, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}

func getBool(logger *slog.Logger, key string, fallback bool) bool {
	raw := getString(key, "")
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		logger.Warn("invalid boolean, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}

func getDuration(logger *slog.Logger, key string, fallback time.Duration) time.Duration {
	raw := getString(key, "")
	if raw == "" {
		return fallback
	}

	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		logger.Warn("invalid duration, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return value
}

func loadLocation(logger *slog.Logger, name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("unknown timezone, using local time", "timezone", name, "err", err)
		return time.Local
	}
	return loc
}
