package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Issuer claim for minted tokens
	SharedSecret string // Required: HS256 secret shared with the legacy issuer

	Algorithm        string        // Optional: token algorithm identifier (only HS256 supported) (default: HS256)
	AccessTTL        time.Duration // Optional: native access-token lifetime (default: 30m)
	UnifiedTTL       time.Duration // Optional: unified-token lifetime for bridged logins (default: 24h)
	ClockLeeway      time.Duration // Optional: verification leeway for clock skew between issuers (default: 30s)
	BridgeEnabled    bool          // Optional: accept legacy credentials (default: true)
	RevalidateNative bool          // Optional: re-check native token subjects against the user table per request (default: false)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./identity.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("IDENTITY_ISSUER", "identity-service"),
		SharedSecret: os.Getenv("IDENTITY_SHARED_SECRET"),
		Algorithm:    getEnvOrDefault("IDENTITY_ALGORITHM", "HS256"),

		AccessTTL:        getEnvDurationOrDefault("IDENTITY_ACCESS_TTL", 30*time.Minute),
		UnifiedTTL:       getEnvDurationOrDefault("IDENTITY_UNIFIED_TTL", 24*time.Hour),
		ClockLeeway:      getEnvDurationOrDefault("IDENTITY_CLOCK_LEEWAY", 30*time.Second),
		BridgeEnabled:    getEnvBoolOrDefault("IDENTITY_BRIDGE_ENABLED", true),
		RevalidateNative: getEnvBoolOrDefault("IDENTITY_REVALIDATE_NATIVE", false),

		DatabaseFile:        getEnvOrDefault("IDENTITY_DATABASE_FILE", "identity.db"),
		PepperFile:          getEnvOrDefault("IDENTITY_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
