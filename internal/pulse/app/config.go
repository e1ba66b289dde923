package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./pulse.db)
	BaseURL      string // Public origin for advance and tracking links (default: http://localhost:8080)

	AdminUser         string // Required for the admin surface: Basic auth username
	AdminPasswordHash string // Required for the admin surface: Argon2id hash of the password

	JWTSecret string // Required for the pro dashboard: shared HS256 secret with the identity provider
	JWTIssuer string // Issuer claim expected on dashboard sessions (default: pulse)

	ResendAPIKey string // Optional: Resend API key; reminders log instead of sending when unset
	EmailFrom    string // Sender identity for reminders (default: Pulse <onboarding@resend.dev>)

	ReminderBackoff time.Duration // Wait before the single rate-limit retry (default: 2s)
	RecipientDelay  time.Duration // Throttle between reminder recipients (default: 500ms)

	StorageEndpoint  string // Optional: S3-compatible endpoint; documents go to local disk when unset
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string // Bucket for uploaded documents (default: pulse-documents)
	StorageUseSSL    bool
	StorageLocalDir  string // Local fallback directory (default: ./documents)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one is present. Unset values fall back to dev-friendly defaults;
// surfaces whose credentials are missing stay closed rather than open.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseFile: getEnvOrDefault("PULSE_DATABASE_FILE", "pulse.db"),
		BaseURL:      getEnvOrDefault("PULSE_BASE_URL", "http://localhost:8080"),

		AdminUser:         os.Getenv("PULSE_ADMIN_USER"),
		AdminPasswordHash: os.Getenv("PULSE_ADMIN_PASSWORD_HASH"),

		JWTSecret: os.Getenv("PULSE_JWT_SECRET"),
		JWTIssuer: getEnvOrDefault("PULSE_JWT_ISSUER", "pulse"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getEnvOrDefault("PULSE_EMAIL_FROM", "Pulse <onboarding@resend.dev>"),

		ReminderBackoff: getEnvDurationOrDefault("PULSE_REMINDER_BACKOFF", 2*time.Second),
		RecipientDelay:  getEnvDurationOrDefault("PULSE_RECIPIENT_DELAY", 500*time.Millisecond),

		StorageEndpoint:  os.Getenv("PULSE_STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("PULSE_STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("PULSE_STORAGE_SECRET_KEY"),
		StorageBucket:    getEnvOrDefault("PULSE_STORAGE_BUCKET", "pulse-documents"),
		StorageUseSSL:    getEnvBoolOrDefault("PULSE_STORAGE_USE_SSL", true),
		StorageLocalDir:  getEnvOrDefault("PULSE_STORAGE_LOCAL_DIR", "documents"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
