package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds all process configuration. It is loaded once at
// startup and never mutated afterwards.
type Settings struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	// JWT
	JWTSecret        string
	JWTExpireMinutes int

	// OpenPhone
	OpenPhoneAPIKey string
	OpenPhoneNumber string

	// Declared for parity with the ops environment; nothing in this
	// service consumes them yet (Gmail ingestion / Stripe billing).
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	StripeAPIKey      string
}

// C is the globally accessible settings instance, populated by Load.
var C *Settings

// Load reads .env (if present) and the environment into C.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	C = &Settings{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "gonzo"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpireMinutes: getEnvInt("JWT_EXPIRE_MINUTES", 1440),

		OpenPhoneAPIKey: getEnv("OPENPHONE_API_KEY", ""),
		OpenPhoneNumber: getEnv("OPENPHONE_PHONE_NUMBER", ""),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		StripeAPIKey:      getEnv("STRIPE_API_KEY", ""),
	}
	return C
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid integer for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}
