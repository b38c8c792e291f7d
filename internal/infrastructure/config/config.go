// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (reference data)
	PostgresURI string

	// Redis (optional session backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Sessions
	SessionBackend string // memory | redis
	SessionTTL     time.Duration

	// Itinerary provider
	ProviderMode string // live | fixture

	// Generation gateway
	GenAIBaseURL      string
	GenAITokenURL     string
	GenAIClientID     string
	GenAIClientSecret string
	GenAITimeout      time.Duration

	// Orchestration
	PlanTimeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 120)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "tripgenie"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=tripgenie dbname=tripgenie port=5432"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 720)) * time.Minute,

		ProviderMode: getEnv("PROVIDER_MODE", "live"),

		GenAIBaseURL:      getEnv("GENAI_BASE_URL", "http://localhost:9090"),
		GenAITokenURL:     getEnv("GENAI_TOKEN_URL", ""),
		GenAIClientID:     getEnv("GENAI_CLIENT_ID", ""),
		GenAIClientSecret: getEnv("GENAI_CLIENT_SECRET", ""),
		GenAITimeout:      time.Duration(getEnvAsInt("GENAI_TIMEOUT", 60)) * time.Second,

		// Generous by default: a plan chains five dependent model calls.
		PlanTimeout: time.Duration(getEnvAsInt("PLAN_TIMEOUT", 240)) * time.Second,
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
