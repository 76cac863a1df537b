// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string
	TimeLayout string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Storage
	StorageDriver string
	StorageKey    string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string
	MongoTimeout  time.Duration

	// PostgreSQL
	PostgresURI string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Simulator
	SimulationInterval  time.Duration
	SimulationRulesFile string

	// Flight lookup
	LookupURL          string
	LookupTimeout      time.Duration
	LookupClientID     string
	LookupClientSecret string
	LookupTokenURL     string
	LookupCacheTTL     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		TimeLayout: getEnv("TIME_LAYOUT", "2006-01-02 03:04:05 PM"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		StorageDriver: getEnv("STORAGE_DRIVER", StorageMongo),
		StorageKey:    getEnv("STORAGE_KEY", "trackedFlights"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flight_tracker"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),
		MongoTimeout:  getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=postgres dbname=flight_tracker sslmode=disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		SimulationInterval:  getEnvAsDuration("SIMULATION_INTERVAL", 10*time.Second),
		SimulationRulesFile: getEnv("SIMULATION_RULES_FILE", ""),

		LookupURL:          getEnv("FLIGHT_LOOKUP_URL", ""),
		LookupTimeout:      getEnvAsDuration("FLIGHT_LOOKUP_TIMEOUT", 0),
		LookupClientID:     getEnv("FLIGHT_LOOKUP_CLIENT_ID", ""),
		LookupClientSecret: getEnv("FLIGHT_LOOKUP_CLIENT_SECRET", ""),
		LookupTokenURL:     getEnv("FLIGHT_LOOKUP_TOKEN_URL", ""),
		LookupCacheTTL:     getEnvAsDuration("LOOKUP_CACHE_TTL", 5*time.Minute),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMongo, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("STORAGE_KEY must not be empty")
	}
	if c.SimulationInterval <= 0 {
		return fmt.Errorf("SIMULATION_INTERVAL must be positive, got %s", c.SimulationInterval)
	}
	return nil
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

// getEnvAsDuration accepts Go durations ("10s", "1m") or plain seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
