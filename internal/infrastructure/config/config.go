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

	// Redis (position store + alert ledger)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// MongoDB (schedule registry)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL (gate registry)
	PostgresURI string

	// Monitoring
	SafeDistanceKm     float64
	SafeAltitudeDiffFt float64
	CollisionInterval  time.Duration
	MinSafeAltitudeFt  float64
	AltitudeInterval   time.Duration
	AlertTTL           time.Duration
	ActiveAlertCap     int
	PositionTTL        time.Duration
	RegistryTimeout    time.Duration

	// Zones
	ZoneFile string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "skywatch"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=skywatch dbname=skywatch port=5432 sslmode=disable"),

		SafeDistanceKm:     getEnvAsFloat("SAFE_DISTANCE_KM", 5),
		SafeAltitudeDiffFt: getEnvAsFloat("SAFE_ALTITUDE_DIFF_FT", 1000),
		CollisionInterval:  time.Duration(getEnvAsInt("COLLISION_CHECK_INTERVAL", 5)) * time.Second,
		MinSafeAltitudeFt:  getEnvAsFloat("MIN_SAFE_ALTITUDE_FT", 1000),
		AltitudeInterval:   time.Duration(getEnvAsInt("ALTITUDE_CHECK_INTERVAL", 5)) * time.Second,
		AlertTTL:           time.Duration(getEnvAsInt("ALERT_TTL", 300)) * time.Second,
		ActiveAlertCap:     getEnvAsInt("ACTIVE_ALERT_CAP", 100),
		PositionTTL:        time.Duration(getEnvAsInt("POSITION_TTL", 60)) * time.Second,
		RegistryTimeout:    time.Duration(getEnvAsInt("REGISTRY_TIMEOUT", 5)) * time.Second,

		ZoneFile: getEnv("ZONE_FILE", ""),
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
