package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// API Configuration
	APIPort string
	APIHost string

	// Kafka (sync event notifications; empty disables publishing)
	KafkaBrokers    string
	SyncEventsTopic string

	// Promodata
	PromodataBaseURL string

	// Sync job tuning
	SyncDispatchDelay time.Duration
	SyncItemDelay     time.Duration
	SyncWorkers       int
	SyncQueueSize     int

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		APIPort:           getEnv("API_PORT", "8080"),
		APIHost:           getEnv("API_HOST", "0.0.0.0"),
		KafkaBrokers:      getEnv("KAFKA_BROKERS", ""),
		SyncEventsTopic:   getEnv("SYNC_EVENTS_TOPIC", "sync-events"),
		PromodataBaseURL:  getEnv("PROMODATA_BASE_URL", "https://api.promodata.com.au"),
		SyncDispatchDelay: getEnvAsDuration("SYNC_DISPATCH_DELAY", 250*time.Millisecond),
		SyncItemDelay:     getEnvAsDuration("SYNC_ITEM_DELAY", 500*time.Millisecond),
		SyncWorkers:       getEnvAsInt("SYNC_WORKERS", 4),
		SyncQueueSize:     getEnvAsInt("SYNC_QUEUE_SIZE", 64),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
