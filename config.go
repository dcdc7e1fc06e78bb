package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Port     string
	Env      string
	MongoURI string
	MongoDB  string
	RedisURL string
}

// LoadConfig reads configuration from the environment, with a .env file as
// fallback for local development.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "gearstore"),
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
