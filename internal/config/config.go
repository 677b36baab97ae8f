package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// Categorizer rule table; empty means the built-in rules.
	CategoryRulesPath string

	// Cat image upstream (the /cat command backend).
	CatAPIURL     string
	CatAPITimeout time.Duration

	// Chat session expiry.
	SessionTTL time.Duration
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		CategoryRulesPath: getEnv("CATEGORY_RULES_PATH", ""),
		CatAPIURL:         getEnv("CAT_API_URL", "https://api.thecatapi.com/v1/images/search"),
		CatAPITimeout:     getDurationEnv("CAT_API_TIMEOUT", 10*time.Second),
		SessionTTL:        getDurationEnv("SESSION_TTL", 12*time.Hour),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
