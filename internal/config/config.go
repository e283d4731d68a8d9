package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	Database       DatabaseConfig
	HealthAddr     string
	SessionTTL     time.Duration
	SeedCatalog    bool
	MigrationsPath string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", os.Getenv("TELEGRAM_TOKEN")),
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordcards"),
			User:     getEnv("DB_USER", "wordcards"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		HealthAddr:     getEnv("HEALTH_ADDR", ":8080"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
	}

	// HEALTH_ADDR set to empty disables the health server
	if v, ok := os.LookupEnv("HEALTH_ADDR"); ok && v == "" {
		cfg.HealthAddr = ""
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	cfg.SessionTTL = ttl

	seed, err := strconv.ParseBool(getEnv("SEED_CATALOG", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_CATALOG: %w", err)
	}
	cfg.SeedCatalog = seed

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.URL == "" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
