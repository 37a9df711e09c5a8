package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Optional Redis backing for the rate limiter (in-memory when empty)
	RedisURL string

	// Pagination
	PageSize int // env: ARTICLES_PER_PAGE, default 10

	// Keyword sidebar
	KeywordLimit int // env: KEYWORD_LIMIT, top-N keywords shown, default 50

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default "Feed Reader"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", "postgres://localhost:5432/feedreader?sslmode=disable"),
		RedisURL:     getEnv("REDIS_URL", ""),
		PageSize:     getEnvInt("ARTICLES_PER_PAGE", 10),
		KeywordLimit: getEnvInt("KEYWORD_LIMIT", 50),

		SiteTitle:   getEnv("SITE_TITLE", "Feed Reader"),
		SiteTagline: getEnv("SITE_TAGLINE", "Your feeds, filtered by keyword"),
		SiteFooter:  getEnv("SITE_FOOTER", "Feed Reader"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
