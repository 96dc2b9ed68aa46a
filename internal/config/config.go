package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Site/SEO configuration
	Site SiteConfig

	// GitHub API configuration
	GitHub GitHubConfig

	// Cron job endpoint configuration
	Cron CronConfig

	// Admin panel configuration
	Admin AdminConfig

	// Redis configuration (comment rate limiting)
	Redis RedisConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// SiteConfig holds public site URL and revalidation webhook settings
type SiteConfig struct {
	BaseURL          string
	RevalidateURL    string
	RevalidateSecret string
}

// GitHubConfig holds GitHub REST API client settings
type GitHubConfig struct {
	APIBaseURL     string
	Token          string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// CronConfig holds the shared secret guarding the cron endpoint.
// An empty secret means the endpoint rejects every request (fail closed).
type CronConfig struct {
	Secret string
}

// AdminConfig holds the bearer token guarding the admin endpoints
type AdminConfig struct {
	Token string
}

// RedisConfig holds redis settings for the comment rate limiter.
// An empty Addr disables redis-backed limiting.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	CommentLimit  int
	CommentWindow time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "portfolio_cms"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Site: SiteConfig{
			BaseURL:          getEnv("SITE_BASE_URL", "http://localhost:3000"),
			RevalidateURL:    getEnv("REVALIDATE_URL", ""),
			RevalidateSecret: getEnv("REVALIDATE_SECRET", ""),
		},
		GitHub: GitHubConfig{
			APIBaseURL:     getEnv("GITHUB_API_URL", "https://api.github.com"),
			Token:          getEnv("GITHUB_TOKEN", ""),
			PageSize:       getIntEnv("GITHUB_PAGE_SIZE", 100),
			Timeout:        getDurationEnv("GITHUB_TIMEOUT", 15*time.Second),
			MaxAttempts:    getIntEnv("GITHUB_MAX_ATTEMPTS", 3),
			InitialBackoff: getDurationEnv("GITHUB_INITIAL_BACKOFF", 500*time.Millisecond),
			MaxBackoff:     getDurationEnv("GITHUB_MAX_BACKOFF", 5*time.Second),
		},
		Cron: CronConfig{
			Secret: getEnv("CRON_SECRET", ""),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getIntEnv("REDIS_DB", 0),
			CommentLimit:  getIntEnv("COMMENT_RATE_LIMIT", 5),
			CommentWindow: getDurationEnv("COMMENT_RATE_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("SITE_BASE_URL is required")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
