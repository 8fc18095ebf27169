package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Token authentication configuration
	Auth AuthConfig

	// Public site configuration (absolute links in notifications)
	Site SiteConfig

	// Outbound mail configuration
	Mail MailConfig

	// Social post configuration
	Social SocialConfig

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

// AuthConfig holds token issuance settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// SiteConfig holds settings for building absolute links outside of any
// request context
type SiteConfig struct {
	// BaseURL is the externally reachable origin, e.g. "https://news.example.com"
	BaseURL string
	// ArticlePath is the path template for article detail pages
	ArticlePath string
}

// MailConfig holds SMTP settings for subscriber notifications
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SocialConfig holds settings for the external social-post client.
// An empty BearerToken disables posting entirely.
type SocialConfig struct {
	BearerToken string
	Endpoint    string
	Timeout     time.Duration
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
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "newsroom"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDurationEnv("TOKEN_TTL", 24*time.Hour),
		},
		Site: SiteConfig{
			BaseURL:     strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:8080"), "/"),
			ArticlePath: getEnv("SITE_ARTICLE_PATH", "/articles/%s/"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getIntEnv("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "news@localhost"),
		},
		Social: SocialConfig{
			BearerToken: getEnv("X_BEARER_TOKEN", ""),
			Endpoint:    getEnv("X_TWEET_ENDPOINT", "https://api.x.com/2/tweets"),
			Timeout:     getDurationEnv("X_TIMEOUT", 10*time.Second),
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
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
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

// ArticleURL returns the absolute detail link for an article id. The
// notification pipeline runs outside of any HTTP request, so the link is
// derived purely from configuration.
func (c *SiteConfig) ArticleURL(articleID string) string {
	return c.BaseURL + fmt.Sprintf(c.ArticlePath, articleID)
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
