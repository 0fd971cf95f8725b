package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	PostgreSQL PostgreSQLConfig
	Content    ContentConfig
	Pricing    PricingConfig
	Mail       MailConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	BaseURL        string
	AllowedOrigins string
}

// PostgreSQLConfig holds the optional submission-log database configuration
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ContentConfig holds blog content and locale configuration
type ContentConfig struct {
	Root           string // content directory: <root>/<locale>/<slug>.md
	RegistryPath   string // ordered slug registry (YAML)
	LocalesDir     string // per-locale UI string bundles
	DefaultLocale  string
	Locales        []string // supported locales, default locale included
	WordsPerMinute int      // reading speed for derived read-time estimates
}

// PricingConfig holds calculator input bounds shown by the frontend.
// The estimator itself accepts areas as given; these bounds only drive
// the slider limits exposed via the options endpoint.
type PricingConfig struct {
	AreaMinSqm float64
	AreaMaxSqm float64
	Currency   string
}

// MailConfig holds the outbound email delivery provider configuration
type MailConfig struct {
	APIKey  string
	APIBase string
	From    string
	To      string // fixed destination for contact submissions
	Timeout int    // seconds
	Enabled bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			BaseURL:        getEnv("SITE_BASE_URL", "https://aquaseal.bg"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "aquaseal"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Content: ContentConfig{
			Root:           getEnv("CONTENT_ROOT", "./content/posts"),
			RegistryPath:   getEnv("CONTENT_REGISTRY", "./content/registry.yaml"),
			LocalesDir:     getEnv("LOCALES_DIR", "./content/locales"),
			DefaultLocale:  getEnv("DEFAULT_LOCALE", "bg"),
			Locales:        getEnvAsList("LOCALES", "bg,en"),
			WordsPerMinute: getEnvAsInt("READ_TIME_WPM", 200),
		},
		Pricing: PricingConfig{
			AreaMinSqm: getEnvAsFloat("PRICING_AREA_MIN_SQM", 10),
			AreaMaxSqm: getEnvAsFloat("PRICING_AREA_MAX_SQM", 2000),
			Currency:   getEnv("PRICING_CURRENCY", "BGN"),
		},
		Mail: MailConfig{
			APIKey:  getEnv("MAIL_API_KEY", ""),
			APIBase: getEnv("MAIL_API_BASE", "https://api.resend.com"),
			From:    getEnv("MAIL_FROM", "website@aquaseal.bg"),
			To:      getEnv("MAIL_TO", "office@aquaseal.bg"),
			Timeout: getEnvAsInt("MAIL_TIMEOUT", 15),
			Enabled: getEnv("MAIL_API_KEY", "") != "",
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if cfg.Content.DefaultLocale == "" {
		return nil, fmt.Errorf("DEFAULT_LOCALE must not be empty")
	}
	if !contains(cfg.Content.Locales, cfg.Content.DefaultLocale) {
		cfg.Content.Locales = append([]string{cfg.Content.DefaultLocale}, cfg.Content.Locales...)
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns the PostgreSQL connection string, preferring a
// fully specified DSN over the individual fields.
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// SubmissionLogEnabled reports whether a submission database was configured
func (c *Config) SubmissionLogEnabled() bool {
	return c.PostgreSQL.DSN != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
