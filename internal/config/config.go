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

	// Dataset
	DatasetPath string // CSV file loaded once at startup
	ConfigFile  string // optional YAML dashboard file

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // requests per minute per IP
	RedisURL     string // limiter storage; in-memory when empty

	// Metrics
	MetricsEnabled bool

	// Dashboard
	SiteTitle   string // env: SITE_TITLE, default: "SpaceX Launch Records Dashboard"
	ChartFormat string // env: CHART_FORMAT, "svg" or "png"

	// Dashboard settings from the YAML file, with defaults applied.
	Dashboard DashboardConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerAddr:     getEnv("SERVER_ADDR", ":8050"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8050"),
		DatasetPath:    getEnv("DATASET_PATH", "spacex_launch_dash.csv"),
		ConfigFile:     getEnv("CONFIG_FILE", "config.yaml"),
		TLSEnabled:     getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:      getEnv("TLS_CA_FILE", ""),
		CORSOrigins:    getEnv("CORS_ORIGINS", ""),
		RateLimitMax:   getEnvInt("RATE_LIMIT_MAX", 300),
		RedisURL:       getEnv("REDIS_URL", ""),
		MetricsEnabled: getEnv("METRICS_ENABLED", "true") != "false",

		SiteTitle:   getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		ChartFormat: getEnv("CHART_FORMAT", "svg"),

		Dashboard: DefaultDashboardConfig(),
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

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// ChartExt returns the file extension of rendered charts.
func (c *Config) ChartExt() string {
	if c.ChartFormat == "png" {
		return "png"
	}
	return "svg"
}
