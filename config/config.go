package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration, loaded from environment
// variables or a .env file.
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=shoppulse
//	CACHE_ENABLED=true
//	CACHE_TTL=10m
//	REPORT_DEFAULT_LIMIT=10
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Cache    CacheConfig
	Report   ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string
	RequestTimeout  time.Duration // per-request deadline applied by the router
	RateLimit       int           // requests per client IP per minute; 0 disables
	ShutdownTimeout time.Duration
}

// PostgresConfig defines connection details for PostgreSQL. URL is the DSN
// computed from the other fields.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// CacheConfig controls report memoization.
//
// TTL 0 keeps entries until evicted; MaxEntries 0 means unbounded.
// PurgeInterval is how often expired entries are swept in the background.
type CacheConfig struct {
	Enabled       bool
	TTL           time.Duration
	MaxEntries    int
	PurgeInterval time.Duration
}

// ReportConfig holds the defaults the HTTP layer applies to omitted query
// parameters.
type ReportConfig struct {
	DefaultLimit      int
	DefaultThreshold  int
	DefaultWindowDays int
}

// AppConfig is the globally accessible configuration, populated once by LoadConfig.
var AppConfig Config

// LoadConfig populates AppConfig.
//
// Precedence (lowest to highest): defaults, .env file, environment variables.
// Missing or invalid required settings terminate the process.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("SERVER_RATE_LIMIT", 120)
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "5s")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "shoppulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("CACHE_TTL", "10m")
	viper.SetDefault("CACHE_MAX_ENTRIES", 1000)
	viper.SetDefault("CACHE_PURGE_INTERVAL", "1m")

	viper.SetDefault("REPORT_DEFAULT_LIMIT", 10)
	viper.SetDefault("REPORT_DEFAULT_THRESHOLD", 50)
	viper.SetDefault("REPORT_DEFAULT_WINDOW_DAYS", 30)

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // .env is optional

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			RequestTimeout:  viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
			RateLimit:       viper.GetInt("SERVER_RATE_LIMIT"),
			ShutdownTimeout: viper.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Cache: CacheConfig{
			Enabled:       viper.GetBool("CACHE_ENABLED"),
			TTL:           viper.GetDuration("CACHE_TTL"),
			MaxEntries:    viper.GetInt("CACHE_MAX_ENTRIES"),
			PurgeInterval: viper.GetDuration("CACHE_PURGE_INTERVAL"),
		},
		Report: ReportConfig{
			DefaultLimit:      viper.GetInt("REPORT_DEFAULT_LIMIT"),
			DefaultThreshold:  viper.GetInt("REPORT_DEFAULT_THRESHOLD"),
			DefaultWindowDays: viper.GetInt("REPORT_DEFAULT_WINDOW_DAYS"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the process listing every missing or invalid setting.
func validateConfig() {
	if problems := problems(AppConfig); len(problems) > 0 {
		log.Fatalf("invalid configuration: %v\n", problems)
	}
}

func problems(c Config) []string {
	var out []string

	if c.Server.Port == "" {
		out = append(out, "SERVER_PORT")
	}
	if c.Postgres.Host == "" {
		out = append(out, "POSTGRES_HOST")
	}
	if c.Postgres.Port == 0 {
		out = append(out, "POSTGRES_PORT")
	}
	if c.Postgres.User == "" {
		out = append(out, "POSTGRES_USER")
	}
	if c.Postgres.Password == "" {
		out = append(out, "POSTGRES_PASSWORD")
	}
	if c.Postgres.DBName == "" {
		out = append(out, "POSTGRES_DB")
	}

	if c.Cache.TTL < 0 {
		out = append(out, "CACHE_TTL (negative)")
	}
	if c.Cache.MaxEntries < 0 {
		out = append(out, "CACHE_MAX_ENTRIES (negative)")
	}
	if c.Cache.Enabled && c.Cache.TTL > 0 && c.Cache.PurgeInterval <= 0 {
		out = append(out, "CACHE_PURGE_INTERVAL (must be positive when CACHE_TTL is set)")
	}

	if c.Report.DefaultLimit <= 0 {
		out = append(out, "REPORT_DEFAULT_LIMIT (must be positive)")
	}
	if c.Report.DefaultThreshold <= 0 {
		out = append(out, "REPORT_DEFAULT_THRESHOLD (must be positive)")
	}
	if c.Report.DefaultWindowDays <= 0 {
		out = append(out, "REPORT_DEFAULT_WINDOW_DAYS (must be positive)")
	}
	return out
}
