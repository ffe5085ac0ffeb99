package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DataSourceCollections reads records from the remote collection service.
	DataSourceCollections = "collections"
	// DataSourcePgsql reads records from the PostgreSQL tables.
	DataSourcePgsql = "pgsql"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	JWTSecret     string `validate:"required,min=16"`
	DataSource    string `validate:"oneof=collections pgsql"`
	DatabaseURL   string `validate:"required_if=DataSource pgsql"`
	EnableDBCheck bool
	MigrationsDir string

	CollectionsBaseURL string `validate:"required_if=DataSource collections"`
	CollectionsToken   string

	FetchTimeout time.Duration `validate:"gt=0"`
	CacheTTL     time.Duration `validate:"gt=0"`
	CacheSize    int           `validate:"gt=0"`

	// CacheWarmSchedule is a cron expression; empty disables warming.
	CacheWarmSchedule string
	CacheWarmScopes   []string

	ReportingLocation *time.Location `validate:"required"`
	FinancePolicyFile string

	// ServiceTokenHash is the bcrypt hash of the token internal collaborators send.
	ServiceTokenHash string
	// RefreshRateLimit uses the limiter format, e.g. "5-M".
	RefreshRateLimit string `validate:"required"`

	PosthogAPIKey   string
	PosthogEndpoint string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("DATA_SOURCE", DataSourceCollections)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_DIR", "file://migrations")
	v.SetDefault("COLLECTIONS_BASE_URL", "")
	v.SetDefault("COLLECTIONS_TOKEN", "")
	v.SetDefault("FETCH_TIMEOUT", "10s")
	v.SetDefault("CACHE_TTL", "2m")
	v.SetDefault("CACHE_SIZE", 256)
	v.SetDefault("CACHE_WARM_SCHEDULE", "")
	v.SetDefault("CACHE_WARM_SCOPES", "all")
	v.SetDefault("REPORTING_TIMEZONE", "Europe/Zurich")
	v.SetDefault("FINANCE_POLICY_FILE", "")
	v.SetDefault("SERVICE_TOKEN_HASH", "")
	v.SetDefault("REFRESH_RATE_LIMIT", "5-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		DataSource:         strings.ToLower(strings.TrimSpace(v.GetString("DATA_SOURCE"))),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsDir:      v.GetString("MIGRATIONS_DIR"),
		CollectionsBaseURL: strings.TrimRight(v.GetString("COLLECTIONS_BASE_URL"), "/"),
		CollectionsToken:   v.GetString("COLLECTIONS_TOKEN"),
		CacheSize:          v.GetInt("CACHE_SIZE"),
		CacheWarmSchedule:  strings.TrimSpace(v.GetString("CACHE_WARM_SCHEDULE")),
		CacheWarmScopes:    splitList(v.GetString("CACHE_WARM_SCOPES")),
		FinancePolicyFile:  v.GetString("FINANCE_POLICY_FILE"),
		ServiceTokenHash:   v.GetString("SERVICE_TOKEN_HASH"),
		RefreshRateLimit:   v.GetString("REFRESH_RATE_LIMIT"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:    v.GetString("POSTHOG_ENDPOINT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	cfg.FetchTimeout = durationOrDefault(v, "FETCH_TIMEOUT", 10*time.Second)
	cfg.CacheTTL = durationOrDefault(v, "CACHE_TTL", 2*time.Minute)

	tz := v.GetString("REPORTING_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORTING_TIMEZONE %q: %w", tz, err)
	}
	cfg.ReportingLocation = loc

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DataSource == DataSourceCollections && cfg.CollectionsToken == "" {
		log.Println("Warning: COLLECTIONS_TOKEN not set. Requests to the collection service will be anonymous.")
	}
	if cfg.ServiceTokenHash == "" {
		log.Println("Warning: SERVICE_TOKEN_HASH not set. Internal cache invalidation endpoint is disabled.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// durationOrDefault parses a duration key, falling back with a warning like the rest of the config.
func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
