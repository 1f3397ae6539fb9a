package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      string

	// Upstream provider
	FrankfurterURL     string
	FrankfurterTimeout time.Duration
	FrankfurterRPS     float64
	FrankfurterRetries int

	// Response cache. An empty RedisURL selects the in-memory store.
	RedisURL string
	CacheTTL time.Duration

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string

	// Dashboard defaults
	DefaultBase    string
	DefaultSymbols []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRANKFURTER_URL", "https://api.frankfurter.dev/v1")
	viper.SetDefault("FRANKFURTER_TIMEOUT", "10s")
	viper.SetDefault("FRANKFURTER_RPS", 5.0)
	viper.SetDefault("FRANKFURTER_RETRIES", 2)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CACHE_TTL", "1h")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DEFAULT_BASE", "EUR")
	viper.SetDefault("DEFAULT_SYMBOLS", "USD,CAD")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	cfg.FrankfurterURL = viper.GetString("FRANKFURTER_URL")
	cfg.FrankfurterTimeout = durationOr("FRANKFURTER_TIMEOUT", 10*time.Second)
	cfg.FrankfurterRPS = viper.GetFloat64("FRANKFURTER_RPS")
	if cfg.FrankfurterRPS <= 0 {
		log.Printf("Warning: Invalid value for FRANKFURTER_RPS (%v). Defaulting to 5.\n", cfg.FrankfurterRPS)
		cfg.FrankfurterRPS = 5
	}
	cfg.FrankfurterRetries = viper.GetInt("FRANKFURTER_RETRIES")
	if cfg.FrankfurterRetries < 0 {
		cfg.FrankfurterRetries = 0
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.CacheTTL = durationOr("CACHE_TTL", time.Hour)

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.DefaultBase = strings.ToUpper(strings.TrimSpace(viper.GetString("DEFAULT_BASE")))
	cfg.DefaultSymbols = splitList(strings.ToUpper(viper.GetString("DEFAULT_SYMBOLS")))
	if cfg.DefaultBase == "" || len(cfg.DefaultSymbols) == 0 {
		log.Println("Warning: DEFAULT_BASE or DEFAULT_SYMBOLS empty. Defaulting to EUR with USD,CAD.")
		cfg.DefaultBase = "EUR"
		cfg.DefaultSymbols = []string{"USD", "CAD"}
	}

	return cfg, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
