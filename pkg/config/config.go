package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// GoogleClientID is the OAuth client ID whose tokens we accept; it is the
	// expected audience of every bearer token.
	GoogleClientID string

	// RatesAPIURL is the external exchange-rate feed (base USD).
	RatesAPIURL string

	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. The datastore URL and the Google client ID are required; a
// process without them cannot serve a single request, so their absence is an
// error the caller treats as fatal.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("RATES_API_URL", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		GoogleClientID: viper.GetString("GOOGLE_CLIENT_ID"),
		RatesAPIURL:    viper.GetString("RATES_API_URL"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}
	if cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID environment variable is required")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
