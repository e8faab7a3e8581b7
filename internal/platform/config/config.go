package config

import (
	"fmt"
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

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single-owner deployment: the one identity allowed to log in and the
	// bcrypt hash of its password.
	OwnerID           string
	OwnerPasswordHash string

	// UseDBValidatedInsert routes single transaction creates through the
	// store-side validated insert function instead of the client-side
	// check-then-insert path.
	UseDBValidatedInsert bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// CORSAllowOrigins is a comma-separated list of allowed origins.
	// Empty means all origins are allowed (development default).
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "pledger-backend")
	viper.SetDefault("OWNER_ID", "owner")
	viper.SetDefault("OWNER_PASSWORD_HASH", "")
	viper.SetDefault("USE_DB_VALIDATED_INSERT", true)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		OwnerID:              viper.GetString("OWNER_ID"),
		OwnerPasswordHash:    viper.GetString("OWNER_PASSWORD_HASH"),
		UseDBValidatedInsert: viper.GetBool("USE_DB_VALIDATED_INSERT"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.OwnerPasswordHash == "" {
		return nil, fmt.Errorf("OWNER_PASSWORD_HASH is required")
	}

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION %q: %w", expiryStr, err)
	}
	cfg.JWTExpiryDuration = expiry

	if origins := viper.GetString("CORS_ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
			}
		}
	}

	return cfg, nil
}
