package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultSessionSecret is only acceptable outside production and CI.
const DefaultSessionSecret = "platepal-development-secret"

// Config holds all configuration for the application
type Config struct {
	Env Environment `ignored:"true"`

	// Server configuration
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"5000" validate:"required,numeric"`

	// Database configuration. sqlite://<path> or postgres://...
	DatabaseURL string `envconfig:"DATABASE_URL" default:"sqlite://site.db" validate:"required"`

	// Redis configuration, optional. Sessions fall back to the database without it.
	RedisURL      string `envconfig:"REDIS_URL"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// Session configuration
	SessionSecret string        `envconfig:"SESSION_SECRET" default:"platepal-development-secret" validate:"required,min=16"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h" validate:"gt=0"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE"`
	BcryptCost    int           `envconfig:"BCRYPT_COST" default:"10" validate:"min=4,max=31"`

	// Search providers
	YelpAPIKey         string        `envconfig:"YELP_API_KEY"`
	YelpBaseURL        string        `envconfig:"YELP_BASE_URL" default:"https://api.yelp.com/v3/businesses/search" validate:"required,url"`
	SpoonacularAPIKey  string        `envconfig:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL string        `envconfig:"SPOONACULAR_BASE_URL" default:"https://api.spoonacular.com/recipes" validate:"required,url"`
	ProviderTimeout    time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"15s" validate:"gt=0"`

	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5000"`
}

// secretFields maps an environment variable to the secret file that may provide it
var secretFields = map[string]func(*Config) *string{
	"DATABASE_URL":        func(c *Config) *string { return &c.DatabaseURL },
	"REDIS_PASSWORD":      func(c *Config) *string { return &c.RedisPassword },
	"SESSION_SECRET":      func(c *Config) *string { return &c.SessionSecret },
	"YELP_API_KEY":        func(c *Config) *string { return &c.YelpAPIKey },
	"SPOONACULAR_API_KEY": func(c *Config) *string { return &c.SpoonacularAPIKey },
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if !env.IsProduction() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: couldn't load .env file: %v", err)
		}
	}

	cfg := &Config{Env: env}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Docker secrets fill anything not set explicitly in the environment
	for key, field := range secretFields {
		if os.Getenv(key) != "" {
			continue
		}
		if value := readSecret(strings.ToLower(key)); value != "" {
			*field(cfg) = value
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
