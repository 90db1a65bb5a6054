package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequireProviderKeys  bool
	RequireCustomSecret  bool
	RequireSecureCookies bool
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {},
		Test:        {},
		CI: {
			RequireCustomSecret: true,
		},
		Production: {
			RequireProviderKeys:  true,
			RequireCustomSecret:  true,
			RequireSecureCookies: true,
		},
	}

	validate = validator.New()
)

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			problems = append(problems, ValidationError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q rule", fe.Tag()),
			}.Error())
		}
	}

	if !strings.HasPrefix(cfg.DatabaseURL, "sqlite://") &&
		!strings.HasPrefix(cfg.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		problems = append(problems, ValidationError{Field: "DatabaseURL", Message: "unsupported database scheme"}.Error())
	}

	reqs := requirements[cfg.Env]
	if reqs.RequireProviderKeys {
		if cfg.YelpAPIKey == "" {
			problems = append(problems, "YELP_API_KEY is required")
		}
		if cfg.SpoonacularAPIKey == "" {
			problems = append(problems, "SPOONACULAR_API_KEY is required")
		}
	}
	if reqs.RequireCustomSecret && cfg.SessionSecret == DefaultSessionSecret {
		problems = append(problems, "SESSION_SECRET must be changed from the development default")
	}
	if reqs.RequireSecureCookies && !cfg.CookieSecure {
		problems = append(problems, "COOKIE_SECURE must be enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}
