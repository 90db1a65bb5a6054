package config

import (
	"os"
	"strings"
)

// Environment is the deployment stage the server runs in
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment reads the stage from ENV. CI=true always wins.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch Environment(strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether e runs with production requirements,
// release-mode gin and no .env file.
func (e Environment) IsProduction() bool {
	return e == Production
}
