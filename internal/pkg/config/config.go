package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds application configuration, loaded from the environment.
type Config struct {
	// SpannerDatabase is the full database path:
	// projects/<p>/instances/<i>/databases/<db>
	SpannerDatabase string `envconfig:"spanner_database" default:"projects/test-project/instances/dev-instance/databases/inventory-db"`

	HTTPPort string `envconfig:"http_port" default:"8080"`

	LogLevel string `envconfig:"log_level" default:"info"`

	// FamilyDeletePolicy controls deletion of referenced families:
	// "restrict" rejects, "detach" clears product references in the
	// same atomic batch.
	FamilyDeletePolicy string `envconfig:"family_delete_policy" default:"restrict"`
}

// Load reads configuration from INVENTORY_* environment variables.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("inventory", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	return cfg, nil
}
