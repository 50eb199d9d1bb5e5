package config

import (
	"errors"
	"fmt"
	"strings"
)

// RequiredPostgresVars lists the variables that must be non-empty when the
// postgres backend is selected
var RequiredPostgresVars = []string{
	EnvDBUser,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

// Validate checks the loaded configuration for values the service cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch c.StoreBackend {
	case BackendFile:
		if strings.TrimSpace(c.DataFile) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty for the %s backend", EnvDataFile, BackendFile))
		}
	case BackendPostgres:
		if missing := c.missingPostgresVars(); len(missing) > 0 {
			errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
		}
		if strings.TrimSpace(c.DocumentName) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty for the %s backend", EnvDocumentName, BackendPostgres))
		}
		if c.DBMaxConns < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", EnvDBMaxConns, c.DBMaxConns))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown %s %q (expected %s or %s)", EnvStoreBackend, c.StoreBackend, BackendFile, BackendPostgres))
	}

	if c.StoreCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", EnvStoreCacheTTL))
	}
	if c.MaxRequestBytes < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvMaxRequestBytes, c.MaxRequestBytes))
	}

	return errors.Join(errs...)
}

func (c *Config) missingPostgresVars() []string {
	values := map[string]string{
		EnvDBUser: c.DBUser,
		EnvDBHost: c.DBHost,
		EnvDBPort: c.DBPort,
		EnvDBName: c.DBName,
	}
	var missing []string
	for _, key := range RequiredPostgresVars {
		if strings.TrimSpace(values[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Warnings reports settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string
	if c.StoreBackend == BackendPostgres && c.DBPassword == DefaultDBPassword && c.Environment != DefaultEnvironment {
		warnings = append(warnings, "DB_PASSWORD is using the default value outside of dev")
	}
	if c.StoreBackend == BackendFile && c.StoreCacheTTL > 0 {
		warnings = append(warnings, "STORE_CACHE_TTL is set for the file backend; edits made to the file by hand are not seen until the entry expires")
	}
	return warnings
}
