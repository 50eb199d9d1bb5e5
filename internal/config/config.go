package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Store
	StoreBackend  string
	DataFile      string
	DocumentName  string
	StoreCacheTTL time.Duration

	// Database (postgres backend only)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// HTTP
	TrustedProxies  []string
	MaxRequestBytes int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		StoreBackend:      strings.ToLower(getEnv(EnvStoreBackend, DefaultStoreBackend)),
		DataFile:          getEnv(EnvDataFile, DefaultDataFile),
		DocumentName:      getEnv(EnvDocumentName, DefaultDocumentName),
		StoreCacheTTL:     getEnvAsDuration(EnvStoreCacheTTL, DefaultStoreCacheTTL),
		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		TrustedProxies:    getEnvAsList(EnvTrustedProxies),
		MaxRequestBytes:   int64(getEnvAsInt(EnvMaxRequestBytes, DefaultMaxRequestBytes)),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses key with time.ParseDuration, or returns defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// StoreKey names the document guarded by the inventory lock: the file path
// for the file backend, the document name for postgres.
func (c *Config) StoreKey() string {
	if c.StoreBackend == BackendPostgres {
		return c.DocumentName
	}
	return c.DataFile
}
