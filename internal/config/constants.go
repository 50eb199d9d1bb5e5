package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvStoreBackend      = "STORE_BACKEND"
	EnvDataFile          = "DATA_FILE"
	EnvDocumentName      = "DOCUMENT_NAME"
	EnvStoreCacheTTL     = "STORE_CACHE_TTL"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvMaxRequestBytes   = "MAX_REQUEST_BYTES"
)

// Store backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "inventario"
	DefaultVersion           = "dev"
	DefaultStoreBackend      = BackendFile
	DefaultDataFile          = "inv.json"
	DefaultDocumentName      = "default"
	DefaultStoreCacheTTL     = 0
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "inventario"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultMaxRequestBytes   = 1 << 20
)
