package bootstrap

import (
	"log/slog"

	"github.com/osse101/InventarioBot_Go/internal/config"
	"github.com/osse101/InventarioBot_Go/internal/logger"
)

// SetupLogger installs the slog default logger from the app configuration
// and logs the startup banner. Source locations are only added in dev.
func SetupLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"store_backend", cfg.StoreBackend,
		"data_file", cfg.DataFile,
		"document", cfg.DocumentName,
		"cache_ttl", cfg.StoreCacheTTL,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	for _, warning := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
