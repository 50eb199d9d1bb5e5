package bootstrap

import "time"

// Shutdown
const (
	// ShutdownTimeout bounds how long in-flight requests get to finish
	ShutdownTimeout = 10 * time.Second
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting inventory service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for store initialization
const (
	LogMsgStoreInitialized = "Inventory store initialized"
	LogMsgCacheEnabled     = "Inventory document cache enabled"
)

// Error messages for store initialization
const (
	ErrMsgUnknownBackend  = "unknown store backend"
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrateDatabase = "failed to migrate database"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
