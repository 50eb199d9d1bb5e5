package bootstrap

import (
	"context"
	"log/slog"
)

// stoppable is satisfied by *server.Server
type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server  stoppable
	Storage *Storage
}

// GracefulShutdown stops the HTTP server first so no new request can start a
// load-mutate-save cycle, then closes the storage. Errors are logged and do
// not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
