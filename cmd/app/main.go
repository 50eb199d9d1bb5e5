package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/InventarioBot_Go/docs"
	"github.com/osse101/InventarioBot_Go/internal/bootstrap"
	"github.com/osse101/InventarioBot_Go/internal/concurrency"
	"github.com/osse101/InventarioBot_Go/internal/config"
	"github.com/osse101/InventarioBot_Go/internal/inventory"
	"github.com/osse101/InventarioBot_Go/internal/server"
)

// @title Inventario API
// @version 1.0
// @description Per-user item inventories for chat bots.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx := context.Background()
	storage, err := bootstrap.InitStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	svc := inventory.NewService(storage.Store, inventory.NewEngine(), concurrency.NewLockManager(), cfg.StoreKey())

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, svc)

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Storage: storage,
	})
}
