package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/InventarioBot_Go/internal/bootstrap"
	"github.com/osse101/InventarioBot_Go/internal/config"
	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/inventory"
)

var errBotUserPair = errors.New("-bot and -user must be given together")

func main() {
	botID := flag.String("bot", "", "bot id whose user inventory is cleared (requires -user)")
	userID := flag.String("user", "", "user id whose inventory is cleared (requires -bot)")
	flag.Parse()

	if err := run(context.Background(), *botID, *userID); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
}

// run clears the whole document, or only one bot user when both ids are set.
// The storage is always closed before returning.
func run(ctx context.Context, botID, userID string) error {
	if (botID == "") != (userID == "") {
		return errBotUserPair
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	storage, err := bootstrap.InitStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer storage.Close()

	if botID == "" {
		log.Printf("Resetting inventory document %s...\n", cfg.StoreKey())
		if err := storage.Store.Save(ctx, domain.NewDocument()); err != nil {
			return fmt.Errorf("failed to reset document: %w", err)
		}
		log.Println("✅ Inventory document reset complete!")
		return nil
	}

	svc := inventory.NewService(storage.Store, nil, nil, cfg.StoreKey())
	result, err := svc.Handle(ctx, domain.Request{
		Type:   domain.OperationClear,
		BotID:  domain.Identifier(botID),
		UserID: domain.Identifier(userID),
	})
	if err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}
	log.Printf("✅ %s\n", result.Message)
	return nil
}
