package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"campus-market/internal/accountService"
	"campus-market/internal/collectionService"
	"campus-market/internal/config"
	"campus-market/internal/listingService"
	"campus-market/internal/messageService"
	"campus-market/internal/repository"
	"campus-market/internal/server"
	"campus-market/utils"
)

func main() {
	cfg := config.Load()

	catalog, accounts, messages, cleanup, err := buildStores(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create upload directory: %v\n", err)
		os.Exit(1)
	}

	accountSvc := account.NewAccountService(accounts, cfg.JWTSecret, cfg.JWTExpiry)

	router := server.SetupRouter(server.Services{
		Listings:    listing.NewListingService(catalog, accounts),
		Collections: collection.NewCollectionService(accounts, catalog),
		Accounts:    accountSvc,
		Messages:    messaging.NewMessageService(messages, accounts),
		Verifier:    accountSvc,
		UploadDir:   cfg.UploadDir,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStores wires Mongo-backed stores when MONGO_URI is set and falls back
// to the in-memory repo otherwise, which is enough for local development.
func buildStores(cfg *config.Config) (repository.CatalogStore, repository.AccountStore, repository.MessageStore, func(), error) {
	if cfg.MongoURI == "" {
		utils.Info("No MONGO_URI set, using in-memory storage", nil)
		repo := repository.NewMemoryRepo()
		return repo, repo, repo, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := repository.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	repo := repository.NewMongoRepo(client, cfg.MongoDB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, nil, nil, err
	}

	utils.Info("Connected to MongoDB", map[string]any{"db": cfg.MongoDB})

	cleanup := func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return repo, repo, repo, cleanup, nil
}
