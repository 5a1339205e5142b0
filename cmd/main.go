package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"sportsdeck/internal/services"
	"sportsdeck/internal/shared"
	"sportsdeck/internal/state"
	"sportsdeck/internal/storage"
)

func main() {
	logger := shared.NewLogger(nil)
	ctx := context.Background()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	// storage is fail-soft end to end; an unreachable database degrades to
	// an in-memory session instead of refusing to start
	var store storage.Store
	if db, err := storage.NewDatabase(config.Database.Path); err != nil {
		logger.Warn("falling back to in-memory storage", "error", err)
		store = storage.NewMemoryStore()
	} else {
		storage.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
		if sqlStore, err := storage.NewSQLiteStore(db, logger); err != nil {
			logger.Warn("falling back to in-memory storage", "error", err)
			store = storage.NewMemoryStore()
		} else {
			store = sqlStore
		}
	}

	auth := services.NewAuthService(config.API.AuthBaseURL, nil)
	sports := services.NewSportsService(config.API.SportsBaseURL, nil, config.API.RateLimit)

	app := state.NewApp(store, auth, logger)
	app.Restore(ctx)

	runner := NewRunner(RunnerOpts{
		Config: config,
		App:    app,
		Sports: sports,
		Logger: logger,
	})

	cmd := &cli.Command{
		Name:     "sportsdeck",
		Usage:    "Browse league fixtures and keep favourites, online or off",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) || errors.Is(err, shared.ErrAuthFailed) {
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
