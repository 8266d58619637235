// Command notes is an interactive shell over the note store.
// Each process is one interaction context with its own session.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/config"
	"github.com/and161185/notekeeper/internal/logging"
	"github.com/and161185/notekeeper/internal/migrate"
	"github.com/and161185/notekeeper/internal/repository/postgres"
	"github.com/and161185/notekeeper/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	ctx := context.Background()

	if cfg.Migrate {
		if err := migrate.Up(ctx, cfg.DSN); err != nil {
			logger.Fatal("migrate up", zap.Error(err))
		}
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	noteRepo := postgres.NewNoteRepo(db)

	// Services
	creds := service.NewCredentialService(userRepo, cfg.BcryptCost, logger)
	sessions := service.NewSessionManager(creds, logger)
	notes := service.NewNoteService(noteRepo, logger)

	sh := newShell(creds, sessions, notes, os.Stdin, os.Stdout, logger)
	if err := sh.Run(ctx); err != nil {
		logger.Error("shell", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
