// Package main provides the console escape game binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/escapegame/internal/config"
	"github.com/cory-johannsen/escapegame/internal/frontend/console"
	"github.com/cory-johannsen/escapegame/internal/frontend/handlers"
	"github.com/cory-johannsen/escapegame/internal/game/command"
	"github.com/cory-johannsen/escapegame/internal/game/engine"
	"github.com/cory-johannsen/escapegame/internal/game/session"
	"github.com/cory-johannsen/escapegame/internal/game/world"
	"github.com/cory-johannsen/escapegame/internal/observability"
	"github.com/cory-johannsen/escapegame/internal/storage/postgres"
	"github.com/cory-johannsen/escapegame/internal/storage/savefile"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (empty = defaults and environment)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}

	err = run(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("game ended with error", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run wires the game together and plays one session on stdin and stdout.
//
// Postcondition: Returns nil once the game is saved after quit or end of input.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening save store: %w", err)
	}
	defer closeStore()

	worldMgr, err := world.LoadFixture()
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}
	logger.Debug("world loaded", zap.Int("rooms", worldMgr.RoomCount()))

	eng := engine.New(worldMgr, engine.DefaultEffects(), logger)
	sess := session.New(worldMgr, command.DefaultClassifier(), eng, logger)
	con := console.New(os.Stdin, os.Stdout, cfg.Console)

	return handlers.NewGameHandler(con, sess, store, logger).Run(ctx)
}

// openStore builds the configured save backend and a function releasing it.
//
// Postcondition: On success the returned release function is non-nil.
func openStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (session.Store, func(), error) {
	switch cfg.Persistence.Backend {
	case config.BackendPostgres:
		dbStart := time.Now()
		if err := postgres.MigrateUp(cfg.Database.DSN()); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.Connect(ctx, cfg.Database, postgres.DefaultHealthTimeout)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("database connected",
			zap.String("host", cfg.Database.Host),
			zap.String("slot", cfg.Persistence.Slot),
			zap.Duration("elapsed", time.Since(dbStart)),
		)
		return postgres.NewSaveRepository(pool.DB(), cfg.Persistence.Slot), pool.Close, nil
	default:
		store := savefile.NewStore(cfg.Game.SaveFile)
		logger.Debug("using save file", zap.String("path", store.Path()))
		return store, func() {}, nil
	}
}
