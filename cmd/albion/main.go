// Package main provides the Albion binary: a single-player terminal
// fantasy RPG with password-protected profiles saved on disk.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/albion-rpg/albion/internal/auth"
	"github.com/albion-rpg/albion/internal/config"
	"github.com/albion-rpg/albion/internal/game/dice"
	"github.com/albion-rpg/albion/internal/menu"
	"github.com/albion-rpg/albion/internal/observability"
	"github.com/albion-rpg/albion/internal/server"
	"github.com/albion-rpg/albion/internal/storage/profile"
	"github.com/albion-rpg/albion/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults and ALBION_ env")
	profilesDir := flag.String("profiles", "", "profile directory override; empty = per-OS default")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *profilesDir != "" {
		cfg.Profiles.Dir = *profilesDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	dir := cfg.Profiles.Dir
	if dir == "" {
		dir, err = profile.DefaultDir()
		if err != nil {
			logger.Fatal("resolving profile directory", zap.Error(err))
		}
	}
	store, err := profile.NewStore(dir, logger)
	if err != nil {
		logger.Fatal("opening profile directory",
			zap.String("dir", dir),
			zap.Error(err),
		)
	}
	logger.Info("profiles ready", zap.String("dir", store.Dir()))

	src := dice.NewLoggedSource(dice.NewCryptoSource(), logger)
	term := tui.New(os.Stdin, os.Stdout,
		time.Duration(cfg.Game.MessageDelaySeconds)*time.Second)
	app := menu.New(term, store, auth.NewService(store, logger), src, cfg, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("session", &server.FuncService{
		StartFn: app.Run,
		StopFn: func() {
			// final save; harmless when the session already saved
			if err := app.Shutdown(); err != nil {
				logger.Error("final save failed", zap.Error(err))
			}
		},
	})

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("session ended with error", zap.Error(err))
	}
}
