// Package main is the entry point for textrogue.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/samdwyer/textrogue/internal/config"
	"github.com/samdwyer/textrogue/internal/game"
	"github.com/samdwyer/textrogue/internal/gamedata"
	"github.com/samdwyer/textrogue/internal/logger"
	"github.com/samdwyer/textrogue/internal/telemetry"
	"github.com/samdwyer/textrogue/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "textrogue: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Version = version
	slog.SetDefault(logger.New(logCfg, os.Stderr))

	ctx := context.Background()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			Endpoint: cfg.TelemetryEndpoint,
			Headers:  telemetry.HoneycombHeaders(cfg.HoneycombAPIKey, cfg.HoneycombDataset),
		})
		if err != nil {
			// The game still works without observability
			slog.Warn("telemetry setup failed", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	console := ui.NewConsole(os.Stdin, os.Stdout, ui.Options{Lang: cfg.Lang, Color: cfg.Color})
	session := game.New(catalog, gamedata.NewSampler(cfg.Seed), console, console)

	_, err = session.Run(ctx)
	if errors.Is(err, game.ErrInputClosed) || errors.Is(err, ui.ErrInterrupted) {
		return nil
	}
	return err
}

func loadCatalog(path string) (*gamedata.Catalog, error) {
	if path == "" {
		return gamedata.LoadCatalog()
	}
	slog.Info("loading catalog from file", "path", path)
	return gamedata.LoadCatalogFile(path)
}
