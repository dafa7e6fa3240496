// Package main provides the telnet game server: every connecting client
// gets its own engine session over the shared disc definition.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"

	"go.uber.org/zap"

	"github.com/brr-dev/zenith/internal/config"
	"github.com/brr-dev/zenith/internal/frontend/telnet"
	"github.com/brr-dev/zenith/internal/frontend/terminal"
	"github.com/brr-dev/zenith/internal/game/content"
	"github.com/brr-dev/zenith/internal/game/engine"
	"github.com/brr-dev/zenith/internal/observability"
	"github.com/brr-dev/zenith/internal/scripting"
	"github.com/brr-dev/zenith/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/telnetd.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting zenith telnetd",
		zap.String("telnet_addr", cfg.Telnet.Addr()),
		zap.String("disc", cfg.Game.Disc),
	)

	handler := telnet.SessionHandlerFunc(func(ctx context.Context, conn *telnet.Conn) error {
		return runSession(ctx, cfg, conn, logger)
	})

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", telnet.NewAcceptor(cfg.Telnet, handler, logger))

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// runSession builds an isolated game session for one client. Each session
// owns its scripting VMs and world state; players cannot observe each
// other.
func runSession(ctx context.Context, cfg config.Config, conn *telnet.Conn, logger *zap.Logger) error {
	scripts := scripting.NewManager(logger)
	defer scripts.Close()

	registry := content.NewRegistry()
	disc, err := engine.LoadDisc(cfg.Game.Disc, engine.DiscDeps{
		Behaviors: registry.Build,
		Items:     registry.BuildItem,
		Scripts:   scripts,
	})
	if err != nil {
		return err
	}

	console := terminal.New(conn, conn, terminal.NewRenderer(terminal.DefaultStyles()))
	e := engine.New(console, logger)
	e.AttachScripts(scripts)

	if err := e.LoadGame(ctx, disc); err != nil {
		return err
	}

	err = e.Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
