// Package main provides the local single-player game: it loads a disc
// and runs the turn loop over the controlling terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/brr-dev/zenith/internal/config"
	"github.com/brr-dev/zenith/internal/frontend/terminal"
	"github.com/brr-dev/zenith/internal/game/content"
	"github.com/brr-dev/zenith/internal/game/engine"
	"github.com/brr-dev/zenith/internal/observability"
	"github.com/brr-dev/zenith/internal/scripting"
)

// stdinReader adapts buffered stdin to the console's line reader.
type stdinReader struct {
	r *bufio.Reader
}

func (s *stdinReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line, nil
}

func main() {
	discPath := flag.String("disc", "content/demo/disc.yaml", "path to the disc file to play")
	logPath := flag.String("log", "zenith.log", "path to the session log file")
	logLevel := flag.String("log-level", "info", "minimum log level")
	flag.Parse()

	cfg := config.Default(*discPath)
	cfg.Logging.Level = *logLevel

	logger, err := observability.NewFileLogger(cfg.Logging, *logPath)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console := terminal.New(
		&stdinReader{r: bufio.NewReader(os.Stdin)},
		os.Stdout,
		terminal.NewRenderer(terminal.DefaultStyles()),
	)

	scripts := scripting.NewManager(logger)
	defer scripts.Close()

	registry := content.NewRegistry()
	disc, err := engine.LoadDisc(cfg.Game.Disc, engine.DiscDeps{
		Behaviors: registry.Build,
		Items:     registry.BuildItem,
		Scripts:   scripts,
	})
	if err != nil {
		logger.Fatal("loading disc", zap.Error(err))
	}

	e := engine.New(console, logger)
	e.AttachScripts(scripts)

	if err := e.LoadGame(ctx, disc); err != nil {
		logger.Fatal("loading game", zap.Error(err))
	}

	logger.Info("game started", zap.String("disc", cfg.Game.Disc))

	err = e.Run(ctx)
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, io.EOF):
		logger.Info("game ended")
	default:
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
