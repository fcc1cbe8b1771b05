package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AkhtemKurtiev/feed-the-python/config"
	"github.com/AkhtemKurtiev/feed-the-python/game"
	"github.com/AkhtemKurtiev/feed-the-python/logger"
	"github.com/AkhtemKurtiev/feed-the-python/ui"
	"github.com/AkhtemKurtiev/feed-the-python/ui/term"
	"github.com/AkhtemKurtiev/feed-the-python/ui/web"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "feed-the-python: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.NewGame(grid, cfg.Policy(), game.NewRand(cfg.Seed), log)
	log.Info("starting",
		zap.String("frontend", cfg.Frontend),
		zap.Int("tps", cfg.TicksPerSecond),
		zap.Uint64("seed", cfg.Seed),
	)

	switch cfg.Frontend {
	case config.FrontendWindow:
		err = runWindow(ctx, g, cfg)
	case config.FrontendTerminal:
		err = runTerminal(ctx, g, cfg)
	case config.FrontendWeb:
		err = runWeb(ctx, g, cfg, log)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		log.Error("game stopped with error", zap.Error(err))
	}
	return err
}

func runWindow(ctx context.Context, g *game.Game, cfg config.Config) error {
	w := ui.OpenWindow(g.Grid, cfg.CellSize, cfg.TicksPerSecond)
	defer w.Close()
	return g.Run(ctx, w, w, w)
}

func runTerminal(ctx context.Context, g *game.Game, cfg config.Config) error {
	s, err := term.Open(g.Grid)
	if err != nil {
		return err
	}
	defer s.Close()

	p := game.NewTickerPacer(cfg.TickInterval())
	defer p.Stop()
	return g.Run(ctx, s, s, p)
}

func runWeb(ctx context.Context, g *game.Game, cfg config.Config, log *zap.Logger) error {
	srv := web.NewServer(g.Grid, cfg.CellSize, log)
	errc := srv.Start(cfg.Addr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	failed := make(chan error, 1)
	go func() {
		if err := <-errc; err != nil {
			failed <- err
			cancel()
		}
	}()

	p := game.NewTickerPacer(cfg.TickInterval())
	defer p.Stop()
	runErr := g.Run(ctx, srv, srv, p)

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("web shutdown", zap.Error(err))
	}

	select {
	case err := <-failed:
		return err
	default:
		return runErr
	}
}
