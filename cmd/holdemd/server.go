package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemd/internal/game"
	"github.com/lox/holdemd/internal/randutil"
	"github.com/lox/holdemd/internal/server"
)

// ServerCmd contains server configuration
type ServerCmd struct {
	Addr   string `kong:"help='Server address, overrides config'"`
	Config string `kong:"default='holdemd.hcl',help='Path to HCL config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *ServerCmd) Run() error {
	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}

	logger := setupLogger(cfg.Server.LogLevel, c.Debug)

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	table := game.NewTable(cfg.GameConfig(), logger.WithPrefix("table"), rng)
	room := server.NewRoom(table, cfg.ShowdownDelay(), quartz.NewReal(), logger)
	srv := server.NewServer(cfg.Server.Address, room, logger)

	logger.Info("Starting holdemd",
		"address", cfg.Server.Address,
		"small_blind", cfg.Table.SmallBlind,
		"big_blind", cfg.Table.BigBlind,
		"min_buy_in", cfg.Table.MinBuyIn,
		"max_buy_in", cfg.Table.MaxBuyIn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}

func setupLogger(level string, debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
		return logger
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
