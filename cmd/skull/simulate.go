package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Anko59/Skull/cmd/skull/shared"
	"github.com/Anko59/Skull/internal/simulator"
)

// SimulateCmd runs batches of self-play games
type SimulateCmd struct {
	Config      string   `kong:"help='Path to an HCL simulation config file'"`
	Games       int      `kong:"default='0',help='Number of games to play (overrides config)'"`
	Seats       []string `kong:"help='Seat names in order (overrides config)'"`
	Seed        *int64   `kong:"help='Deterministic base seed (optional)'"`
	Concurrency int      `kong:"default='0',help='Concurrent games (overrides config)'"`
	Debug       bool     `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := simulator.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Games = c.Games
	}
	if len(c.Seats) > 0 {
		cfg.Seats = c.Seats
	}
	if c.Concurrency > 0 {
		cfg.Concurrency = c.Concurrency
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
		logger.Info("using deterministic seed", "seed", cfg.Seed)
	} else {
		cfg.Seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", cfg.Seed)
	}

	sim := simulator.New(cfg, logger, nil)
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Print(stats.Summary())
	return nil
}
