package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diegolorenzo12/foxpoker/cmd/klondike/shared"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/internal/simulator"
)

// SimulateCmd plays many deals with a bot
type SimulateCmd struct {
	Config   string        `kong:"short='c',default='klondike.hcl',help='Path to HCL configuration file'"`
	Games    int           `kong:"short='n',help='Number of games (overrides config)'"`
	Workers  int           `kong:"short='w',help='Concurrent workers (overrides config)'"`
	Seed     *int64        `kong:"help='Base seed; game n is dealt from a seed derived from it'"`
	Strategy string        `kong:"short='s',help='Bot strategy: greedy or random (overrides config)'"`
	MaxMoves int           `kong:"help='Move limit per game (overrides config)'"`
	Timeout  time.Duration `kong:"default='0s',help='Abort the run after this long (0 = no limit)'"`
	Output   string        `kong:"short='o',help='Also write the results as JSON to this file'"`
	Debug    bool          `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Games > 0 {
		cfg.Simulation.Games = c.Games
	}
	if c.Workers > 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.Strategy != "" {
		cfg.Simulation.Strategy = c.Strategy
	}
	if c.MaxMoves > 0 {
		cfg.Simulation.MaxMoves = c.MaxMoves
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := shared.SetupLogger(cfg.Server.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	seed := randutil.NewSeed()
	if c.Seed != nil {
		seed = *c.Seed
	}

	ctx := shared.SetupSignalHandler(logger)
	start := time.Now()

	stats, err := simulator.New(simulator.Config{
		Games:    cfg.Simulation.Games,
		Workers:  cfg.Simulation.Workers,
		Seed:     seed,
		Strategy: cfg.Simulation.Strategy,
		MaxMoves: cfg.Simulation.MaxMoves,
		Scoring:  scoringFrom(cfg),
		Timeout:  c.Timeout,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := simulator.PrintSummary(os.Stdout, stats, cfg.Simulation.Strategy); err != nil {
		return err
	}
	fmt.Printf("\nSeed: %d, wall time %s\n", seed, time.Since(start).Round(time.Millisecond))

	if c.Output != "" {
		if err := simulator.WriteReport(c.Output, stats, cfg.Simulation.Strategy, seed); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Output)
	}
	return nil
}
