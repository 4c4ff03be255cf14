package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/diegolorenzo12/foxpoker/cmd/klondike/shared"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/internal/tui"
)

// PlayCmd runs the terminal game
type PlayCmd struct {
	Seed    *int64 `kong:"help='Deal seed (random when omitted)'"`
	Config  string `kong:"short='c',default='klondike.hcl',help='Path to HCL configuration file'"`
	LogFile string `kong:"default='klondike.log',help='File the game logs to'"`
	Debug   bool   `kong:"help='Enable debug logging and card set checks after every move'"`
	NoColor bool   `kong:"help='Render without colours'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := shared.SetupFileLogger(c.LogFile, cfg.Server.LogLevel, c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.NewSeed()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Starting game", "seed", seed)

	return tui.Run(tui.Config{
		Seed:            seed,
		Scoring:         scoringFrom(cfg),
		IntegrityChecks: c.Debug,
		Logger:          logger,
	})
}
