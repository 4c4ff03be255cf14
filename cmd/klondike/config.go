package main

import (
	"fmt"

	"github.com/diegolorenzo12/foxpoker/internal/config"
	"github.com/diegolorenzo12/foxpoker/internal/game"
)

// loadConfig loads and validates the HCL file; a missing file gives defaults
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// scoringFrom converts the configured deltas; defaults are already applied
func scoringFrom(cfg *config.Config) game.Scoring {
	scoring := game.DefaultScoring()
	s := cfg.Scoring
	if s.Foundation != nil {
		scoring.Foundation = *s.Foundation
	}
	if s.FoundationToTableau != nil {
		scoring.FoundationToTableau = *s.FoundationToTableau
	}
	if s.Reveal != nil {
		scoring.Reveal = *s.Reveal
	}
	if s.Undo != nil {
		scoring.Undo = *s.Undo
	}
	return scoring
}
