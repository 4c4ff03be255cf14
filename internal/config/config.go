package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete klondike configuration
type Config struct {
	Server     ServerSettings
	Scoring    ScoringSettings
	Simulation SimulationSettings
}

// ServerSettings contains WebSocket server configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// ScoringSettings holds the score deltas a session applies
type ScoringSettings struct {
	Foundation          *int `hcl:"foundation,optional"`
	FoundationToTableau *int `hcl:"foundation_to_tableau,optional"`
	Reveal              *int `hcl:"reveal,optional"`
	Undo                *int `hcl:"undo,optional"`
}

// SimulationSettings holds defaults for batch simulations
type SimulationSettings struct {
	Games    int    `hcl:"games,optional"`
	Workers  int    `hcl:"workers,optional"`
	MaxMoves int    `hcl:"max_moves,optional"`
	Strategy string `hcl:"strategy,optional"`
}

// Scoring defaults
const (
	DefaultFoundationScore          = 10
	DefaultFoundationToTableauScore = -5
	DefaultRevealScore              = 5
	DefaultUndoScore                = -2
)

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	return decode(file.Body)
}

// Parse decodes configuration from HCL source held in memory
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

// fileConfig mirrors Config with every block optional
type fileConfig struct {
	Server     *ServerSettings     `hcl:"server,block"`
	Scoring    *ScoringSettings    `hcl:"scoring,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

func decode(body hcl.Body) (*Config, error) {
	var raw fileConfig
	diags := gohcl.DecodeBody(body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if raw.Server != nil {
		cfg.Server = *raw.Server
	}
	if raw.Scoring != nil {
		cfg.Scoring = *raw.Scoring
	}
	if raw.Simulation != nil {
		cfg.Simulation = *raw.Simulation
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}

	if c.Scoring.Foundation == nil {
		c.Scoring.Foundation = intPtr(DefaultFoundationScore)
	}
	if c.Scoring.FoundationToTableau == nil {
		c.Scoring.FoundationToTableau = intPtr(DefaultFoundationToTableauScore)
	}
	if c.Scoring.Reveal == nil {
		c.Scoring.Reveal = intPtr(DefaultRevealScore)
	}
	if c.Scoring.Undo == nil {
		c.Scoring.Undo = intPtr(DefaultUndoScore)
	}

	if c.Simulation.Games == 0 {
		c.Simulation.Games = 1000
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 4
	}
	if c.Simulation.MaxMoves == 0 {
		c.Simulation.MaxMoves = 1000
	}
	if c.Simulation.Strategy == "" {
		c.Simulation.Strategy = "greedy"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Server.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.Scoring.Undo != nil && *c.Scoring.Undo > 0 {
		return fmt.Errorf("undo score must not be positive: %d", *c.Scoring.Undo)
	}

	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation games must be positive: %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 1 || c.Simulation.Workers > 256 {
		return fmt.Errorf("simulation workers must be between 1 and 256: %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxMoves < 1 {
		return fmt.Errorf("simulation max moves must be positive: %d", c.Simulation.MaxMoves)
	}

	validStrategies := map[string]bool{"greedy": true, "random": true}
	if !validStrategies[c.Simulation.Strategy] {
		return fmt.Errorf("invalid strategy: %s", c.Simulation.Strategy)
	}

	return nil
}

// ServerAddress returns the full listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

func intPtr(v int) *int {
	return &v
}
