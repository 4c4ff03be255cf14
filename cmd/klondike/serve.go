package main

import (
	"context"
	"fmt"
	"time"

	"github.com/diegolorenzo12/foxpoker/cmd/klondike/shared"
	"github.com/diegolorenzo12/foxpoker/internal/server"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Config   string `kong:"short='c',default='klondike.hcl',help='Path to HCL configuration file'"`
	Addr     string `kong:"short='a',help='Server address host:port (overrides config)'"`
	LogLevel string `kong:"short='l',help='Log level (overrides config)'"`
	Debug    bool   `kong:"help='Enable debug logging and card set checks after every move'"`
}

func (c *ServeCmd) Run() error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	logger, err := shared.SetupLogger(cfg.Server.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	scoring := scoringFrom(cfg)
	s := server.NewServer(addr, logger,
		server.WithScoring(scoring),
		server.WithIntegrityChecks(c.Debug),
	)

	logger.Info("Starting Klondike server",
		"addr", addr,
		"foundation", scoring.Foundation,
		"undo", scoring.Undo)

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- s.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Stop(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
