package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/internal/tui"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// DealCmd prints the opening layout of a seeded deal
type DealCmd struct {
	Seed    *int64 `kong:"help='Deal seed (random when omitted)'"`
	NoColor bool   `kong:"help='Render without colours'"`
}

func (c *DealCmd) Run() error {
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.NewSeed()
	if c.Seed != nil {
		seed = *c.Seed
	}

	state := solitaire.NewGame(randutil.New(seed))
	if err := solitaire.CheckIntegrity(state); err != nil {
		return err
	}

	fmt.Println(tui.HeaderStyle.Render(fmt.Sprintf(" Deal %d ", seed)))
	fmt.Println()
	fmt.Println(tui.RenderBoard(state))
	fmt.Printf("\n%d legal opening moves\n", len(solitaire.LegalMoves(state)))
	return nil
}
