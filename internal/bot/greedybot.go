package bot

import (
	"github.com/charmbracelet/log"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// GreedyBot plays the first move from a fixed preference order: uncover
// hidden cards, build foundations, play from the waste, then draw. It never
// takes cards back off a foundation and never shuffles face-up runs between
// columns unless that frees a card for a foundation.
type GreedyBot struct {
	logger *log.Logger
}

// NewGreedyBot creates a new GreedyBot
func NewGreedyBot(logger *log.Logger) *GreedyBot {
	return &GreedyBot{logger: logger.WithPrefix("greedy")}
}

func (g *GreedyBot) Name() string { return "greedy" }

func (g *GreedyBot) MakeDecision(state solitaire.GameState, moves []solitaire.Move) (Decision, bool) {
	var ranked []rankedMove

	for _, move := range moves {
		switch m := move.(type) {
		case solitaire.DrawStock:
			ranked = append(ranked, rankedMove{move, 6, "nothing better, draw"})

		case solitaire.Transfer:
			reveals := uncoversHidden(state, m)
			switch m.Kind() {
			case solitaire.TableauToFoundation:
				if reveals {
					ranked = append(ranked, rankedMove{move, 0, "build foundation and uncover a card"})
				} else {
					ranked = append(ranked, rankedMove{move, 1, "build foundation"})
				}
			case solitaire.WasteToFoundation:
				ranked = append(ranked, rankedMove{move, 1, "build foundation from waste"})
			case solitaire.TableauToTableau:
				switch {
				case reveals:
					ranked = append(ranked, rankedMove{move, 2, "uncover a hidden card"})
				case freesForFoundation(state, m):
					ranked = append(ranked, rankedMove{move, 4, "free a card for the foundation"})
				}
			case solitaire.WasteToTableau:
				ranked = append(ranked, rankedMove{move, 3, "play from waste"})
			}
		}
	}

	decision, ok := best(ranked)
	if ok {
		g.logger.Debug("Decision", "move", decision.Move, "reasoning", decision.Reasoning)
	}
	return decision, ok
}

// uncoversHidden reports whether the transfer leaves a face-down card on top
// of its source column, which the move will then reveal
func uncoversHidden(state solitaire.GameState, t solitaire.Transfer) bool {
	if t.From.Kind != solitaire.Tableau || t.FromIndex == 0 {
		return false
	}
	below, ok := state.Tableau[t.From.Index].At(t.FromIndex - 1)
	return ok && !below.FaceUp
}

// freesForFoundation reports whether the card left behind by a tableau move
// can go straight to a foundation
func freesForFoundation(state solitaire.GameState, t solitaire.Transfer) bool {
	if t.FromIndex == 0 {
		return false
	}
	below, ok := state.Tableau[t.From.Index].At(t.FromIndex - 1)
	if !ok || !below.FaceUp {
		return false
	}
	for i := range solitaire.NumFoundations {
		candidate := solitaire.Transfer{
			From:  t.From,
			To:    solitaire.FoundationPile(i),
			Cards: []solitaire.Card{below},
		}
		if solitaire.IsValidMove(state, candidate) {
			return true
		}
	}
	return false
}
