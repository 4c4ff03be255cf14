package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// RandBot plays a uniformly random legal move, skipping foundation-to-tableau
// moves so it keeps making progress
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("random")}
}

func (r *RandBot) Name() string { return "random" }

func (r *RandBot) MakeDecision(_ solitaire.GameState, moves []solitaire.Move) (Decision, bool) {
	candidates := make([]solitaire.Move, 0, len(moves))
	for _, m := range moves {
		if m.Kind() != solitaire.FoundationToTableau {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return Decision{}, false
	}

	move := candidates[r.rng.IntN(len(candidates))]
	return Decision{Move: move, Reasoning: "rand-bot random move"}, true
}
