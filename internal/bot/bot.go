package bot

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// Decision is a move chosen by a bot together with why it was chosen
type Decision struct {
	Move      solitaire.Move
	Reasoning string
}

// Agent picks a move from the legal moves of a state. ok is false when the
// agent sees nothing worth playing.
type Agent interface {
	Name() string
	MakeDecision(state solitaire.GameState, moves []solitaire.Move) (Decision, bool)
}

// Strategies lists the names accepted by New
var Strategies = []string{"greedy", "random"}

// New creates the named agent
func New(name string, rng *rand.Rand, logger *log.Logger) (Agent, error) {
	switch name {
	case "greedy":
		return NewGreedyBot(logger), nil
	case "random":
		if rng == nil {
			rng = randutil.New(randutil.NewSeed())
		}
		return NewRandBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: %v)", name, Strategies)
	}
}

// rankedMove pairs a move with a priority; lower plays first
type rankedMove struct {
	move      solitaire.Move
	priority  int
	reasoning string
}

func best(ranked []rankedMove) (Decision, bool) {
	if len(ranked) == 0 {
		return Decision{}, false
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].priority < ranked[j].priority
	})
	return Decision{Move: ranked[0].move, Reasoning: ranked[0].reasoning}, true
}
