package solitaire

import (
	"testing"

	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Parallel()

	var state GameState
	state.Waste = NewPile(up(Hearts, Ace))
	state.Tableau[0] = NewPile(down(Clubs, Nine), up(Spades, King))
	state.Tableau[1] = NewPile(up(Diamonds, Five))
	state.Tableau[2] = NewPile(up(Clubs, Six))

	moves := LegalMoves(state)
	require.NotEmpty(t, moves)

	// Foundation moves sort first, draw last
	assert.Equal(t, WasteToFoundation, moves[0].Kind())
	assert.Equal(t, StockToWaste, moves[len(moves)-1].Kind())

	var kinds []MoveKind
	for _, m := range moves {
		kinds = append(kinds, m.Kind())
		assert.True(t, IsValidMove(state, m), "%s should be valid", m)
	}
	assert.Contains(t, kinds, TableauToTableau)

	// The ace can go to any of the four empty foundations
	n := 0
	for _, m := range moves {
		if m.Kind() == WasteToFoundation {
			n++
		}
	}
	assert.Equal(t, 4, n)
}

func TestLegalMovesNoDrawWhenExhausted(t *testing.T) {
	t.Parallel()

	var state GameState
	state.Tableau[0] = NewPile(up(Spades, Four))
	for _, m := range LegalMoves(state) {
		assert.NotEqual(t, StockToWaste, m.Kind())
	}
}

// TestRandomPlayInvariants plays random legal moves and checks the
// invariants that must hold in every reachable state.
func TestRandomPlayInvariants(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		rng := randutil.New(seed)
		state := newDealtGame(t, seed)

		for step := 0; step < 400; step++ {
			moves := LegalMoves(state)
			if len(moves) == 0 {
				break
			}
			move := moves[rng.IntN(len(moves))]
			prev := state
			state = Execute(state, move)

			require.NoError(t, CheckIntegrity(state), "seed %d step %d move %s", seed, step, move)
			require.NoError(t, CheckIntegrity(prev), "previous snapshot changed")
			assertFoundationsOrdered(t, state)
			assertTableauTopsFaceUp(t, state)
		}
	}
}

func assertFoundationsOrdered(t *testing.T, state GameState) {
	t.Helper()
	for i, f := range state.Foundations {
		for j, c := range f.Cards() {
			require.Equal(t, Rank(j+1), c.Rank, "foundation %d position %d", i, j)
			if j > 0 {
				prev, _ := f.At(j - 1)
				require.Equal(t, prev.Suit, c.Suit, "foundation %d mixes suits", i)
			}
		}
	}
}

func assertTableauTopsFaceUp(t *testing.T, state GameState) {
	t.Helper()
	for i, p := range state.Tableau {
		if top, ok := p.Top(); ok {
			require.True(t, top.FaceUp, "tableau %d top is face-down", i)
		}
	}
}
