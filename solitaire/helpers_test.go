package solitaire

import (
	"testing"

	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/stretchr/testify/require"
)

func up(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, FaceUp: true}
}

func down(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// newDealtGame deals a reproducible game for seed
func newDealtGame(t *testing.T, seed int64) GameState {
	t.Helper()
	state, err := Deal(Shuffle(NewDeck(), randutil.New(seed)))
	require.NoError(t, err)
	return state
}

// fullFoundation returns a foundation holding ace through king of suit
func fullFoundation(suit Suit) Pile {
	cards := make([]Card, 0, 13)
	for r := Ace; r <= King; r++ {
		cards = append(cards, up(suit, r))
	}
	return NewPile(cards...)
}
