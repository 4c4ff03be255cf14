package solitaire

import (
	"testing"

	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Len(t, deck, DeckSize)

	seen := map[Card]bool{}
	for _, c := range deck {
		assert.False(t, c.FaceUp, "%s should be face-down", c)
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}

	assert.Equal(t, NewCard(Hearts, Ace), deck[0])
	assert.Equal(t, NewCard(Hearts, King), deck[12])
	assert.Equal(t, NewCard(Spades, King), deck[51])
}

func TestCardColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Red, NewCard(Hearts, Five).Color())
	assert.Equal(t, Red, NewCard(Diamonds, Five).Color())
	assert.Equal(t, Black, NewCard(Clubs, Five).Color())
	assert.Equal(t, Black, NewCard(Spades, Five).Color())
	assert.Equal(t, "10♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "K♠", NewCard(Spades, King).String())
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	t.Run("returns a permutation without touching the input", func(t *testing.T) {
		deck := NewDeck()
		original := append([]Card(nil), deck...)

		shuffled := Shuffle(deck, randutil.New(7))

		assert.Equal(t, original, deck)
		require.Len(t, shuffled, DeckSize)
		assert.ElementsMatch(t, deck, shuffled)
		assert.NotEqual(t, deck, shuffled)
	})

	t.Run("same seed gives same order", func(t *testing.T) {
		a := Shuffle(NewDeck(), randutil.New(99))
		b := Shuffle(NewDeck(), randutil.New(99))
		assert.Equal(t, a, b)
	})

	t.Run("nil rng still permutes", func(t *testing.T) {
		shuffled := Shuffle(NewDeck(), nil)
		assert.ElementsMatch(t, NewDeck(), shuffled)
	})

	t.Run("every position is reachable", func(t *testing.T) {
		rng := randutil.New(1)
		var hits [DeckSize]int
		for range 2000 {
			shuffled := Shuffle(NewDeck(), rng)
			for i, c := range shuffled {
				if c == NewCard(Hearts, Ace) {
					hits[i]++
				}
			}
		}
		for i, n := range hits {
			assert.Positive(t, n, "ace of hearts never landed at %d", i)
		}
	})
}

func TestDeal(t *testing.T) {
	t.Parallel()

	t.Run("layout", func(t *testing.T) {
		state := newDealtGame(t, 42)

		total := 0
		for col, pile := range state.Tableau {
			require.Equal(t, col+1, pile.Len(), "column %d", col)
			total += pile.Len()
			for i, c := range pile.Cards() {
				if i == pile.Len()-1 {
					assert.True(t, c.FaceUp, "top of column %d should be face-up", col)
				} else {
					assert.False(t, c.FaceUp, "column %d card %d should be face-down", col, i)
				}
			}
		}
		assert.Equal(t, 28, total)

		assert.Equal(t, 24, state.Stock.Len())
		for _, c := range state.Stock.Cards() {
			assert.False(t, c.FaceUp)
		}
		assert.True(t, state.Waste.Empty())
		for _, f := range state.Foundations {
			assert.True(t, f.Empty())
		}
		require.NoError(t, CheckIntegrity(state))
	})

	t.Run("deals from the end of the deck", func(t *testing.T) {
		deck := NewDeck()
		state, err := Deal(deck)
		require.NoError(t, err)

		// First card dealt is the last of the deck and starts column 0
		top, _ := state.Tableau[0].Top()
		assert.Equal(t, up(Spades, King), top)
		// Row 0 fills columns 0..6 with the last seven deck cards
		bottom, _ := state.Tableau[6].At(0)
		assert.Equal(t, down(Spades, Seven), bottom)
		// Stock keeps the first 24 cards in order, top is the 24th
		stockTop, _ := state.Stock.Top()
		assert.Equal(t, deck[23], stockTop)
	})

	t.Run("does not modify the deck", func(t *testing.T) {
		deck := NewDeck()
		original := append([]Card(nil), deck...)
		_, err := Deal(deck)
		require.NoError(t, err)
		assert.Equal(t, original, deck)
	})

	t.Run("rejects malformed decks", func(t *testing.T) {
		_, err := Deal(NewDeck()[:51])
		assert.ErrorIs(t, err, ErrInvalidDeck)

		dup := NewDeck()
		dup[1] = dup[0]
		_, err = Deal(dup)
		assert.ErrorIs(t, err, ErrInvalidDeck)
	})
}
