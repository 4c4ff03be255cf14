package solitaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTableau(t *testing.T) {
	t.Parallel()

	var state GameState
	state.Tableau[1] = NewPile(down(Clubs, Two), up(Spades, Nine))
	state.Tableau[2] = NewPile(down(Hearts, Nine))

	tests := []struct {
		name string
		to   int
		card Card
		want error
	}{
		{"king onto empty column", 0, up(Spades, King), nil},
		{"queen onto empty column", 0, up(Hearts, Queen), ErrNotKing},
		{"red eight on black nine", 1, up(Hearts, Eight), nil},
		{"red eight of diamonds on black nine", 1, up(Diamonds, Eight), nil},
		{"black eight on black nine", 1, up(Clubs, Eight), ErrWrongColor},
		{"red seven on black nine", 1, up(Hearts, Seven), ErrWrongRank},
		{"red ten on black nine", 1, up(Hearts, Ten), ErrWrongRank},
		{"face-down card", 1, down(Hearts, Eight), ErrFaceDown},
		{"onto face-down top", 2, up(Spades, Eight), ErrCoveredTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := Transfer{From: WastePile(), To: TableauPile(tt.to), Cards: []Card{tt.card}}
			err := Validate(state, move)
			if tt.want == nil {
				assert.NoError(t, err)
				assert.True(t, IsValidMove(state, move))
			} else {
				assert.ErrorIs(t, err, tt.want)
				assert.False(t, IsValidMove(state, move))
			}
		})
	}
}

func TestValidateFoundationSequence(t *testing.T) {
	t.Parallel()

	var state GameState
	toF0 := func(c Card) Transfer {
		return Transfer{From: WastePile(), To: FoundationPile(0), Cards: []Card{c}}
	}

	assert.False(t, IsValidMove(state, toF0(up(Hearts, Two))))
	assert.ErrorIs(t, Validate(state, toF0(up(Hearts, Two))), ErrNotAce)

	ace := toF0(up(Hearts, Ace))
	assert.True(t, IsValidMove(state, ace))
	state = Execute(state, ace)

	assert.True(t, IsValidMove(state, toF0(up(Hearts, Two))))
	state = Execute(state, toF0(up(Hearts, Two)))

	assert.ErrorIs(t, Validate(state, toF0(up(Clubs, Three))), ErrWrongSuit)
	assert.ErrorIs(t, Validate(state, toF0(up(Hearts, Four))), ErrWrongRank)
	assert.True(t, IsValidMove(state, toF0(up(Hearts, Three))))
}

func TestValidateFoundationScenario(t *testing.T) {
	t.Parallel()

	var state GameState
	state.Waste = NewPile(up(Clubs, Two), up(Hearts, Two), up(Hearts, Ace))

	move := func(c Card) Transfer {
		return Transfer{From: WastePile(), FromIndex: state.Waste.Len() - 1, To: FoundationPile(0), Cards: []Card{c}}
	}

	assert.False(t, IsValidMove(state, move(up(Hearts, Two))))
	assert.True(t, IsValidMove(state, move(up(Hearts, Ace))))
	state = Execute(state, move(up(Hearts, Ace)))
	assert.True(t, IsValidMove(state, move(up(Hearts, Two))))
	state = Execute(state, move(up(Hearts, Two)))
	assert.False(t, IsValidMove(state, move(up(Clubs, Two))))
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	var state GameState
	state.Foundations[0] = NewPile(up(Hearts, Ace))
	state.Tableau[0] = NewPile(up(Spades, Two))

	tests := []struct {
		name string
		move Move
		want error
	}{
		{"nil move", nil, ErrUnsupportedMove},
		{"nil transfer pointer", (*Transfer)(nil), ErrUnsupportedMove},
		{"no cards", Transfer{From: WastePile(), To: TableauPile(0)}, ErrNoCards},
		{
			"foundation to foundation",
			Transfer{From: FoundationPile(0), To: FoundationPile(1), Cards: []Card{up(Hearts, Ace)}},
			ErrFoundationToFoundation,
		},
		{
			"out of range tableau",
			Transfer{From: WastePile(), To: TableauPile(7), Cards: []Card{up(Spades, King)}},
			ErrBadPile,
		},
		{
			"out of range foundation",
			Transfer{From: WastePile(), To: FoundationPile(-1), Cards: []Card{up(Spades, Ace)}},
			ErrBadPile,
		},
		{
			"two cards to foundation",
			Transfer{From: TableauPile(0), To: FoundationPile(1), Cards: []Card{up(Spades, Ace), up(Hearts, Two)}},
			ErrTooManyCards,
		},
		{
			"face-down card to foundation",
			Transfer{From: TableauPile(0), To: FoundationPile(1), Cards: []Card{down(Spades, Ace)}},
			ErrFaceDown,
		},
		{
			"to waste",
			Transfer{From: TableauPile(0), To: WastePile(), Cards: []Card{up(Spades, Two)}},
			ErrUnsupportedMove,
		},
		{
			"from stock",
			Transfer{From: StockPile(), To: TableauPile(1), Cards: []Card{up(Spades, King)}},
			ErrUnsupportedMove,
		},
		{
			"onto itself",
			Transfer{From: TableauPile(0), To: TableauPile(0), Cards: []Card{up(Spades, Two)}},
			ErrUnsupportedMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(state, tt.move), tt.want)
			assert.False(t, IsValidMove(state, tt.move))
		})
	}
}

func TestValidateStructuralMoves(t *testing.T) {
	t.Parallel()

	var empty GameState
	assert.True(t, IsValidMove(empty, DrawStock{}))
	assert.True(t, IsValidMove(empty, RevealCard{Tableau: 3, Index: 0}))
}

func TestTableauAlternation(t *testing.T) {
	t.Parallel()

	// A card goes onto a face-up top iff it is the other colour and one lower
	for _, topSuit := range Suits {
		for topRank := Ace; topRank <= King; topRank++ {
			var state GameState
			state.Tableau[0] = NewPile(up(topSuit, topRank))
			for _, suit := range Suits {
				for rank := Ace; rank <= King; rank++ {
					card := up(suit, rank)
					want := suit.Color() != topSuit.Color() && rank+1 == topRank
					move := Transfer{From: WastePile(), To: TableauPile(0), Cards: []Card{card}}
					assert.Equal(t, want, IsValidMove(state, move), "%s onto %s", card, up(topSuit, topRank))
				}
			}
		}
	}
}
