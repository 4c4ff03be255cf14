package solitaire

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrInvalidDeck is returned by Deal when the deck is not exactly the 52 cards
var ErrInvalidDeck = errors.New("solitaire: invalid deck")

// Deal lays out a new game from deck, treating the last element as the top.
//
// Cards are dealt row by row: row r puts one card on each column c >= r, and
// the card that lands on column r in row r is turned face-up. Columns end up
// holding 1..7 cards with only the last one showing. The 24 cards left over
// become the stock, face-down, in their existing order.
func Deal(deck []Card) (GameState, error) {
	if err := checkDeck(deck); err != nil {
		return GameState{}, err
	}

	remaining := make([]Card, len(deck))
	copy(remaining, deck)

	var columns [NumTableau][]Card
	for row := range NumTableau {
		for col := row; col < NumTableau; col++ {
			card := remaining[len(remaining)-1].Down()
			remaining = remaining[:len(remaining)-1]
			if row == col {
				card = card.Up()
			}
			columns[col] = append(columns[col], card)
		}
	}

	var state GameState
	for i, cards := range columns {
		state.Tableau[i] = Pile{cards: cards}
	}

	for i := range remaining {
		remaining[i] = remaining[i].Down()
	}
	state.Stock = Pile{cards: remaining[:len(remaining):len(remaining)]}

	return state, nil
}

// NewGame shuffles a fresh deck with rng and deals it
func NewGame(rng *rand.Rand) GameState {
	state, err := Deal(Shuffle(NewDeck(), rng))
	if err != nil {
		// A fresh deck is always valid
		panic(err)
	}
	return state
}

func checkDeck(deck []Card) error {
	if len(deck) != DeckSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidDeck, len(deck), DeckSize)
	}
	var seen [DeckSize]bool
	for _, c := range deck {
		if !c.Valid() {
			return fmt.Errorf("%w: invalid card %v", ErrInvalidDeck, c)
		}
		if seen[c.index()] {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, c)
		}
		seen[c.index()] = true
	}
	return nil
}
