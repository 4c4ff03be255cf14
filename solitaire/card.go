package solitaire

import (
	"encoding/json"
	"fmt"
)

// Suit represents a card suit
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the four suits in deck order
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the lower-case suit name used on the wire
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Color returns the colour of the suit
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color is the colour of a card, derived from its suit
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Rank is the card value, Ace (1) through King (13)
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the short rank label ("A", "2".."10", "J", "Q", "K")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Card is a single playing card. Cards are values: revealing a card produces
// a new Card stored in a new pile.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Color returns red for hearts and diamonds, black otherwise
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Up returns a face-up copy of the card
func (c Card) Up() Card {
	c.FaceUp = true
	return c
}

// Down returns a face-down copy of the card
func (c Card) Down() Card {
	c.FaceUp = false
	return c
}

// Same reports whether two cards are the same suit and rank, ignoring facing
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Valid reports whether the card has a known suit and rank
func (c Card) Valid() bool {
	return c.Suit <= Spades && c.Rank >= Ace && c.Rank <= King
}

// String returns the card label (e.g. "A♠", "10♥")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// index maps a card to 0..51, suit-major
func (c Card) index() int {
	return int(c.Suit)*13 + int(c.Rank) - 1
}

type cardJSON struct {
	Suit   string `json:"suit"`
	Value  int    `json:"value"`
	Color  string `json:"color"`
	FaceUp bool   `json:"faceUp"`
}

// MarshalJSON encodes the card with its derived colour
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Suit:   c.Suit.Name(),
		Value:  int(c.Rank),
		Color:  c.Color().String(),
		FaceUp: c.FaceUp,
	})
}

// UnmarshalJSON decodes a card; the colour field is ignored since it is derived
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	suit, err := parseSuitName(raw.Suit)
	if err != nil {
		return err
	}
	if raw.Value < int(Ace) || raw.Value > int(King) {
		return fmt.Errorf("invalid card value: %d", raw.Value)
	}

	*c = Card{Suit: suit, Rank: Rank(raw.Value), FaceUp: raw.FaceUp}
	return nil
}

func parseSuitName(name string) (Suit, error) {
	for _, s := range Suits {
		if s.Name() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid suit: %q", name)
}
