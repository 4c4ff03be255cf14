package solitaire

import "errors"

// Reasons a move is refused by Validate
var (
	ErrUnsupportedMove        = errors.New("unsupported move")
	ErrBadPile                = errors.New("no such pile")
	ErrNoCards                = errors.New("move has no cards")
	ErrFoundationToFoundation = errors.New("cannot move between foundations")
	ErrTooManyCards           = errors.New("only one card may move to a foundation")
	ErrFaceDown               = errors.New("cannot move a face-down card")
	ErrNotAce                 = errors.New("empty foundation needs an ace")
	ErrWrongSuit              = errors.New("foundation is built by suit")
	ErrWrongRank              = errors.New("card rank does not follow the top card")
	ErrNotKing                = errors.New("empty column needs a king")
	ErrCoveredTarget          = errors.New("target card is face-down")
	ErrWrongColor             = errors.New("tableau is built in alternating colours")
)

// IsValidMove reports whether move is legal in state
func IsValidMove(state GameState, move Move) bool {
	return Validate(state, move) == nil
}

// Validate returns nil if move is legal in state, or the reason it is not.
// DrawStock and RevealCard are structural actions and always pass.
func Validate(state GameState, move Move) error {
	switch m := move.(type) {
	case DrawStock, RevealCard:
		return nil
	case Transfer:
		return validateTransfer(state, m)
	case *Transfer:
		if m == nil {
			return ErrUnsupportedMove
		}
		return validateTransfer(state, *m)
	default:
		return ErrUnsupportedMove
	}
}

func validateTransfer(state GameState, t Transfer) error {
	if len(t.Cards) == 0 {
		return ErrNoCards
	}
	if !t.From.Valid() || !t.To.Valid() {
		return ErrBadPile
	}
	if t.From.Kind == Foundation && t.To.Kind == Foundation {
		return ErrFoundationToFoundation
	}
	if t.Kind() == MoveInvalid || t.From == t.To {
		return ErrUnsupportedMove
	}

	dst, _ := state.Pile(t.To)
	switch t.To.Kind {
	case Foundation:
		return acceptFoundation(dst, t.Cards)
	case Tableau:
		return acceptTableau(dst, t.Cards)
	default:
		return ErrUnsupportedMove
	}
}

func acceptFoundation(dst Pile, cards []Card) error {
	if len(cards) != 1 {
		return ErrTooManyCards
	}
	card := cards[0]
	if !card.FaceUp {
		return ErrFaceDown
	}

	top, ok := dst.Top()
	if !ok {
		if card.Rank != Ace {
			return ErrNotAce
		}
		return nil
	}
	if card.Suit != top.Suit {
		return ErrWrongSuit
	}
	if card.Rank != top.Rank+1 {
		return ErrWrongRank
	}
	return nil
}

func acceptTableau(dst Pile, cards []Card) error {
	card := cards[0]
	if !card.FaceUp {
		return ErrFaceDown
	}

	top, ok := dst.Top()
	if !ok {
		if card.Rank != King {
			return ErrNotKing
		}
		return nil
	}
	if !top.FaceUp {
		return ErrCoveredTarget
	}
	if top.Color() == card.Color() {
		return ErrWrongColor
	}
	if top.Rank != card.Rank+1 {
		return ErrWrongRank
	}
	return nil
}
