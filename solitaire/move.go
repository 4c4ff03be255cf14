package solitaire

import "fmt"

// MoveKind classifies a move
type MoveKind uint8

const (
	MoveInvalid MoveKind = iota
	StockToWaste
	WasteToTableau
	WasteToFoundation
	TableauToTableau
	TableauToFoundation
	FoundationToTableau
	Reveal
)

func (k MoveKind) String() string {
	switch k {
	case StockToWaste:
		return "stock-to-waste"
	case WasteToTableau:
		return "waste-to-tableau"
	case WasteToFoundation:
		return "waste-to-foundation"
	case TableauToTableau:
		return "tableau-to-tableau"
	case TableauToFoundation:
		return "tableau-to-foundation"
	case FoundationToTableau:
		return "foundation-to-tableau"
	case Reveal:
		return "reveal-card"
	default:
		return "invalid"
	}
}

// Move is a request to change the game state. The concrete types are
// DrawStock, Transfer and RevealCard.
type Move interface {
	Kind() MoveKind
	String() string
	isMove()
}

// DrawStock turns the top stock card onto the waste, or recycles the waste
// into the stock when the stock is empty.
type DrawStock struct{}

func (DrawStock) Kind() MoveKind { return StockToWaste }
func (DrawStock) String() string { return "draw" }
func (DrawStock) isMove()        {}

// Transfer moves Cards from one pile to another. FromIndex is the position of
// the first moved card in the source pile; ToIndex is the length of the
// destination before the move.
type Transfer struct {
	From      PileID
	FromIndex int
	To        PileID
	ToIndex   int
	Cards     []Card
}

// Kind derives the move kind from the source and destination piles
func (t Transfer) Kind() MoveKind {
	switch {
	case t.From.Kind == Waste && t.To.Kind == Tableau:
		return WasteToTableau
	case t.From.Kind == Waste && t.To.Kind == Foundation:
		return WasteToFoundation
	case t.From.Kind == Tableau && t.To.Kind == Tableau:
		return TableauToTableau
	case t.From.Kind == Tableau && t.To.Kind == Foundation:
		return TableauToFoundation
	case t.From.Kind == Foundation && t.To.Kind == Tableau:
		return FoundationToTableau
	default:
		return MoveInvalid
	}
}

func (t Transfer) String() string {
	if len(t.Cards) == 0 {
		return fmt.Sprintf("%s -> %s", t.From, t.To)
	}
	if len(t.Cards) == 1 {
		return fmt.Sprintf("%s %s -> %s", t.Cards[0], t.From, t.To)
	}
	return fmt.Sprintf("%s..%s %s -> %s", t.Cards[0], t.Cards[len(t.Cards)-1], t.From, t.To)
}

func (Transfer) isMove() {}

// RevealCard turns a face-down tableau card face-up
type RevealCard struct {
	Tableau int
	Index   int
}

func (RevealCard) Kind() MoveKind { return Reveal }

func (r RevealCard) String() string {
	return fmt.Sprintf("reveal %s[%d]", TableauPile(r.Tableau), r.Index)
}

func (RevealCard) isMove() {}

// NewTransfer builds a Transfer whose cards are read from the source pile in
// state. Waste and foundation sources always give their top card, so fromIndex
// is only consulted for tableau sources. The boolean is false when the source
// has nothing to give.
func NewTransfer(state GameState, from PileID, fromIndex int, to PileID) (Transfer, bool) {
	src, ok := state.Pile(from)
	if !ok || src.Empty() {
		return Transfer{}, false
	}
	dst, ok := state.Pile(to)
	if !ok {
		return Transfer{}, false
	}

	if from.Kind != Tableau {
		fromIndex = src.Len() - 1
	}
	cards := src.From(fromIndex)
	if len(cards) == 0 {
		return Transfer{}, false
	}

	return Transfer{
		From:      from,
		FromIndex: fromIndex,
		To:        to,
		ToIndex:   dst.Len(),
		Cards:     cards,
	}, true
}
