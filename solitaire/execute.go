package solitaire

// Execute applies move to state and returns the resulting snapshot. state is
// never modified, and piles the move does not touch are shared with the result.
//
// Execute does not consult the validator. A move it cannot carry out (no
// cards, unknown pile, foundation to foundation, a source with nothing to give)
// returns state unchanged.
func Execute(state GameState, move Move) GameState {
	switch m := move.(type) {
	case DrawStock:
		return drawStock(state)
	case Transfer:
		return transfer(state, m)
	case *Transfer:
		if m == nil {
			return state
		}
		return transfer(state, *m)
	case RevealCard:
		return reveal(state, m)
	default:
		return state
	}
}

func drawStock(state GameState) GameState {
	if stock, card, ok := state.Stock.Pop(); ok {
		state.Stock = stock
		state.Waste = state.Waste.Push(card.Up())
		return state
	}

	if state.Waste.Empty() {
		return state
	}

	recycled := make([]Card, state.Waste.Len())
	for i, c := range state.Waste.cards {
		recycled[len(recycled)-1-i] = c.Down()
	}
	state.Stock = Pile{cards: recycled}
	state.Waste = Pile{}
	return state
}

func transfer(state GameState, t Transfer) GameState {
	if len(t.Cards) == 0 || !t.From.Valid() || !t.To.Valid() {
		return state
	}
	if t.Kind() == MoveInvalid || t.From == t.To {
		return state
	}

	src, _ := state.Pile(t.From)
	var remaining Pile
	switch t.From.Kind {
	case Waste, Foundation:
		p, _, ok := src.Pop()
		if !ok {
			return state
		}
		remaining = p
	case Tableau:
		if t.FromIndex < 0 || t.FromIndex >= src.Len() {
			return state
		}
		remaining = src.Truncate(t.FromIndex).revealTop()
	}

	dst, _ := state.Pile(t.To)
	next := state.withPile(t.From, remaining)
	return next.withPile(t.To, dst.Push(t.Cards...))
}

func reveal(state GameState, r RevealCard) GameState {
	id := TableauPile(r.Tableau)
	if !id.Valid() {
		return state
	}
	pile := state.Tableau[r.Tableau]
	card, ok := pile.At(r.Index)
	if !ok || card.FaceUp {
		return state
	}
	state.Tableau[r.Tableau] = pile.WithCard(r.Index, card.Up())
	return state
}
