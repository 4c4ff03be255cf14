package tui

import (
	"fmt"
	"strings"

	"github.com/diegolorenzo12/foxpoker/solitaire"
)

const cellWidth = 4

// RenderBoard draws a snapshot: stock, waste and foundations on the first
// line, then the tableau columns top to bottom. Pile labels match the codes
// accepted by the move command.
func RenderBoard(state solitaire.GameState) string {
	var b strings.Builder

	b.WriteString(LabelStyle.Render("s "))
	if state.Stock.Empty() {
		b.WriteString(emptySlot())
	} else {
		b.WriteString(FaceDownStyle.Render(pad("##")))
	}
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%-3d", state.Stock.Len())))

	b.WriteString(LabelStyle.Render(" w "))
	b.WriteString(topCard(state.Waste))

	for i, f := range state.Foundations {
		b.WriteString(LabelStyle.Render(fmt.Sprintf(" f%d ", i)))
		b.WriteString(topCard(f))
	}
	b.WriteString("\n\n")

	for i := range state.Tableau {
		b.WriteString(LabelStyle.Render(pad(fmt.Sprintf("t%d", i))))
	}
	b.WriteString("\n")

	height := 0
	for _, col := range state.Tableau {
		height = max(height, col.Len())
	}
	for row := 0; row < max(height, 1); row++ {
		var line strings.Builder
		for _, col := range state.Tableau {
			card, ok := col.At(row)
			switch {
			case !ok && row == 0:
				line.WriteString(emptySlot())
			case !ok:
				line.WriteString(pad(""))
			default:
				line.WriteString(renderCard(card))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCard renders one card padded to a cell
func renderCard(card solitaire.Card) string {
	if !card.FaceUp {
		return FaceDownStyle.Render(pad("##"))
	}
	if card.Color() == solitaire.Red {
		return RedCardStyle.Render(pad(card.String()))
	}
	return BlackCardStyle.Render(pad(card.String()))
}

func topCard(p solitaire.Pile) string {
	card, ok := p.Top()
	if !ok {
		return emptySlot()
	}
	return renderCard(card)
}

func emptySlot() string {
	return EmptySlotStyle.Render(pad("[]"))
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}

// FormatCards formats cards with colours, e.g. for log lines
func FormatCards(cards []solitaire.Card) string {
	formatted := make([]string, 0, len(cards))
	for _, card := range cards {
		if card.Color() == solitaire.Red {
			formatted = append(formatted, RedCardStyle.Render(card.String()))
		} else {
			formatted = append(formatted, BlackCardStyle.Render(card.String()))
		}
	}
	return strings.Join(formatted, " ")
}
