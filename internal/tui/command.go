package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// CommandKind identifies a player command
type CommandKind int

const (
	CmdDraw CommandKind = iota
	CmdMove
	CmdReveal
	CmdUndo
	CmdHint
	CmdNew
	CmdHelp
	CmdQuit
)

// Command is a parsed line of player input
type Command struct {
	Kind CommandKind

	// CmdMove; FromIndex is -1 for the top card
	From      solitaire.PileID
	FromIndex int
	To        solitaire.PileID

	// CmdReveal
	Tableau int
	Index   int

	// CmdNew; nil deals a random game
	Seed *int64
}

// ErrUnknownCommand is returned for input that is not a command
var ErrUnknownCommand = errors.New("unknown command")

// HelpText lists the commands
const HelpText = `d, draw               draw from the stock (recycles the waste when empty)
m <from> <to>         move cards, e.g. "m w t3", "m t2:4 t5", "m t0 f1"
r <t> <i>             reveal the face-down card at tableau t, position i
u, undo               take back the last move
h, hint               suggest a move
n, new [seed]         deal a new game
q, quit               leave
piles: s stock, w waste, f0-f3 foundations, t0-t6 tableau (t2:4 = from card 4 down)`

// ParseCommand parses a line of input
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	name, args := fields[0], fields[1:]

	switch name {
	case "d", "draw":
		return Command{Kind: CmdDraw}, nil

	case "m", "move", "mv":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("move needs <from> <to>, got %d arguments", len(args))
		}
		from, index, err := parsePile(args[0], true)
		if err != nil {
			return Command{}, err
		}
		to, _, err := parsePile(args[1], false)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdMove, From: from, FromIndex: index, To: to}, nil

	case "r", "reveal":
		if len(args) != 2 {
			return Command{}, fmt.Errorf("reveal needs <tableau> <index>")
		}
		tableau, err := strconv.Atoi(strings.TrimPrefix(args[0], "t"))
		if err != nil {
			return Command{}, fmt.Errorf("bad tableau %q", args[0])
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("bad index %q", args[1])
		}
		return Command{Kind: CmdReveal, Tableau: tableau, Index: index}, nil

	case "u", "undo":
		return Command{Kind: CmdUndo}, nil

	case "h", "hint":
		return Command{Kind: CmdHint}, nil

	case "n", "new":
		cmd := Command{Kind: CmdNew}
		if len(args) > 0 {
			seed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return Command{}, fmt.Errorf("bad seed %q", args[0])
			}
			cmd.Seed = &seed
		}
		return cmd, nil

	case "?", "help":
		return Command{Kind: CmdHelp}, nil

	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil

	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

// parsePile parses a pile code. A source may carry ":index" on tableau codes.
func parsePile(code string, source bool) (solitaire.PileID, int, error) {
	code, indexPart, hasIndex := strings.Cut(code, ":")
	if hasIndex && (!source || !strings.HasPrefix(code, "t")) {
		return solitaire.PileID{}, 0, fmt.Errorf("index only allowed on a tableau source: %q", code)
	}

	var id solitaire.PileID
	switch {
	case code == "s":
		id = solitaire.StockPile()
	case code == "w":
		id = solitaire.WastePile()
	case len(code) == 2 && (code[0] == 'f' || code[0] == 't'):
		n, err := strconv.Atoi(code[1:])
		if err != nil {
			return solitaire.PileID{}, 0, fmt.Errorf("bad pile %q", code)
		}
		if code[0] == 'f' {
			id = solitaire.FoundationPile(n)
		} else {
			id = solitaire.TableauPile(n)
		}
	default:
		return solitaire.PileID{}, 0, fmt.Errorf("bad pile %q", code)
	}
	if !id.Valid() {
		return solitaire.PileID{}, 0, fmt.Errorf("no such pile %q", code)
	}

	index := -1
	if hasIndex {
		n, err := strconv.Atoi(indexPart)
		if err != nil || n < 0 {
			return solitaire.PileID{}, 0, fmt.Errorf("bad index %q", indexPart)
		}
		index = n
	}
	return id, index, nil
}
