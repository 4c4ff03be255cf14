package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/diegolorenzo12/foxpoker/internal/game"
	"github.com/diegolorenzo12/foxpoker/internal/randutil"
	"github.com/diegolorenzo12/foxpoker/solitaire"
)

// Config configures the TUI and the games it deals
type Config struct {
	Seed            int64
	Scoring         game.Scoring
	Clock           quartz.Clock
	IntegrityChecks bool
	Logger          *log.Logger
	TestMode        bool
}

// TUIModel represents the Bubble Tea model for a game of solitaire
type TUIModel struct {
	config  Config
	session *game.Session
	logger  *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	status      string
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool // Track if viewport has been properly sized

	// Test mode
	testMode    bool
	capturedLog []string // For test assertions
}

// tickMsg refreshes the clock in the sidebar
type tickMsg time.Time

// NewTUIModel creates a new TUI model and deals the first game
func NewTUIModel(config Config) *TUIModel {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}

	// Properly sized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "draw, m w t3, m t2:4 t5, undo, hint, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &TUIModel{
		config:      config,
		logger:      config.Logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		focusedPane: 1, // Start with input focused
		testMode:    config.TestMode,
	}
	m.newGame(config.Seed)
	return m
}

// Run starts the TUI and blocks until the player quits
func Run(config Config) error {
	_, err := tea.NewProgram(NewTUIModel(config), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *TUIModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if m.Execute(input) {
					m.quitting = true
					return m, tea.Sequence(tea.ClearScreen, tea.Quit)
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd

	// Only update input if it's focused
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Execute runs one line of player input and reports whether the player quit
func (m *TUIModel) Execute(input string) bool {
	cmd, err := ParseCommand(input)
	if err != nil {
		m.setStatus(err.Error())
		return false
	}
	m.status = ""

	switch cmd.Kind {
	case CmdDraw:
		m.apply(solitaire.DrawStock{})

	case CmdMove:
		state := m.session.State()
		index := cmd.FromIndex
		if src, ok := state.Pile(cmd.From); ok && index < 0 {
			index = src.Len() - 1
		}
		move, ok := solitaire.NewTransfer(state, cmd.From, index, cmd.To)
		if !ok {
			m.setStatus(fmt.Sprintf("nothing to move from %s", cmd.From))
			return false
		}
		m.apply(move)

	case CmdReveal:
		m.apply(solitaire.RevealCard{Tableau: cmd.Tableau, Index: cmd.Index})

	case CmdUndo:
		if err := m.session.Undo(); err != nil {
			m.setStatus(err.Error())
			return false
		}
		m.AddLogEntry(fmt.Sprintf("Undo (score %d)", m.session.Score()))

	case CmdHint:
		decision, ok := m.session.Hint()
		if !ok {
			m.AddLogEntry("Hint: nothing useful to play")
			return false
		}
		m.AddLogEntry(fmt.Sprintf("Hint: %s (%s)", decision.Move, decision.Reasoning))

	case CmdNew:
		seed := randutil.NewSeed()
		if cmd.Seed != nil {
			seed = *cmd.Seed
		}
		m.newGame(seed)

	case CmdHelp:
		for _, line := range strings.Split(HelpText, "\n") {
			m.AddLogEntry(line)
		}

	case CmdQuit:
		return true
	}
	return false
}

func (m *TUIModel) newGame(seed int64) {
	m.session = game.NewSession(seed,
		game.WithClock(m.config.Clock),
		game.WithScoring(m.config.Scoring),
		game.WithLogger(m.logger),
		game.WithIntegrityChecks(m.config.IntegrityChecks),
	)
	m.AddLogEntry(fmt.Sprintf("*** New game, seed %d ***", seed))
}

func (m *TUIModel) apply(move solitaire.Move) {
	before := m.session.Score()
	if err := m.session.Apply(move); err != nil {
		if errors.Is(err, game.ErrGameOver) {
			m.setStatus("game is won; 'new' deals another")
			return
		}
		m.setStatus(err.Error())
		return
	}

	entry := describeMove(move)
	if delta := m.session.Score() - before; delta != 0 {
		entry += fmt.Sprintf(" (%+d)", delta)
	}
	m.AddLogEntry(entry)

	if m.session.Won() {
		m.AddLogEntry(fmt.Sprintf("*** You won! Score %d in %d moves, %s ***",
			m.session.Score(), m.session.Moves(), formatElapsed(m.session.Elapsed())))
	}
}

// describeMove formats a move for the game log with coloured cards
func describeMove(move solitaire.Move) string {
	t, ok := move.(solitaire.Transfer)
	if !ok || len(t.Cards) == 0 {
		return move.String()
	}
	return fmt.Sprintf("%s %s -> %s", FormatCards(t.Cards), t.From, t.To)
}

func (m *TUIModel) setStatus(status string) {
	m.status = status
	m.logger.Debug("Command failed", "status", status)
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	actionPane := actionStyle.Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 22)

	boardContent := RenderBoard(m.session.State())
	boardHeight := max(lipgloss.Height(boardContent), lipgloss.Height(sidebarContent))
	boardWidth := max(m.width-sidebarWidth-4, 1)

	boardPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Width(boardWidth).
		Height(boardHeight).
		Render(boardContent)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(boardHeight).
		Render(sidebarContent)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, sidebarPane)

	logWidth := max(m.width-2, 1)
	logHeight := max(m.height-lipgloss.Height(topRow)-actionHeight-4, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))

	if !m.initialized && logWidth > 1 && logHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(logHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, topRow, logPane, actionPane)
}

// renderSidebarPane creates the sidebar content
func (m *TUIModel) renderSidebarPane() string {
	snap := m.session.Snapshot()

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" Klondike "))
	content.WriteString("\n\n")
	fmt.Fprintf(&content, "%s %d\n", LabelStyle.Render("Score:"), snap.Score)
	fmt.Fprintf(&content, "%s %d\n", LabelStyle.Render("Moves:"), snap.Moves)
	fmt.Fprintf(&content, "%s %s\n", LabelStyle.Render("Time: "), formatElapsed(snap.Elapsed))
	fmt.Fprintf(&content, "%s %d/%d\n", LabelStyle.Render("Home: "), snap.State.FoundationCount(), solitaire.DeckSize)
	content.WriteString(InfoStyle.Render(fmt.Sprintf("seed %d", snap.Seed)))
	if snap.Won {
		content.WriteString("\n\n")
		content.WriteString(SuccessStyle.Render("*** WON ***"))
	}
	return content.String()
}

// renderActionPane renders the action input pane
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	if m.status != "" {
		content.WriteString(ErrorStyle.Render(m.status))
	} else if m.session.Won() {
		content.WriteString(SuccessStyle.Render("You won! 'new' deals another game"))
	} else {
		content.WriteString(InfoStyle.Render(fmt.Sprintf("%d legal moves", len(solitaire.LegalMoves(m.session.State())))))
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(InfoStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(InfoStyle.Render("Tab to scroll log • Enter to submit • 'help' for commands • Ctrl+C to quit"))
	}
	return content.String()
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return // Skip UI updates in test mode
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Session returns the game in progress
func (m *TUIModel) Session() *game.Session {
	return m.session
}

// Status returns the last error shown to the player, if any
func (m *TUIModel) Status() string {
	return m.status
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
