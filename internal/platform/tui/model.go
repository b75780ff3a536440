package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/loop"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store   *storage.Store // Nil disables score saving
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Player  string // Recorded with saved scores

	// Embedded models report BackToMenu instead of quitting the program
	// when the player leaves a finished game.
	Embedded bool
}

// Model is the Bubble Tea model for running the shooter.
// Keys are queued as they arrive and consumed one per tick by the driver.
type Model struct {
	driver *loop.Driver
	sink   *frameSink
	keys   *core.KeyQueue
	keyMap GameKeyMap
	opts   Options
	logger *log.Logger

	runID      string
	width      int // Terminal size, 0 until the first WindowSizeMsg
	height     int
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sink := &frameSink{}
	keys := core.NewKeyQueue(0)
	driver := loop.New(game, sink, keys,
		loop.WithRuntime(opts.Runtime),
		loop.WithLogger(logger),
	)

	return Model{
		driver: driver,
		sink:   sink,
		keys:   keys,
		keyMap: DefaultGameKeyMap(),
		opts:   opts,
		logger: logger,
		runID:  uuid.NewString(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.driver.Runtime().TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues game keys while playing. Once the game is over, the
// restart key starts a new run and any key other than movement or fire
// leaves, so a held fire key cannot close the final frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.ForceQuit) {
		m.saveScore()
		m.quitting = true
		m.driver.Close()
		return m, tea.Quit
	}

	if m.driver.Terminated() {
		switch {
		case key.Matches(msg, m.keyMap.Restart):
			m.restart()
			return m, tickCmd(m.driver.Runtime().TickInterval())
		case m.keyMap.IsPlayKey(msg):
			return m, nil
		}
		return m.leave()
	}

	if r, ok := m.keyMap.RuneFor(msg); ok {
		if !m.keys.Push(r) {
			m.logger.Debug("key dropped, queue full", "key", string(r))
		}
	}
	return m, nil
}

// handleTick runs one driver tick. Ticking stops once the game is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.driver.Terminated() {
		return m, nil
	}

	m.driver.Tick()
	if m.driver.Terminated() {
		m.driver.Render()
		m.saveScore()
		return m, nil
	}

	return m, tickCmd(m.driver.Runtime().TickInterval())
}

func (m *Model) restart() {
	m.driver.Restart(0)
	m.keys.Reset()
	m.runID = uuid.NewString()
	m.scoreSaved = false
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.driver.Close()
	if m.opts.Embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScore records the finished run once. Storage errors are logged and
// otherwise ignored.
func (m *Model) saveScore() {
	state := m.driver.GameState()
	if m.scoreSaved || !state.GameOver || state.Score <= 0 || m.opts.Store == nil {
		return
	}
	m.scoreSaved = true

	_, err := m.opts.Store.SaveScore(storage.ScoreRecord{
		RunID:  m.runID,
		GameID: m.driver.Game().ID(),
		Player: m.opts.Player,
		Score:  state.Score,
		Kills:  state.Kills,
		Wave:   state.Wave,
		Level:  state.Level,
		Won:    state.Won,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "run", m.runID, "score", state.Score)
}

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.driver.Game().ScreenSize()
	if m.width > 0 && (m.width < w || m.height < h) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h, m.width, m.height)
	}

	if m.sink.view == "" {
		m.driver.Render()
	}

	var b strings.Builder
	b.WriteString(m.sink.view)
	if m.driver.Terminated() && (m.height == 0 || m.height > h) {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Press R to play again, Q or Enter to exit"))
	}
	return b.String()
}

// IsQuitting returns true if the player left the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded model wants to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.driver.GameState()
}

// RunID returns the identifier the current run's score is saved under.
func (m Model) RunID() string {
	return m.runID
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
