package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// GameKeyMap defines the in-game key bindings.
// Bindings translate to the console keys the game understands.
type GameKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Fire      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Restart   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Quit, k.Restart, k.ForceQuit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "shoot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "give up"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
	}
}

// RuneFor translates a key message to the game key it stands for.
// Returns false for keys the game does not use.
func (k GameKeyMap) RuneFor(msg tea.KeyMsg) (rune, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return shooter.KeyLeft, true
	case key.Matches(msg, k.Right):
		return shooter.KeyRight, true
	case key.Matches(msg, k.Fire):
		return shooter.KeyFire, true
	case key.Matches(msg, k.Quit):
		return shooter.KeyQuit, true
	}
	return 0, false
}

// IsPlayKey reports whether msg moves or fires. These keys are ignored
// once the game is over.
func (k GameKeyMap) IsPlayKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Left, k.Right, k.Fire)
}

// MenuKeyMap defines the key bindings for the mode menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scores, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
