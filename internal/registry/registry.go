// Package registry maps shooter mode IDs to game factories. Each mode
// registers itself from init, and the CLI, menu and SSH server look modes
// up here instead of importing them directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what a platform drives: fixed-tick simulation plus rendering
// into a core.Screen. Implementations hold no terminal or timing code.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string
	Title() string

	// Reset starts a fresh run. It is also called on restart after game over.
	Reset(cfg core.RuntimeConfig)

	// ScreenSize is the frame the game draws into, in cells.
	ScreenSize() (width, height int)

	ActionForKey(r rune) core.Action
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID     string
	Title  string
	Width  int // Frame size reported by the mode at registration
	Height int
}

// Factory builds a new, not yet reset game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // Sorted by ID
)

func find(id string) (int, bool) {
	return slices.BinarySearchFunc(entries, id, func(e entry, id string) int {
		return strings.Compare(e.info.ID, id)
	})
}

// Register adds a mode. It panics on an empty ID, a nil factory or a
// duplicate ID, all of which are programming errors in an init func.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	g := f()
	w, h := g.ScreenSize()
	e := entry{
		info:    GameInfo{ID: id, Title: g.Title(), Width: w, Height: h},
		factory: f,
	}

	mu.Lock()
	defer mu.Unlock()
	i, found := find(id)
	if found {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries = slices.Insert(entries, i, e)
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Info returns the description of one mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, found := find(id)
	if !found {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, found := find(id)
	var f Factory
	if found {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
