// Package console runs a game directly on a raw terminal through tcell.
// It is the no-frills alternative to the Bubble Tea platform: the loop
// driver owns timing and the terminal only presents frames and buffers keys.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/loop"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Terminal adapts a tcell screen to core.Sink and core.KeySource.
// Events are read on a background goroutine and queued until the driver
// asks for them, so HasPendingKey never blocks.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	keys   *core.KeyQueue

	interrupted bool
	quitPending bool // ctrl+c not yet handed to the game
}

// NewTerminal wraps an initialized screen and starts polling its events.
func NewTerminal(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		keys:   core.NewKeyQueue(0),
	}
	go t.poll()
	return t
}

// Open initializes the real terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: cannot init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return NewTerminal(screen), nil
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	close(t.done)
	t.screen.Fini()
}

// Present writes every cell of the frame and shows it.
func (t *Terminal) Present(s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			t.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	t.screen.Show()
}

// styleFor maps a core color to a tcell style.
func styleFor(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}

// HasPendingKey drains queued terminal events and reports whether a game
// key is waiting.
func (t *Terminal) HasPendingKey() bool {
	t.drain()
	return t.quitPending || t.keys.HasPendingKey()
}

// ReadKey returns the oldest buffered game key. A pending ctrl+c jumps the
// queue as a quit key.
func (t *Terminal) ReadKey() rune {
	if t.quitPending {
		t.quitPending = false
		return shooter.KeyQuit
	}
	return t.keys.ReadKey()
}

// Interrupted reports whether ctrl+c was pressed.
func (t *Terminal) Interrupted() bool {
	return t.interrupted
}

func (t *Terminal) drain() {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.interrupted = true
			t.quitPending = true
			return
		}
		if r, ok := translateKey(ev); ok {
			t.keys.Push(r)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// translateKey maps a terminal key event to the rune the game reads.
// Arrow keys stand in for a/d and ctrl+c gives up the game like q.
func translateKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return shooter.KeyLeft, true
	case tcell.KeyRight:
		return shooter.KeyRight, true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return shooter.KeyQuit, true
	case tcell.KeyRune:
		return ev.Rune(), true
	}
	return 0, false
}

// isPlayKey reports whether r moves or fires.
func isPlayKey(r rune) bool {
	return r == shooter.KeyLeft || r == shooter.KeyRight || r == shooter.KeyFire
}

// waitKey blocks until a key other than movement or fire is pressed, or ctx
// is done. Held fire keys therefore do not dismiss the final frame.
func (t *Terminal) waitKey(ctx context.Context) rune {
	for {
		for t.HasPendingKey() {
			if r := t.ReadKey(); !isPlayKey(r) {
				return r
			}
		}
		select {
		case <-ctx.Done():
			return 0
		case ev := <-t.events:
			t.handle(ev)
		}
	}
}

// Options configures Run.
type Options struct {
	Logger  *log.Logger
	Runtime core.RuntimeConfig

	// OnGameOver is called once per finished run with the final state.
	OnGameOver func(state core.GameState)
}

// Run plays the game on term until the player leaves. After each game the
// final frame stays up; 'r' starts a new run and any key other than
// movement or fire returns.
func Run(ctx context.Context, term *Terminal, game registry.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	driver := loop.New(game, term, term,
		loop.WithRuntime(opts.Runtime),
		loop.WithLogger(logger),
	)
	defer driver.Close()

	for {
		if err := driver.Run(ctx); err != nil {
			return err
		}
		if ctx.Err() != nil || !driver.Terminated() {
			return nil
		}
		if opts.OnGameOver != nil {
			opts.OnGameOver(driver.GameState())
		}
		if term.Interrupted() {
			return nil
		}

		// Keys buffered during play must not dismiss the final frame.
		term.keys.Reset()
		term.quitPending = false
		if term.waitKey(ctx) != 'r' {
			return nil
		}

		seed := int64(0)
		if opts.Runtime.Seed != 0 {
			seed = driver.Runtime().Seed + 1
		}
		driver.Restart(seed)
	}
}
