package console

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.Screen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 40)

	term := NewTerminal(screen)
	t.Cleanup(term.Close)
	return term, screen
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want rune
		ok   bool
	}{
		{"rune a", runeEvent('a'), 'a', true},
		{"space", runeEvent(' '), shooter.KeyFire, true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), shooter.KeyLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), shooter.KeyRight, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), shooter.KeyQuit, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), shooter.KeyQuit, true},
		{"unmapped", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translateKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresentWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t)

	frame := core.NewScreen(4, 2)
	frame.DrawText(0, 0, "ab")
	frame.SetCell(3, 1, 'E', core.ColorRed)
	term.Present(frame)

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'a', mainc)
	mainc, _, _, _ = screen.GetContent(1, 0)
	assert.Equal(t, 'b', mainc)

	mainc, _, style, _ := screen.GetContent(3, 1)
	assert.Equal(t, 'E', mainc)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(core.ColorRed.ANSI()), fg)
}

func TestStyleForDefault(t *testing.T) {
	assert.Equal(t, tcell.StyleDefault, styleFor(core.ColorDefault))
}

func TestKeysAreBufferedInOrder(t *testing.T) {
	term, _ := newSimTerminal(t)
	assert.False(t, term.HasPendingKey())

	term.events <- runeEvent('d')
	term.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	term.events <- tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone)

	require.True(t, term.HasPendingKey())
	assert.Equal(t, 'd', term.ReadKey())
	require.True(t, term.HasPendingKey())
	assert.Equal(t, shooter.KeyLeft, term.ReadKey())
	assert.False(t, term.HasPendingKey(), "unmapped keys are dropped")
	assert.False(t, term.Interrupted())
}

func TestCtrlCInterrupts(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.True(t, term.HasPendingKey())
	assert.Equal(t, shooter.KeyQuit, term.ReadKey())
	assert.True(t, term.Interrupted())
}

func TestCtrlCSurvivesFullQueue(t *testing.T) {
	term, _ := newSimTerminal(t)
	for term.keys.Push(shooter.KeyFire) {
	}

	term.events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.True(t, term.HasPendingKey())
	assert.Equal(t, shooter.KeyQuit, term.ReadKey(), "ctrl+c is read before queued keys")
	assert.Equal(t, shooter.KeyFire, term.ReadKey())
}

func newTestGame() *shooter.Game {
	return shooter.NewWithConfig(shooter.ModeClassic, config.DefaultShooterConfig())
}

func TestRunLeavesAfterGameOver(t *testing.T) {
	term, screen := newSimTerminal(t)
	term.keys.Push(shooter.KeyQuit)

	var finished []core.GameState
	err := Run(context.Background(), term, newTestGame(), Options{
		Runtime: core.RuntimeConfig{TickRate: 1000, Seed: 3},
		OnGameOver: func(state core.GameState) {
			finished = append(finished, state)
			term.events <- runeEvent('x')
		},
	})

	require.NoError(t, err)
	require.Len(t, finished, 1)
	assert.True(t, finished[0].GameOver)
	assert.False(t, finished[0].Won)

	// The final frame carries the loss banner
	var banner []rune
	for x := 0; x < 62; x++ {
		mainc, _, _, _ := screen.GetContent(x, 0)
		banner = append(banner, mainc)
	}
	assert.Contains(t, string(banner), "GAME OVER")
}

func TestRunRestartsOnR(t *testing.T) {
	term, _ := newSimTerminal(t)
	term.keys.Push(shooter.KeyQuit)

	games := 0
	err := Run(context.Background(), term, newTestGame(), Options{
		Runtime: core.RuntimeConfig{TickRate: 1000, Seed: 3},
		OnGameOver: func(core.GameState) {
			games++
			if games == 1 {
				term.events <- runeEvent('r')
				term.events <- runeEvent(shooter.KeyQuit)
				return
			}
			term.events <- runeEvent('x')
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, games)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	term, _ := newSimTerminal(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Run(ctx, term, newTestGame(), Options{
		Runtime:    core.RuntimeConfig{TickRate: 20, Seed: 3},
		OnGameOver: func(core.GameState) { called = true },
	})

	require.NoError(t, err)
	assert.False(t, called)
}

func TestRunIgnoresPlayKeysAfterGameOver(t *testing.T) {
	term, screen := newSimTerminal(t)
	term.keys.Push(shooter.KeyQuit)

	games := 0
	err := Run(context.Background(), term, newTestGame(), Options{
		Runtime: core.RuntimeConfig{TickRate: 1000, Seed: 3},
		OnGameOver: func(core.GameState) {
			games++
			term.events <- runeEvent(shooter.KeyFire)
			term.events <- runeEvent(shooter.KeyLeft)
			term.events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
			if games == 1 {
				term.events <- runeEvent('r')
				term.events <- runeEvent(shooter.KeyQuit) // ends the second game
				return
			}
			term.events <- runeEvent('x')
		},
	})

	require.NoError(t, err)
	// Fire and movement are skipped after both games; r restarts and x leaves.
	assert.Equal(t, 2, games)
	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.NotEqual(t, ' ', mainc, "the final frame stays on screen")
}
