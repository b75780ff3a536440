package shooter

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  rune
		want core.Action
	}{
		{'a', core.ActionLeft},
		{'d', core.ActionRight},
		{' ', core.ActionFire},
		{'q', core.ActionQuit},
		{'A', core.ActionNone},
		{'x', core.ActionNone},
		{0, core.ActionNone},
	}

	for _, tt := range tests {
		if got := ActionForKey(tt.key); got != tt.want {
			t.Errorf("ActionForKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func frameOf(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestApplyInputMovesWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		startX int
		action core.Action
		wantX  int
	}{
		{"left", 30, core.ActionLeft, 29},
		{"right", 30, core.ActionRight, 31},
		{"left at wall", 1, core.ActionLeft, 1},
		{"right at wall", 58, core.ActionRight, 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRules()
			w := quietWorld(r)
			w.Player.Pos.X = tt.startX

			ApplyInput(w, r, frameOf(tt.action))

			if w.Player.Pos.X != tt.wantX {
				t.Errorf("x = %d, want %d", w.Player.Pos.X, tt.wantX)
			}
		})
	}
}

func TestApplyInputFire(t *testing.T) {
	r := testRules()
	w := quietWorld(r)

	ApplyInput(w, r, frameOf(core.ActionFire))
	ApplyInput(w, r, frameOf(core.ActionFire))

	if len(w.PlayerShots) != 2 {
		t.Fatalf("shots = %v, want two", w.PlayerShots)
	}
	for _, s := range w.PlayerShots {
		if s != core.P(30, 22) {
			t.Errorf("shot at %v, want (30,22)", s)
		}
	}
}

func TestApplyInputQuit(t *testing.T) {
	r := testRules()
	w := quietWorld(r)

	ApplyInput(w, r, frameOf(core.ActionQuit, core.ActionFire))

	if w.Status != StatusLost {
		t.Errorf("status = %v, want lost", w.Status)
	}
	if len(w.PlayerShots) != 0 {
		t.Error("quit should take effect before any other action")
	}
}

func TestApplyInputIgnoredWhenTerminal(t *testing.T) {
	r := testRules()
	w := quietWorld(r)
	w.Status = StatusWon

	ApplyInput(w, r, frameOf(core.ActionLeft, core.ActionFire))

	if w.Player.Pos.X != 30 || len(w.PlayerShots) != 0 {
		t.Error("terminal world should ignore input")
	}
}
