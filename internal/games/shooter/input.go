package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Key bindings of the console game.
const (
	KeyLeft  = 'a'
	KeyRight = 'd'
	KeyFire  = ' '
	KeyQuit  = 'q'
)

// ActionForKey maps a raw key to an action. Unbound keys map to ActionNone.
func ActionForKey(r rune) core.Action {
	switch r {
	case KeyLeft:
		return core.ActionLeft
	case KeyRight:
		return core.ActionRight
	case KeyFire:
		return core.ActionFire
	case KeyQuit:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// ApplyInput applies the actions of one tick to the world.
// Quit ends the game at once with a loss, whatever else is going on.
func ApplyInput(w *World, r Rules, in core.InputFrame) {
	if w.Status.Terminal() {
		return
	}
	if in.Has(core.ActionQuit) {
		w.Status = StatusLost
		return
	}

	dx := 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	w.Player.Pos.X = core.Clamp(w.Player.Pos.X+dx, r.MinX(), r.MaxX())
	// No fire-rate limit: every press spawns a shot.
	if in.Has(core.ActionFire) {
		w.PlayerShots = append(w.PlayerShots, w.Player.Pos.Add(0, -1))
	}
}
