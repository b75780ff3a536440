// Package loop drives a game at a fixed tick: each tick renders the current
// state, consumes at most one pending key and advances the simulation.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// State is the driver lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver's logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithRuntime sets the tick rate and seed the game runs with.
func WithRuntime(rt core.RuntimeConfig) Option {
	return func(d *Driver) {
		d.rt = rt
	}
}

// Driver owns one game, its frame buffer and its input source.
type Driver struct {
	game   registry.Game
	sink   core.Sink
	keys   core.KeySource
	screen *core.Screen
	frame  core.InputFrame
	rt     core.RuntimeConfig
	logger *log.Logger

	state State
	ticks uint64
	last  core.GameState
}

// New creates a driver and starts a fresh game.
// A zero seed is replaced with the current time.
func New(game registry.Game, sink core.Sink, keys core.KeySource, opts ...Option) *Driver {
	d := &Driver{
		game:  game,
		sink:  sink,
		keys:  keys,
		frame: core.NewInputFrame(),
		rt:    core.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}
	d.Restart(d.rt.Seed)
	return d
}

// Restart resets the game with the given seed and resumes ticking.
func (d *Driver) Restart(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d.rt.Seed = seed
	d.game.Reset(d.rt)

	w, h := d.game.ScreenSize()
	if d.screen == nil {
		d.screen = core.NewScreen(w, h)
	} else {
		d.screen.Resize(w, h)
	}

	d.state = StateRunning
	d.ticks = 0
	d.last = d.game.State()
	d.logger.Debug("game started", "game", d.game.ID(), "seed", seed)
}

// Tick runs one render, input, simulate cycle. It does nothing once the
// game has terminated.
func (d *Driver) Tick() core.StepResult {
	if d.state == StateTerminated {
		return core.StepResult{State: d.last}
	}

	d.Render()

	d.frame.Clear()
	if d.keys != nil && d.keys.HasPendingKey() {
		d.frame.Set(d.game.ActionForKey(d.keys.ReadKey()))
	}

	res := d.game.Step(d.frame)
	d.ticks++
	d.last = res.State

	if res.WaveStarted {
		d.logger.Debug("wave started", "wave", res.State.Wave, "level", res.State.Level, "score", res.State.Score)
	}
	if res.State.GameOver {
		d.state = StateTerminated
		outcome := "lost"
		if res.State.Won {
			outcome = "won"
		}
		d.logger.Info("game over",
			"game", d.game.ID(),
			"outcome", outcome,
			"score", res.State.Score,
			"kills", res.State.Kills,
			"wave", res.State.Wave,
			"ticks", d.ticks,
		)
	}
	return res
}

// Render draws the current state and presents it to the sink.
func (d *Driver) Render() {
	d.game.Render(d.screen)
	d.screen.Flush(d.sink)
}

// Run ticks at the configured rate until the game terminates, then renders a
// final frame. Cancelling ctx stops the loop early; neither case is an error.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.rt.TickInterval()
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for d.state == StateRunning {
		d.Tick()
		if d.state == StateTerminated {
			break
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			d.logger.Debug("loop cancelled", "ticks", d.ticks)
			return nil
		case <-timer.C:
		}
	}

	d.Render()
	return nil
}

// Close stops the game and releases the frame buffer. A later Restart
// allocates a fresh one.
func (d *Driver) Close() {
	d.state = StateTerminated
	d.screen.Release()
	d.logger.Debug("driver closed", "game", d.game.ID(), "ticks", d.ticks)
}

// State returns the driver state.
func (d *Driver) State() State {
	return d.state
}

// Terminated reports whether the game has ended.
func (d *Driver) Terminated() bool {
	return d.state == StateTerminated
}

// GameState returns the game state after the most recent tick.
func (d *Driver) GameState() core.GameState {
	return d.last
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Screen returns the frame buffer.
func (d *Driver) Screen() *core.Screen {
	return d.screen
}

// Ticks returns the number of ticks since the last restart.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Runtime returns the runtime configuration, including the effective seed.
func (d *Driver) Runtime() core.RuntimeConfig {
	return d.rt
}
