// Package shooter implements the console space shooter: a player ship at
// the bottom of the field fights a marching enemy formation that is
// restored, faster and more aggressive, every time it is wiped out.
package shooter

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Win at the configured score
	ModeEndless Mode = "endless" // Play until the formation wins
)

// Game IDs registered with the registry.
const (
	IDClassic = "shooter"
	IDEndless = "shooter_endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives config loading problems
var logger = log.New(io.Discard)

// SetLogger sets the logger games report config problems to. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the shooter on top of a World.
type Game struct {
	mode      Mode
	cfg       config.ShooterConfig
	cfgLoaded bool // cfg was supplied by the caller; skip loading

	rules  Rules
	glyphs Glyphs
	world  *World
	rng    *rand.Rand
	last   TickEvents
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic, cfg: config.DefaultShooterConfig()}
}

// NewEndless creates an endless-mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, cfg: config.DefaultShooterConfig()}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.ShooterConfig) *Game {
	return &Game{mode: mode, cfg: cfg, cfgLoaded: true}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Console Shooter (Endless)"
	}
	return "Console Shooter"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.cfgLoaded {
		// Load config (errors fall back to defaults)
		loader := config.NewLoader()
		loader.Logger = logger
		cfg, err := loader.Load(configPath)
		if err != nil {
			logger.Warn("using default config", "path", configPath, "error", err)
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShooterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.rules = NewRules(g.cfg, g.mode == ModeEndless)
	g.glyphs = GlyphsFrom(g.cfg.Glyphs)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.world = NewWorld(g.rules)
	g.last = TickEvents{}
}

// ScreenSize returns the frame dimensions.
func (g *Game) ScreenSize() (width, height int) {
	return FrameSize(g.cfg.Field.Width, g.cfg.Field.Height)
}

// ActionForKey maps a raw key to a game action.
func (g *Game) ActionForKey(r rune) core.Action {
	return ActionForKey(r)
}

// Step applies one tick of input, then advances the simulation.
// A quit ends the game before the simulation runs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	ApplyInput(g.world, g.rules, in)
	if g.world.Status.Terminal() {
		g.last = TickEvents{}
		return core.StepResult{State: g.State()}
	}

	g.last = Simulate(g.world, g.rules, g.rng)
	return core.StepResult{
		State:       g.State(),
		WaveStarted: g.last.WaveStarted,
	}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.world, g.rules, g.glyphs)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.Score,
		Kills:    w.Kills,
		Wave:     w.Wave,
		Level:    w.Level,
		GameOver: w.Status.Terminal(),
		Won:      w.Status == StatusWon,
	}
}

// World returns the live simulation state.
func (g *Game) World() *World {
	return g.world
}

// LastEvents returns what happened during the most recent Step.
func (g *Game) LastEvents() TickEvents {
	return g.last
}

// Config returns the configuration the current run uses.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}
