package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Status is the game outcome state.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusWon
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	return s == StatusLost || s == StatusWon
}

// Horizontal formation directions.
const (
	DirLeft  = -1
	DirRight = 1
)

// Player is the player's ship.
type Player struct {
	Pos    core.Point
	Health int
}

// World is the complete simulation state of one game.
// Renderer, input and simulation all operate on a *World; nothing else
// holds game state between ticks.
type World struct {
	Player      Player
	Enemies     []core.Point
	PlayerShots []core.Point // Move up one row per tick
	EnemyShots  []core.Point // Move down one row per tick

	Score int
	Kills int
	Wave  int
	Level int

	EnemySpeed int // Ticks between formation moves
	ShootDelay int // 1-in-N chance per tick that an enemy fires
	EnemyDir   int // DirLeft or DirRight
	MoveTicker int // Ticks since the last formation move

	Status Status
	Tick   uint64
}

// Rules holds the fixed parameters the simulation runs under.
type Rules struct {
	Width      int
	Height     int
	MaxHealth  int
	Formation  config.EnemyConfig
	KillPoints int
	WinScore   int // 0 disables the win condition
	Ramp       *config.DifficultyRamp
	Endless    bool
}

// NewRules derives simulation rules from a configuration.
// Endless rules never end in a win.
func NewRules(cfg config.ShooterConfig, endless bool) Rules {
	winScore := cfg.Scoring.WinScore
	if endless {
		winScore = 0
	}
	return Rules{
		Width:      cfg.Field.Width,
		Height:     cfg.Field.Height,
		MaxHealth:  cfg.Player.MaxHealth,
		Formation:  cfg.Enemies,
		KillPoints: cfg.Scoring.KillPoints,
		WinScore:   winScore,
		Ramp:       config.NewDifficultyRamp(cfg.Enemies, cfg.Scoring),
		Endless:    endless,
	}
}

// Field returns the playable rectangle in field coordinates.
func (r Rules) Field() core.Rect {
	return core.NewRect(0, 0, r.Width, r.Height)
}

// MinX is the leftmost column the player may occupy.
func (r Rules) MinX() int {
	return 1
}

// MaxX is the rightmost column the player may occupy.
func (r Rules) MaxX() int {
	return r.Width - 2
}

// NewWorld creates the wave-1 state: full formation, player centered one
// row above the bottom, full health.
func NewWorld(r Rules) *World {
	speed, delay := r.Ramp.Initial()
	return &World{
		Player: Player{
			Pos:    core.P(r.Width/2, r.Height-2),
			Health: r.MaxHealth,
		},
		Enemies:    Formation(r),
		Wave:       1,
		Level:      1,
		EnemySpeed: speed,
		ShootDelay: delay,
		EnemyDir:   DirRight,
		Status:     StatusPlaying,
	}
}

// Formation returns the enemy grid every wave starts with.
func Formation(r Rules) []core.Point {
	f := r.Formation
	cols := 0
	for x := f.FirstColumn; x < r.Width-f.ColumnMargin; x += f.ColumnStride {
		cols++
	}

	enemies := make([]core.Point, 0, f.Rows*cols)
	for row := 0; row < f.Rows; row++ {
		y := f.FirstRow + row*f.RowSpacing
		for x := f.FirstColumn; x < r.Width-f.ColumnMargin; x += f.ColumnStride {
			enemies = append(enemies, core.P(x, y))
		}
	}
	return enemies
}
