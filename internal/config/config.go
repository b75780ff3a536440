// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Field   FieldConfig   `yaml:"field" validate:"required"`
	Player  PlayerConfig  `yaml:"player" validate:"required"`
	Enemies EnemyConfig   `yaml:"enemies" validate:"required"`
	Scoring ScoringConfig `yaml:"scoring" validate:"required"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
}

// FieldConfig defines the playable area, excluding the HUD and borders.
type FieldConfig struct {
	Width  int `yaml:"width" validate:"min=12,max=200"`
	Height int `yaml:"height" validate:"min=10,max=100"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	MaxHealth int `yaml:"max_health" validate:"min=1,max=10"`
}

// EnemyConfig defines the enemy formation and its difficulty ramp.
type EnemyConfig struct {
	Rows          int `yaml:"rows" validate:"min=1"`
	FirstRow      int `yaml:"first_row" validate:"min=0"`
	RowSpacing    int `yaml:"row_spacing" validate:"min=1"`
	FirstColumn   int `yaml:"first_column" validate:"min=2"`
	ColumnMargin  int `yaml:"column_margin" validate:"min=2"`
	ColumnStride  int `yaml:"column_stride" validate:"min=1"`
	Speed         int `yaml:"speed" validate:"min=1"`           // Ticks between formation moves
	MinSpeed      int `yaml:"min_speed" validate:"min=1"`       // Floor for Speed
	SpeedStep     int `yaml:"speed_step" validate:"min=0"`      // Speed reduction per wave
	ShootDelay    int `yaml:"shoot_delay" validate:"min=1"`     // 1-in-N chance per tick to fire
	MinShootDelay int `yaml:"min_shoot_delay" validate:"min=1"` // Floor for ShootDelay
	ShootStep     int `yaml:"shoot_step" validate:"min=0"`      // ShootDelay reduction per wave
}

// ScoringConfig defines score, win and level parameters.
type ScoringConfig struct {
	KillPoints    int `yaml:"kill_points" validate:"min=1"`
	WinScore      int `yaml:"win_score" validate:"min=0"` // 0 disables the win condition
	WavesPerLevel int `yaml:"waves_per_level" validate:"min=1"`
}

// GlyphConfig defines the characters used to draw the field.
// Empty values fall back to the defaults.
type GlyphConfig struct {
	Player      string `yaml:"player" validate:"omitempty,len=1"`
	Enemy       string `yaml:"enemy" validate:"omitempty,len=1"`
	Boundary    string `yaml:"boundary" validate:"omitempty,len=1"`
	PlayerShot  string `yaml:"player_shot" validate:"omitempty,len=1"`
	EnemyShot   string `yaml:"enemy_shot" validate:"omitempty,len=1"`
	HeartFilled string `yaml:"heart" validate:"omitempty,max=2"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
