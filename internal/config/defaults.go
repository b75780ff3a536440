package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  60,
			Height: 25,
		},
		Player: PlayerConfig{
			MaxHealth: 5,
		},
		Enemies: EnemyConfig{
			Rows:          3,
			FirstRow:      3,
			RowSpacing:    2,
			FirstColumn:   5,
			ColumnMargin:  5,
			ColumnStride:  4,
			Speed:         8,
			MinSpeed:      3,
			SpeedStep:     1,
			ShootDelay:    15,
			MinShootDelay: 5,
			ShootStep:     2,
		},
		Scoring: ScoringConfig{
			KillPoints:    10,
			WinScore:      100,
			WavesPerLevel: 3,
		},
		Glyphs: DefaultGlyphs(),
	}
}

// DefaultGlyphs returns the classic console glyph set.
func DefaultGlyphs() GlyphConfig {
	return GlyphConfig{
		Player:      "P",
		Enemy:       "E",
		Boundary:    "#",
		PlayerShot:  "|",
		EnemyShot:   ".",
		HeartFilled: "<3",
	}
}
