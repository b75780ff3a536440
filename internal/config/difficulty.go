package config

// DifficultyRamp tightens enemy parameters each wave.
// Both values only ever decrease and never drop below their floors.
type DifficultyRamp struct {
	cfg           EnemyConfig
	wavesPerLevel int
}

// NewDifficultyRamp creates a ramp from the enemy and scoring config.
func NewDifficultyRamp(enemies EnemyConfig, scoring ScoringConfig) *DifficultyRamp {
	return &DifficultyRamp{
		cfg:           enemies,
		wavesPerLevel: scoring.WavesPerLevel,
	}
}

// IsEnabled returns whether the ramp changes anything between waves.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.cfg.SpeedStep > 0 || d.cfg.ShootStep > 0
}

// Initial returns the first-wave enemy speed and shoot delay.
func (d *DifficultyRamp) Initial() (speed, shootDelay int) {
	return d.cfg.Speed, d.cfg.ShootDelay
}

// Next returns the speed and shoot delay for the wave after the given values.
func (d *DifficultyRamp) Next(speed, shootDelay int) (int, int) {
	speed = max(d.cfg.MinSpeed, speed-d.cfg.SpeedStep)
	shootDelay = max(d.cfg.MinShootDelay, shootDelay-d.cfg.ShootStep)
	return speed, shootDelay
}

// LevelUp reports whether reaching the given wave increments the level.
func (d *DifficultyRamp) LevelUp(wave int) bool {
	if d.wavesPerLevel <= 0 {
		return false
	}
	return wave%d.wavesPerLevel == 0
}
