package config

import "testing"

func TestDifficultyRampFloors(t *testing.T) {
	cfg := DefaultShooterConfig()
	ramp := NewDifficultyRamp(cfg.Enemies, cfg.Scoring)

	speed, delay := ramp.Initial()
	if speed != 8 || delay != 15 {
		t.Fatalf("Initial() = (%d, %d), expected (8, 15)", speed, delay)
	}

	// speed: 8 -> 7 -> 6 -> 5 -> 4 -> 3 -> 3
	// delay: 15 -> 13 -> 11 -> 9 -> 7 -> 5 -> 5
	expected := [][2]int{{7, 13}, {6, 11}, {5, 9}, {4, 7}, {3, 5}, {3, 5}, {3, 5}}
	for i, want := range expected {
		speed, delay = ramp.Next(speed, delay)
		if speed != want[0] || delay != want[1] {
			t.Errorf("wave %d: Next() = (%d, %d), expected (%d, %d)", i+2, speed, delay, want[0], want[1])
		}
	}
}

func TestDifficultyRampMonotonic(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyEasy)
	ramp := NewDifficultyRamp(cfg.Enemies, cfg.Scoring)

	speed, delay := ramp.Initial()
	for i := 0; i < 50; i++ {
		ns, nd := ramp.Next(speed, delay)
		if ns > speed || nd > delay {
			t.Fatalf("ramp increased: (%d, %d) -> (%d, %d)", speed, delay, ns, nd)
		}
		if ns < cfg.Enemies.MinSpeed || nd < cfg.Enemies.MinShootDelay {
			t.Fatalf("ramp went below floor: (%d, %d)", ns, nd)
		}
		speed, delay = ns, nd
	}
}

func TestDifficultyRampFixed(t *testing.T) {
	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyFixed)
	ramp := NewDifficultyRamp(cfg.Enemies, cfg.Scoring)

	if ramp.IsEnabled() {
		t.Error("fixed preset should disable the ramp")
	}
	speed, delay := ramp.Next(8, 15)
	if speed != 8 || delay != 15 {
		t.Errorf("fixed ramp changed values to (%d, %d)", speed, delay)
	}
}

func TestDifficultyRampLevelUp(t *testing.T) {
	cfg := DefaultShooterConfig()
	ramp := NewDifficultyRamp(cfg.Enemies, cfg.Scoring)

	for wave := 1; wave <= 9; wave++ {
		want := wave%3 == 0
		if got := ramp.LevelUp(wave); got != want {
			t.Errorf("LevelUp(%d) = %v, expected %v", wave, got, want)
		}
	}
}
