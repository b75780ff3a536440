package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 20)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate gives the 50ms tick of the console game.
const DefaultTickRate = 20

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the fixed delay between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Enemies destroyed
	Wave     int  // Current wave (1-based)
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended (win or loss)
	Won      bool // Whether the game ended in a win
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State       GameState
	WaveStarted bool // A new wave was spawned during this tick
}
