package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Snapshot contains the game state in primitive types, for logging and
// determinism checks.
type Snapshot struct {
	Tick   uint64
	Status string

	PlayerX int
	PlayerY int
	Health  int

	Score int
	Kills int
	Wave  int
	Level int

	EnemySpeed int
	ShootDelay int
	EnemyDir   int
	MoveTicker int

	// Entity positions, flattened as X, Y pairs
	EnemyData      []int
	PlayerShotData []int
	EnemyShotData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Tick:           w.Tick,
		Status:         w.Status.String(),
		PlayerX:        w.Player.Pos.X,
		PlayerY:        w.Player.Pos.Y,
		Health:         w.Player.Health,
		Score:          w.Score,
		Kills:          w.Kills,
		Wave:           w.Wave,
		Level:          w.Level,
		EnemySpeed:     w.EnemySpeed,
		ShootDelay:     w.ShootDelay,
		EnemyDir:       w.EnemyDir,
		MoveTicker:     w.MoveTicker,
		EnemyData:      flatten(w.Enemies),
		PlayerShotData: flatten(w.PlayerShots),
		EnemyShotData:  flatten(w.EnemyShots),
	}
}

func flatten(points []core.Point) []int {
	data := make([]int, 0, len(points)*2)
	for _, p := range points {
		data = append(data, p.X, p.Y)
	}
	return data
}
