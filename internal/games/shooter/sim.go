package shooter

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TickEvents reports what happened during one simulation tick.
type TickEvents struct {
	EnemyFired  bool
	Kill        bool
	WaveStarted bool
	PlayerHit   bool
}

// Simulate advances the world by one tick. The phase order is fixed and
// part of the game's behavior; a terminal world is left untouched.
func Simulate(w *World, r Rules, rng *rand.Rand) TickEvents {
	var ev TickEvents
	if w.Status.Terminal() {
		return ev
	}
	w.Tick++

	ev.EnemyFired = enemyFire(w, rng)
	advanceShots(w)
	advanceFormation(w, r)
	ev.Kill, ev.WaveStarted = resolvePlayerShots(w, r)
	ev.PlayerHit = resolveEnemyShots(w, r)
	cleanupPlayerShots(w)
	checkInvasion(w, r)
	checkWin(w, r)

	return ev
}

// enemyFire gives a 1-in-ShootDelay chance that a random enemy fires.
func enemyFire(w *World, rng *rand.Rand) bool {
	if len(w.Enemies) == 0 {
		return false
	}
	if rng.Intn(max(1, w.ShootDelay)) != 0 {
		return false
	}
	e := w.Enemies[rng.Intn(len(w.Enemies))]
	w.EnemyShots = append(w.EnemyShots, e.Add(0, 1))
	return true
}

// advanceShots moves player shots up and enemy shots down.
func advanceShots(w *World) {
	for i := range w.PlayerShots {
		w.PlayerShots[i].Y--
	}
	for i := range w.EnemyShots {
		w.EnemyShots[i].Y++
	}
}

// advanceFormation shifts the whole formation once every EnemySpeed ticks.
// Touching either side wall reverses the direction for the next move and
// drops the formation one row now.
func advanceFormation(w *World, r Rules) {
	w.MoveTicker++
	if w.MoveTicker < w.EnemySpeed {
		return
	}
	w.MoveTicker = 0

	reverse := false
	for i := range w.Enemies {
		w.Enemies[i].X += w.EnemyDir
		if w.Enemies[i].X <= r.MinX() || w.Enemies[i].X >= r.MaxX() {
			reverse = true
		}
	}
	if !reverse {
		return
	}
	w.EnemyDir = -w.EnemyDir
	for i := range w.Enemies {
		w.Enemies[i].Y++
	}
}

// resolvePlayerShots removes the first shot/enemy pair sharing a cell.
// At most one enemy dies per tick, even when several shots overlap enemies.
func resolvePlayerShots(w *World, r Rules) (kill, waveStarted bool) {
	for i, shot := range w.PlayerShots {
		j := slices.Index(w.Enemies, shot)
		if j < 0 {
			continue
		}
		w.Enemies = slices.Delete(w.Enemies, j, j+1)
		w.PlayerShots = slices.Delete(w.PlayerShots, i, i+1)
		w.Score += r.KillPoints
		w.Kills++
		if len(w.Enemies) == 0 {
			spawnWave(w, r)
			waveStarted = true
		}
		return true, waveStarted
	}
	return false, false
}

// resolveEnemyShots applies hits on the player and drops shots that left
// the bottom of the field.
func resolveEnemyShots(w *World, r Rules) bool {
	hit := false
	w.EnemyShots = slices.DeleteFunc(w.EnemyShots, func(s core.Point) bool {
		if s == w.Player.Pos {
			hit = true
			w.Player.Health = max(0, w.Player.Health-1)
			if w.Player.Health == 0 {
				w.Status = StatusLost
			}
			return true
		}
		return s.Y >= r.Height
	})
	return hit
}

// cleanupPlayerShots drops shots that reached the top row.
func cleanupPlayerShots(w *World) {
	w.PlayerShots = slices.DeleteFunc(w.PlayerShots, func(s core.Point) bool {
		return s.Y <= 0
	})
}

// checkInvasion ends the game once any enemy reaches the bottom row.
func checkInvasion(w *World, r Rules) {
	for _, e := range w.Enemies {
		if e.Y >= r.Height-1 {
			w.Status = StatusLost
			return
		}
	}
}

// checkWin ends the game once the score reaches the win threshold.
// A win overrides a loss recorded earlier in the same tick.
func checkWin(w *World, r Rules) {
	if r.WinScore > 0 && w.Score >= r.WinScore {
		w.Status = StatusWon
	}
}
