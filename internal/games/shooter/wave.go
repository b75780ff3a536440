package shooter

// spawnWave starts the next wave: the difficulty ramp tightens, the full
// formation is restored and every WavesPerLevel-th wave raises the level.
// The formation direction and move ticker carry over from the last wave.
func spawnWave(w *World, r Rules) {
	w.Wave++
	if r.Ramp.IsEnabled() {
		w.EnemySpeed, w.ShootDelay = r.Ramp.Next(w.EnemySpeed, w.ShootDelay)
	}
	w.Enemies = append(w.Enemies, Formation(r)...)
	if r.Ramp.LevelUp(w.Wave) {
		w.Level++
	}
}
