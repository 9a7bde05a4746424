package game

import "math/rand"

// SpawnTimer fires once every Interval seconds of accumulated time.
//
// When a tick overshoots the interval the accumulator is reset to zero
// rather than reduced by Interval, so one tick spawns at most once and the
// overshoot is lost. Under a big frame-time spike this yields fewer spawns
// than wall-clock time would predict.
type SpawnTimer struct {
	Interval float64
	Elapsed  float64
}

// Advance adds dt and reports whether the timer came due.
func (t *SpawnTimer) Advance(dt float64) bool {
	t.Elapsed += dt
	if t.Elapsed >= t.Interval {
		t.Elapsed = 0
		return true
	}
	return false
}

// SpawnScheduler drives the enemy and pickup timers and picks spawn points.
type SpawnScheduler struct {
	Enemy  SpawnTimer
	Pickup SpawnTimer

	width, height float64
	rng           *rand.Rand
}

// NewSpawnScheduler creates a scheduler over a width×height world.
func NewSpawnScheduler(cfg SpawnConfig, width, height float64, rng *rand.Rand) *SpawnScheduler {
	return &SpawnScheduler{
		Enemy:  SpawnTimer{Interval: cfg.EnemyInterval},
		Pickup: SpawnTimer{Interval: cfg.PickupInterval},
		width:  width,
		height: height,
		rng:    rng,
	}
}

// SpawnDue is what a single Advance call asks the session to create.
type SpawnDue struct {
	Enemy     bool
	EnemyPos  Vec2
	Pickup    bool
	PickupPos Vec2
}

// Advance runs both timers by dt and draws a position for each one that fired.
func (s *SpawnScheduler) Advance(dt float64) SpawnDue {
	var due SpawnDue
	if s.Enemy.Advance(dt) {
		due.Enemy = true
		due.EnemyPos = s.RandomPoint()
	}
	if s.Pickup.Advance(dt) {
		due.Pickup = true
		due.PickupPos = s.RandomPoint()
	}
	return due
}

// RandomPoint returns a point uniform over [0, width) × [0, height).
func (s *SpawnScheduler) RandomPoint() Vec2 {
	return Vec2{
		X: s.rng.Float64() * s.width,
		Y: s.rng.Float64() * s.height,
	}
}
