package game

import (
	"math/rand"
)

// TestSim is a headless arena harness used by tests and the headless report.
// It wraps a Session with deterministic seeding, a fixed timestep and a
// SimLog, and lets scenarios place actors by hand.
type TestSim struct {
	Config  Config
	Session *Session
	SimLog  *SimLog
	Last    Snapshot

	// DT is the fixed timestep fed to every tick.
	DT float64
	// Input is held for every tick run by RunTicks and RunUntil.
	Input Input

	rng *rand.Rand
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // config edits, applied before the session exists
	simOptActor                      // applied to the live session
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMapSize sets the world dimensions.
func WithMapSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.World.Width = w
		ts.Config.World.Height = h
	}}
}

// WithObstacle adds a static obstacle at (x,y) of size w×h.
func WithObstacle(x, y, w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.Obstacles = append(ts.Config.Obstacles, Rect{X: x, Y: y, W: w, H: h})
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}}
}

// WithTimestep sets the fixed tick length in seconds, lifting the tick clamp
// if dt would otherwise be cut short.
func WithTimestep(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.DT = dt
		if dt > ts.Config.Hardening.MaxTickSeconds {
			ts.Config.Hardening.MaxTickSeconds = dt
		}
	}}
}

// WithSpawnIntervals overrides the enemy and pickup spawn intervals.
func WithSpawnIntervals(enemy, pickup float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config.Spawn.EnemyInterval = enemy
		ts.Config.Spawn.PickupInterval = pickup
	}}
}

// WithoutSpawning pushes both spawn intervals far beyond any test's length.
func WithoutSpawning() SimOption {
	return WithSpawnIntervals(1e9, 1e9)
}

// WithConfig applies an arbitrary edit to the config before the session is built.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.Config)
	}}
}

// WithClassicArena restores the full default arena: desks, starting enemies
// and hearts, and the classic world size.
func WithClassicArena() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Config = DefaultConfig()
	}}
}

// WithPlayerAt moves the player to (x,y).
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Session.player.Pos = V(x, y)
	}}
}

// WithPlayerHealth sets the player's current hearts.
func WithPlayerHealth(h int) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Session.player.Health = h
	}}
}

// WithEnemy adds an enemy at (x,y).
func WithEnemy(x, y float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Session.spawnEnemy(V(x, y))
	}}
}

// WithPickup drops a heart with its top-left corner at (x,y).
func WithPickup(x, y float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Session.spawnPickup(V(x, y))
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered passes:
//  1. Infrastructure (map, obstacles, seed, timestep, config edits)
//  2. Actors, once the session exists
//
// Unless WithClassicArena is given the arena starts empty: 1280×720, no
// obstacles, no enemies, no hearts.
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	cfg.World.Width = 1280
	cfg.World.Height = 720
	cfg.Obstacles = nil
	cfg.Enemy.Initial = nil
	cfg.Pickup.Initial = 0

	ts := &TestSim{
		Config: cfg,
		SimLog: NewSimLog(),
		DT:     1.0 / 60,
		rng:    rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	s, err := NewSession(ts.Config, WithRand(ts.rng), WithSimLog(ts.SimLog))
	if err != nil {
		panic("test sim: " + err.Error())
	}
	ts.Session = s
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	ts.Last = s.Snapshot()
	return ts
}

// Step runs a single tick with the given input.
func (ts *TestSim) Step(in Input) Snapshot {
	ts.Last = ts.Session.Tick(ts.DT, in)
	return ts.Last
}

// RunTicks advances the simulation n ticks with the held Input.
func (ts *TestSim) RunTicks(n int) Snapshot {
	for i := 0; i < n; i++ {
		ts.Step(ts.Input)
	}
	return ts.Last
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(Snapshot) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		snap := ts.Step(ts.Input)
		if predicate(snap) {
			return snap.Tick
		}
	}
	return -1
}

// RunPolicy drives the session for up to maxTicks with input chosen from
// the previous snapshot, stopping at game over. Returns the ticks run.
func (ts *TestSim) RunPolicy(policy func(Snapshot) Input, maxTicks int) int {
	n := 0
	for ; n < maxTicks && !ts.Last.GameOver; n++ {
		ts.Step(policy(ts.Last))
	}
	return n
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.Last.Tick
}

// Player returns a pointer to the live player for scenario setup.
func (ts *TestSim) Player() *Player {
	return &ts.Session.player
}

// FireAt queues a single player shot at target on the next Step.
func FireAt(target Vec2) Input {
	return Input{Fire: true, Target: target}
}
