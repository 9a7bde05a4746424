package game

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Input is what the input layer hands the session each tick. Directions are
// already debounced to on/off; Target is in world space (cursor plus camera
// offset).
type Input struct {
	Up, Down, Left, Right bool

	Fire   bool
	Target Vec2
}

// MoveDir returns the raw intent vector with components in {-1, 0, 1}.
// Opposite keys cancel out.
func (in Input) MoveDir() Vec2 {
	var d Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d
}

// Session owns the whole state of one arena run. It is driven from a single
// goroutine, one Tick per frame; nothing in it blocks or locks.
type Session struct {
	id      string
	cfg     Config
	state   State
	tick    int
	elapsed float64

	player    Player
	enemies   []Enemy
	bullets   []Bullet
	pickups   []Pickup
	obstacles []Obstacle

	world   Rect
	rules   CombatRules
	spawner *SpawnScheduler
	rng     *rand.Rand
	nextID  int

	stats  Stats
	events []Event // events of the latest running tick

	log    *slog.Logger
	simLog *SimLog
}

// SessionOption customises a Session at construction.
type SessionOption func(*Session)

// WithRand makes spawning deterministic.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithLogger routes session logs to l. The session id is attached to every record.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithSimLog records every event into sl.
func WithSimLog(sl *SimLog) SessionOption {
	return func(s *Session) { s.simLog = sl }
}

// NewSession validates cfg and seeds a fresh arena: the player at the world
// centre, the configured starting enemies and a handful of hearts.
func NewSession(cfg Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		id:        uuid.NewString(),
		cfg:       cfg,
		state:     StateRunning,
		world:     Rect{W: cfg.World.Width, H: cfg.World.Height},
		obstacles: NewObstacles(cfg.Obstacles),
		rules: CombatRules{
			EnemyHitRadius:  cfg.Enemy.HitRadius,
			PlayerHitRadius: cfg.Player.HitRadius,
		},
		nextID: 1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	s.log = s.log.With("session", s.id)
	s.spawner = NewSpawnScheduler(cfg.Spawn, cfg.World.Width, cfg.World.Height, s.rng)

	s.player = NewPlayer(s.world.Center(), cfg.Player)
	for _, pos := range cfg.Enemy.Initial {
		s.spawnEnemy(pos)
	}
	for i := 0; i < cfg.Pickup.Initial; i++ {
		s.spawnPickup(s.spawner.RandomPoint())
	}
	s.log.Info("session started",
		"enemies", len(s.enemies), "pickups", len(s.pickups), "obstacles", len(s.obstacles))
	return s, nil
}

// ID is the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State reports whether the session is still running.
func (s *Session) State() State { return s.state }

// Config returns the rules the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Obstacles returns a copy of the static map.
func (s *Session) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Tick advances the simulation by dt seconds under input and returns the
// resulting snapshot. After game over the input is ignored and the same
// frozen snapshot comes back every time.
func (s *Session) Tick(dt float64, in Input) Snapshot {
	if s.state == StateGameOver {
		return s.Snapshot()
	}
	dt = s.sanitizeDT(dt)
	s.tick++
	s.elapsed += dt
	s.events = s.events[:0]
	s.stats.Ticks++
	s.stats.SurvivalSeconds += dt

	// 0. FIRE: the shot leaves from where the player stood when it was requested.
	if in.Fire {
		s.fire(s.player.Pos, in.Target, OwnerPlayer)
	}

	// 1. PLAYER MOVE: normalised intent so diagonals are not faster.
	// Facing follows the dominant axis of the held keys (ties vertical),
	// not the most recently pressed key as in the classic game.
	intent := in.MoveDir()
	if dir, ok := intent.Normalize(); ok {
		s.player.Facing = FacingToward(intent, s.player.Facing)
		AttemptMove(&s.player, dir.Scale(s.player.Speed*dt), s.obstacles)
	}

	// 2. CLAMP to the world. Only the player is bounded.
	s.player.ClampTo(s.world.W, s.world.H)

	// 3. Camera offset belongs to the renderer.

	// 4. ENEMIES: pursue, then shoot when the cooldown allows.
	for i := range s.enemies {
		e := &s.enemies[i]
		if !e.Alive {
			continue
		}
		AttemptMove(e, e.Pursue(s.player.Pos, dt), s.obstacles)
		e.AdvanceCooldown(dt)
		if e.ReadyToShoot() {
			s.fire(e.Pos, s.player.Pos, OwnerEnemy)
		}
	}

	// 5. BULLETS fly.
	for i := range s.bullets {
		if s.bullets[i].Alive {
			s.bullets[i].Advance(dt)
		}
	}

	// 6. COMBAT.
	res := ResolveCombat(s.bullets, s.enemies, &s.player, s.pickups, s.rules)
	s.pickups = res.Pickups
	for _, ev := range res.Events {
		s.emit(ev)
	}
	if res.GameOver {
		s.state = StateGameOver
		s.log.Info("game over",
			"tick", s.tick, "survived", s.elapsed, "kills", s.stats.EnemiesKilled)
	}

	// 7. PURGE the dead, plus bullets that have flown off the map.
	s.purge()

	// 8. SPAWN.
	due := s.spawner.Advance(dt)
	if due.Enemy {
		s.spawnEnemy(due.EnemyPos)
	}
	if due.Pickup {
		s.spawnPickup(due.PickupPos)
	}

	return s.Snapshot()
}

// sanitizeDT turns a raw frame delta into a safe simulation step.
func (s *Session) sanitizeDT(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > s.cfg.Hardening.MaxTickSeconds {
		return s.cfg.Hardening.MaxTickSeconds
	}
	return dt
}

func (s *Session) fire(origin, target Vec2, owner Owner) {
	b := NewBullet(origin, target, owner, s.cfg.Bullet.Speed, s.cfg.Bullet.Damage)
	if !b.Alive {
		s.stats.Misfires++
		return
	}
	b.ID = s.allocID()
	s.bullets = append(s.bullets, b)
	if owner == OwnerPlayer {
		s.stats.ShotsFired++
	} else {
		s.stats.EnemyShotsFired++
	}
}

func (s *Session) purge() {
	cull := s.cfg.Hardening.CullBullets
	margin := s.cfg.Hardening.BulletCullMargin
	bullets := s.bullets[:0]
	for _, b := range s.bullets {
		if !b.Alive {
			continue
		}
		if cull && b.OutOf(s.world, margin) {
			s.stats.BulletsCulled++
			continue
		}
		bullets = append(bullets, b)
	}
	s.bullets = bullets

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	s.enemies = enemies
}

func (s *Session) spawnEnemy(pos Vec2) {
	e := NewEnemy(s.allocID(), pos, s.cfg.Enemy)
	s.enemies = append(s.enemies, e)
	s.emit(Event{Kind: EventEnemySpawned, ID: e.ID, Pos: pos})
}

func (s *Session) spawnPickup(pos Vec2) {
	p := Pickup{ID: s.allocID(), Pos: pos, Size: s.cfg.Pickup.Size}
	s.pickups = append(s.pickups, p)
	s.emit(Event{Kind: EventPickupSpawned, ID: p.ID, Pos: pos})
}

func (s *Session) emit(ev Event) {
	ev.Tick = s.tick
	s.events = append(s.events, ev)
	s.stats.record(ev)
	if s.simLog != nil {
		s.simLog.AddEvent(ev)
	}
	s.log.Debug("event", "tick", ev.Tick, "kind", ev.Kind.String(), "id", ev.ID, "x", ev.Pos.X, "y", ev.Pos.Y)
}

func (s *Session) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}
