package game

// Enemy is a pursuer that walks straight at the player and fires on a fixed
// cooldown. Enemies are purged from the session at the end of the tick in
// which their health drops to zero.
type Enemy struct {
	ID     int
	Pos    Vec2
	Speed  float64
	Health float64
	Alive  bool
	Facing Facing
	Size   float64

	ShootCooldown float64 // seconds between shots
	SinceShot     float64 // seconds accumulated toward the next shot
}

// NewEnemy creates a live enemy at pos.
func NewEnemy(id int, pos Vec2, cfg EnemyConfig) Enemy {
	return Enemy{
		ID:            id,
		Pos:           pos,
		Speed:         cfg.Speed,
		Health:        cfg.Health,
		Alive:         true,
		Facing:        FacingDown,
		Size:          cfg.Size,
		ShootCooldown: cfg.ShootCooldown,
	}
}

func (e *Enemy) Position() Vec2 { return e.Pos }

func (e *Enemy) SetPosition(v Vec2) { e.Pos = v }

// Bounds is the Size×Size box centred on the enemy.
func (e *Enemy) Bounds() Rect {
	return CenteredRect(e.Pos, e.Size, e.Size)
}

// TakeDamage subtracts amount from health and reports whether the hit was
// lethal. A lethal hit clamps health to zero and clears Alive.
func (e *Enemy) TakeDamage(amount float64) bool {
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		return true
	}
	return false
}

// Pursue turns the enemy toward target and returns the displacement it wants
// to make this tick. The displacement is zero when the enemy already stands
// on the target.
func (e *Enemy) Pursue(target Vec2, dt float64) Vec2 {
	d := target.Sub(e.Pos)
	dir, ok := d.Normalize()
	if !ok {
		return Vec2{}
	}
	e.Facing = FacingToward(d, e.Facing)
	return dir.Scale(e.Speed * dt)
}

// AdvanceCooldown accumulates dt toward the next shot.
func (e *Enemy) AdvanceCooldown(dt float64) {
	e.SinceShot += dt
}

// ReadyToShoot reports whether the cooldown has elapsed, resetting the
// accumulator to zero when it has.
func (e *Enemy) ReadyToShoot() bool {
	if e.SinceShot >= e.ShootCooldown {
		e.SinceShot = 0
		return true
	}
	return false
}
