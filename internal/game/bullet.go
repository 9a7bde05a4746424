package game

// Owner tags who fired a bullet and therefore who it may damage.
type Owner int

const (
	OwnerPlayer Owner = iota // damages enemies only
	OwnerEnemy               // damages the player only
)

func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Bullet is a straight-line projectile. It lives until it hits something
// (or, with culling enabled, until it leaves the world).
type Bullet struct {
	ID     int
	Pos    Vec2
	Vel    Vec2 // world units per second
	Damage float64
	Owner  Owner
	Alive  bool
}

// NewBullet aims a bullet from origin toward a target point. When target
// coincides with origin there is no direction to fly in: the bullet comes
// back with Alive=false and zero velocity and callers must drop it.
func NewBullet(origin, toward Vec2, owner Owner, speed, damage float64) Bullet {
	b := Bullet{
		Pos:    origin,
		Damage: damage,
		Owner:  owner,
	}
	dir, ok := toward.Sub(origin).Normalize()
	if !ok {
		return b
	}
	b.Vel = dir.Scale(speed)
	b.Alive = true
	return b
}

// Advance moves the bullet along its velocity for dt seconds.
func (b *Bullet) Advance(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// OutOf reports whether the bullet has left area grown by margin on every side.
func (b *Bullet) OutOf(area Rect, margin float64) bool {
	return b.Pos.X < area.X-margin || b.Pos.X > area.X+area.W+margin ||
		b.Pos.Y < area.Y-margin || b.Pos.Y > area.Y+area.H+margin
}
