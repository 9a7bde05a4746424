package game

// Player is the single human-controlled actor. It is created once at the
// centre of the world and never removed; reaching zero health ends the
// session instead.
type Player struct {
	Pos       Vec2
	Speed     float64 // world units per second
	Health    int
	MaxHealth int
	Facing    Facing
	Size      float64 // bounding box edge
}

// NewPlayer creates a full-health player at pos.
func NewPlayer(pos Vec2, cfg PlayerConfig) Player {
	return Player{
		Pos:       pos,
		Speed:     cfg.Speed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		Facing:    FacingDown,
		Size:      cfg.Size,
	}
}

func (p *Player) Position() Vec2 { return p.Pos }

func (p *Player) SetPosition(v Vec2) { p.Pos = v }

// Bounds is the Size×Size box centred on the player.
func (p *Player) Bounds() Rect {
	return CenteredRect(p.Pos, p.Size, p.Size)
}

// TakeHit removes exactly one heart for any positive damage, whatever its
// magnitude. It reports whether the player is now dead. Health is clamped
// at zero.
func (p *Player) TakeHit(damage float64) bool {
	if damage > 0 && p.Health > 0 {
		p.Health--
	}
	return p.Health <= 0
}

// Heal restores one heart up to MaxHealth and reports whether it did.
func (p *Player) Heal() bool {
	if p.Health >= p.MaxHealth {
		return false
	}
	p.Health++
	return true
}

// Dead reports whether the player has no hearts left.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// ClampTo keeps the player's centre inside [0, w] × [0, h].
func (p *Player) ClampTo(w, h float64) {
	p.Pos.X = clamp(p.Pos.X, 0, w)
	p.Pos.Y = clamp(p.Pos.Y, 0, h)
}
