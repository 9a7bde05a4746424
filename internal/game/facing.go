package game

import "math"

// Facing is the cardinal direction an actor is looking. The renderer maps
// it to a visual; the simulation only stores and updates it.
type Facing int

const (
	FacingDown Facing = iota // default for freshly created actors
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// FacingToward picks the cardinal direction along the dominant axis of d.
// Ties favour the vertical axis. A zero vector keeps the current facing.
func FacingToward(d Vec2, current Facing) Facing {
	if d.IsZero() {
		return current
	}
	if math.Abs(d.X) > math.Abs(d.Y) {
		if d.X > 0 {
			return FacingRight
		}
		return FacingLeft
	}
	if d.Y > 0 {
		return FacingDown
	}
	return FacingUp
}
