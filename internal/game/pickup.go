package game

// Pickup is a heart lying on the floor. Pos is the top-left corner of its box.
type Pickup struct {
	ID   int
	Pos  Vec2
	Size float64
}

// Bounds is the Size×Size box anchored at Pos.
func (p Pickup) Bounds() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size, H: p.Size}
}
