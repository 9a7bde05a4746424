package game

// Obstacle is a static box that blocks movement. Bullets fly over it.
type Obstacle struct {
	Rect
}

// NewObstacles copies the configured rects into an obstacle set.
func NewObstacles(rects []Rect) []Obstacle {
	out := make([]Obstacle, len(rects))
	for i, r := range rects {
		out[i] = Obstacle{Rect: r}
	}
	return out
}

// Bounds returns the obstacle's box.
func (o Obstacle) Bounds() Rect {
	return o.Rect
}
