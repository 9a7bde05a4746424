package game

// Mover is anything AttemptMove can displace: a position plus a bounding box
// derived from it.
type Mover interface {
	Position() Vec2
	SetPosition(Vec2)
	Bounds() Rect
}

// AttemptMove applies delta to m as one combined step and keeps it only if
// the resulting box overlaps none of the obstacles. On overlap the mover is
// put back exactly where it was and false is returned.
//
// There is no per-axis sliding: a diagonal step into a corner is rejected
// whole. The scan is linear over obstacles, which is fine for a handful of
// desks but would want a spatial index on a bigger map.
func AttemptMove(m Mover, delta Vec2, obstacles []Obstacle) bool {
	if delta.IsZero() {
		return true
	}
	old := m.Position()
	m.SetPosition(old.Add(delta))
	if blocked(m.Bounds(), obstacles) {
		m.SetPosition(old)
		return false
	}
	return true
}

// blocked reports whether box overlaps any obstacle.
func blocked(box Rect, obstacles []Obstacle) bool {
	for i := range obstacles {
		if box.Intersects(obstacles[i].Rect) {
			return true
		}
	}
	return false
}
