package game

import "math"

// PathClear reports whether the straight segment from a to b crosses no
// obstacle. Enemies pursue in a straight line, so an enemy whose path to the
// player is not clear will end up pressed against a desk.
func PathClear(a, b Vec2, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if segmentHitsRect(a, b, o.Rect) {
			return false
		}
	}
	return true
}

// segmentHitsRect is a slab test of the segment a->b against r. Touching an
// edge counts as a hit.
func segmentHitsRect(a, b Vec2, r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	tMin, tMax := 0.0, 1.0

	slab := func(origin, d, lo, hi float64) bool {
		if math.Abs(d) < 1e-12 {
			return origin >= lo && origin <= hi
		}
		t1 := (lo - origin) / d
		t2 := (hi - origin) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		return tMin <= tMax
	}

	d := b.Sub(a)
	return slab(a.X, d.X, r.X, r.X+r.W) && slab(a.Y, d.Y, r.Y, r.Y+r.H)
}
