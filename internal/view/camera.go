package view

import "github.com/spyrun/arena/internal/game"

// CameraOffset returns the world-space top-left corner of a viewW×viewH
// viewport centred on focus and clamped to [0, world − view] on each axis.
// A world smaller than the viewport pins the camera to 0.
func CameraOffset(focus game.Vec2, worldW, worldH float64, viewW, viewH int) game.Vec2 {
	vw, vh := float64(viewW), float64(viewH)
	return game.Vec2{
		X: clampAxis(focus.X-vw/2, worldW-vw),
		Y: clampAxis(focus.Y-vh/2, worldH-vh),
	}
}

func clampAxis(v, hi float64) float64 {
	if hi < 0 {
		hi = 0
	}
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
