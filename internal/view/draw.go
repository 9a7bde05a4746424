package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spyrun/arena/internal/game"
)

const (
	floorTile    = 100 // world units between floor grid lines
	bulletRadius = 4
	healthBarH   = 4
)

var (
	floorColor   = color.RGBA{R: 58, G: 60, B: 66, A: 255}
	floorLine    = color.RGBA{R: 68, G: 70, B: 78, A: 255}
	wallColor    = color.RGBA{R: 20, G: 20, B: 24, A: 255}
	deskFill     = color.RGBA{R: 120, G: 86, B: 52, A: 255}
	deskShadow   = color.RGBA{R: 20, G: 16, B: 10, A: 90}
	deskEdge     = color.RGBA{R: 160, G: 120, B: 78, A: 255}
	playerBody   = color.RGBA{R: 70, G: 120, B: 220, A: 255}
	playerEdge   = color.RGBA{R: 170, G: 200, B: 255, A: 255}
	enemyBody    = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	enemyEdge    = color.RGBA{R: 250, G: 150, B: 150, A: 255}
	heartColor   = color.RGBA{R: 230, G: 40, B: 70, A: 255}
	barBack      = color.RGBA{R: 40, G: 10, B: 10, A: 220}
	barFill      = color.RGBA{R: 90, G: 220, B: 90, A: 255}
	playerBullet = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	enemyBullet  = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)

// facingMarks maps each facing to the unit offset of the visor drawn on the
// actor's body. Renderers look facing up here rather than switching on it.
var facingMarks = map[game.Facing][2]float32{
	game.FacingUp:    {0, -1},
	game.FacingDown:  {0, 1},
	game.FacingLeft:  {-1, 0},
	game.FacingRight: {1, 0},
}

// drawWorld renders everything in world space, shifted by the camera offset.
func (g *Game) drawWorld(screen *ebiten.Image) {
	cam := g.cam
	g.drawFloor(screen, cam)

	for _, o := range g.desks {
		drawDesk(screen, o.Bounds(), cam)
	}
	for _, p := range g.snap.Pickups {
		b := p.Bounds()
		drawHeart(screen, float32(b.X-cam.X), float32(b.Y-cam.Y), float32(b.W), heartColor)
	}
	for i := range g.snap.Enemies {
		e := &g.snap.Enemies[i]
		drawActor(screen, e.Bounds(), e.Facing, cam, enemyBody, enemyEdge)
		g.drawHealthBar(screen, e, cam)
	}
	drawActor(screen, g.snap.Player.Bounds(), g.snap.Player.Facing, cam, playerBody, playerEdge)

	for _, b := range g.snap.Bullets {
		clr := playerBullet
		if b.Owner == game.OwnerEnemy {
			clr = enemyBullet
		}
		vector.FillCircle(screen, float32(b.Pos.X-cam.X), float32(b.Pos.Y-cam.Y), bulletRadius, clr, true)
	}
}

// drawFloor paints the office floor grid and darkens everything outside the world.
func (g *Game) drawFloor(screen *ebiten.Image, cam game.Vec2) {
	screen.Fill(wallColor)
	w := float32(g.cfg.World.Width)
	h := float32(g.cfg.World.Height)
	ox, oy := float32(-cam.X), float32(-cam.Y)
	vector.FillRect(screen, ox, oy, w, h, floorColor, false)

	for x := float32(0); x <= w; x += floorTile {
		vector.StrokeLine(screen, ox+x, oy, ox+x, oy+h, 1.0, floorLine, false)
	}
	for y := float32(0); y <= h; y += floorTile {
		vector.StrokeLine(screen, ox, oy+y, ox+w, oy+y, 1.0, floorLine, false)
	}
}

func drawDesk(screen *ebiten.Image, r game.Rect, cam game.Vec2) {
	x, y := float32(r.X-cam.X), float32(r.Y-cam.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x+4, y+4, w, h, deskShadow, false)
	vector.FillRect(screen, x, y, w, h, deskFill, false)
	vector.StrokeRect(screen, x, y, w, h, 2.0, deskEdge, false)
}

// drawActor draws a square body with a visor on the facing side.
func drawActor(screen *ebiten.Image, r game.Rect, f game.Facing, cam game.Vec2, body, edge color.RGBA) {
	x, y := float32(r.X-cam.X), float32(r.Y-cam.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, h, body, false)
	vector.StrokeRect(screen, x, y, w, h, 1.5, edge, false)

	mark := facingMarks[f]
	cx, cy := x+w/2, y+h/2
	vector.StrokeLine(screen, cx, cy, cx+mark[0]*w/2, cy+mark[1]*h/2, 4, edge, false)
}

// drawHealthBar shows remaining enemy health above the body, full width at
// the configured starting health.
func (g *Game) drawHealthBar(screen *ebiten.Image, e *game.Enemy, cam game.Vec2) {
	r := e.Bounds()
	x, y := float32(r.X-cam.X), float32(r.Y-cam.Y)-healthBarH-3
	full := float32(r.W)
	frac := float32(e.Health / g.cfg.Enemy.Health)
	vector.FillRect(screen, x, y, full, healthBarH, barBack, false)
	vector.FillRect(screen, x, y, full*frac, healthBarH, barFill, false)
}

// drawHeart draws a size×size pixel heart with its top-left corner at (x, y).
func drawHeart(screen *ebiten.Image, x, y, size float32, clr color.RGBA) {
	r := size / 4
	vector.FillCircle(screen, x+r, y+r, r, clr, true)
	vector.FillCircle(screen, x+3*r, y+r, r, clr, true)
	// Lower point as stacked strips narrowing toward the bottom.
	const strips = 6
	top := y + r
	stripH := (size - r) / strips
	for i := 0; i < strips; i++ {
		inset := float32(i) * (size / 2) / strips
		vector.FillRect(screen, x+inset, top+float32(i)*stripH, size-2*inset, stripH+0.5, clr, false)
	}
}
