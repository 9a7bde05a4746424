package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudHeartSize = 20
	hudHeartGap  = 6
	hudPad       = 10
	bannerScale  = 5
)

var (
	emptyHeart  = color.RGBA{R: 70, G: 40, B: 45, A: 220}
	hudText     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	hudDim      = color.RGBA{R: 150, G: 160, B: 150, A: 255}
	bannerColor = color.RGBA{R: 240, G: 50, B: 50, A: 255}
	dimOverlay  = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.snap.Player
	for i := 0; i < p.MaxHealth; i++ {
		clr := heartColor
		if i >= p.Health {
			clr = emptyHeart
		}
		x := float32(hudPad + i*(hudHeartSize+hudHeartGap))
		drawHeart(screen, x, hudPad, hudHeartSize, clr)
	}

	s := g.snap.Stats
	g.drawText(screen, fmt.Sprintf("%.1fs  kills %d  enemies %d", s.SurvivalSeconds, s.EnemiesKilled, len(g.snap.Enemies)),
		hudPad, hudPad+hudHeartSize+6, hudText)
	if g.showHelp {
		g.drawText(screen, "WASD move  click fire  C copy report  F feed  H help", hudPad, float64(g.viewH)-hudPad-13, hudDim)
	}
	if g.status != "" {
		g.drawText(screen, g.status, hudPad, hudPad+hudHeartSize+24, hudDim)
	}
}

// drawGameOver dims the frozen arena and stamps a banner across the middle.
func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.viewW), float32(g.viewH), dimOverlay, false)

	const msg = "GAME OVER"
	w, h := text.Measure(msg, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate((float64(g.viewW)-w*bannerScale)/2, (float64(g.viewH)-h*bannerScale)/2)
	op.ColorScale.ScaleWithColor(bannerColor)
	text.Draw(screen, msg, g.face, op)

	sub := fmt.Sprintf("survived %.1fs, %d kills", g.snap.Stats.SurvivalSeconds, g.snap.Stats.EnemiesKilled)
	sw, _ := text.Measure(sub, g.face, 0)
	g.drawText(screen, sub, (float64(g.viewW)-sw)/2, (float64(g.viewH)+h*bannerScale)/2+12, hudText)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}
