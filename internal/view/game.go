// Package view is the ebiten frontend for an arena session: it turns
// keyboard and mouse state into game.Input, advances the session once per
// frame and draws the resulting snapshot.
package view

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/spyrun/arena/internal/game"
)

// Game implements ebiten.Game around a single session.
type Game struct {
	session *game.Session
	cfg     game.Config
	desks   []game.Obstacle
	log     *slog.Logger

	snap      game.Snapshot
	cam       game.Vec2 // world-space top-left of the viewport
	viewW     int
	viewH     int
	lastFrame time.Time

	feed          *CombatFeed
	lastEventTick int // dedupes events of a frozen session
	face          text.Face

	showFeed    bool
	showHelp    bool
	status      string
	statusUntil time.Time
}

// New wraps session in an ebiten.Game sized to the session's viewport.
func New(session *game.Session) *Game {
	cfg := session.Config()
	g := &Game{
		session:       session,
		cfg:           cfg,
		desks:         session.Obstacles(),
		log:           slog.Default().With("session", session.ID()),
		viewW:         cfg.World.ViewWidth,
		viewH:         cfg.World.ViewHeight,
		lastFrame:     time.Now(),
		feed:          NewCombatFeed(),
		lastEventTick: -1,
		face:          text.NewGoXFace(basicfont.Face7x13),
		showFeed:      true,
		showHelp:      true,
	}
	g.absorb(session.Snapshot())
	return g
}

// Update advances the session by the real time since the previous frame.
// The session clamps long stalls itself.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now

	g.handleKeys()
	g.absorb(g.session.Tick(dt, g.readInput()))

	if g.status != "" && now.After(g.statusUntil) {
		g.status = ""
	}
	return nil
}

// readInput maps held movement keys to intent and a fresh left click to a
// shot at the cursor's world position.
func (g *Game) readInput() game.Input {
	in := game.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.Fire = true
		in.Target = game.V(float64(mx)+g.cam.X, float64(my)+g.cam.Y)
	}
	return in
}

// handleKeys processes the edge-triggered UI toggles.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.showFeed = !g.showFeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
}

// absorb stores the latest snapshot, feeds its events once and recentres
// the camera.
func (g *Game) absorb(snap game.Snapshot) {
	g.snap = snap
	if snap.Tick != g.lastEventTick {
		for _, ev := range snap.Events {
			g.feed.Add(ev)
		}
		g.lastEventTick = snap.Tick
	}
	g.cam = CameraOffset(snap.Player.Pos, g.cfg.World.Width, g.cfg.World.Height, g.viewW, g.viewH)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.snap.GameOver {
		g.drawGameOver(screen)
	}
	g.drawHUD(screen)
	if g.showFeed {
		g.feed.Draw(screen, g.face, g.viewW, g.viewH)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.viewW, g.viewH
}
