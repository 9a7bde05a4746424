package view

import (
	"time"

	"github.com/atotto/clipboard"

	"github.com/spyrun/arena/internal/game"
)

const statusDuration = 2 * time.Second

// copyReport puts a plain-text run summary on the system clipboard. Failure
// only costs the copy; the session is never touched.
func (g *Game) copyReport() {
	report := game.Summary(g.snap)
	if clipboard.Unsupported {
		g.log.Warn("clipboard unsupported on this platform")
		g.flash("clipboard unavailable")
		return
	}
	if err := clipboard.WriteAll(report); err != nil {
		g.log.Warn("failed to copy report", "err", err)
		g.flash("copy failed")
		return
	}
	g.log.Info("report copied", "tick", g.snap.Tick)
	g.flash("report copied")
}

// flash shows a short status line under the HUD.
func (g *Game) flash(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
}
