package game

import (
	"fmt"
	"math"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-pressure reports (~10s at 60TPS).
const reportWindowTicks = 600

// threatRadius is how close an enemy must be to count as pressing the player.
const threatRadius = 300

// ArenaReport is a sample of the session at one tick.
type ArenaReport struct {
	Tick int

	Hearts        int
	Enemies       int
	EnemiesNear   int // within threatRadius of the player
	EnemiesPinned int // direct path to the player runs through a desk
	PlayerBullets int
	EnemyBullets  int
	Pickups       int

	// NearestEnemy is the distance to the closest enemy, or -1 with none alive.
	NearestEnemy float64
}

// SimReporter collects periodic samples from a session and can produce
// summaries over sliding time windows.
type SimReporter struct {
	history     []ArenaReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect samples a snapshot.
// Call this periodically (e.g. every 60 ticks / 1s).
func (r *SimReporter) Collect(snap Snapshot) {
	report := ArenaReport{
		Tick:         snap.Tick,
		Hearts:       snap.Player.Health,
		Enemies:      len(snap.Enemies),
		Pickups:      len(snap.Pickups),
		NearestEnemy: -1,
	}
	nearest := math.Inf(1)
	for _, e := range snap.Enemies {
		d := math.Sqrt(DistSq(e.Pos, snap.Player.Pos))
		if d < nearest {
			nearest = d
		}
		if d < threatRadius {
			report.EnemiesNear++
		}
		if !PathClear(e.Pos, snap.Player.Pos, snap.Obstacles) {
			report.EnemiesPinned++
		}
	}
	if !math.IsInf(nearest, 1) {
		report.NearestEnemy = nearest
	}
	for _, b := range snap.Bullets {
		if b.Owner == OwnerPlayer {
			report.PlayerBullets++
		} else {
			report.EnemyBullets++
		}
	}
	r.history = append(r.history, report)
}

// Latest returns the most recent report, or nil if none collected yet.
func (r *SimReporter) Latest() *ArenaReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// WindowSummary returns an aggregated summary over the recent time window.
func (r *SimReporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	// Find reports within the window.
	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []ArenaReport
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	wr := &WindowReport{
		FromTick:    window[len(window)-1].Tick,
		ToTick:      window[0].Tick,
		SampleCount: len(window),
		MinHearts:   window[0].Hearts,
	}
	ranged := 0
	for _, rpt := range window {
		wr.AvgHearts += float64(rpt.Hearts)
		wr.AvgEnemies += float64(rpt.Enemies)
		wr.AvgEnemiesNear += float64(rpt.EnemiesNear)
		wr.AvgEnemiesPinned += float64(rpt.EnemiesPinned)
		wr.AvgPlayerBullets += float64(rpt.PlayerBullets)
		wr.AvgEnemyBullets += float64(rpt.EnemyBullets)
		wr.AvgPickups += float64(rpt.Pickups)
		if rpt.NearestEnemy >= 0 {
			wr.AvgNearestEnemy += rpt.NearestEnemy
			ranged++
		}
		if rpt.Hearts < wr.MinHearts {
			wr.MinHearts = rpt.Hearts
		}
	}

	wr.AvgHearts /= n
	wr.AvgEnemies /= n
	wr.AvgEnemiesNear /= n
	wr.AvgEnemiesPinned /= n
	wr.AvgPlayerBullets /= n
	wr.AvgEnemyBullets /= n
	wr.AvgPickups /= n
	if ranged > 0 {
		wr.AvgNearestEnemy /= float64(ranged)
	} else {
		wr.AvgNearestEnemy = -1
	}
	return wr
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	// Averages over the window.
	AvgHearts                         float64
	AvgEnemies, AvgEnemiesNear        float64
	AvgEnemiesPinned                  float64
	AvgPlayerBullets, AvgEnemyBullets float64
	AvgPickups                        float64
	AvgNearestEnemy                   float64 // -1 when no enemy was alive in any sample

	MinHearts int
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Pressure Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  hearts: avg=%.1f min=%d\n", wr.AvgHearts, wr.MinHearts)
	fmt.Fprintf(&sb, "  enemies: avg=%.1f near=%.1f pinned=%.1f nearest=%.0f (%s)\n",
		wr.AvgEnemies, wr.AvgEnemiesNear, wr.AvgEnemiesPinned, wr.AvgNearestEnemy, pressureLabel(wr.AvgNearestEnemy))
	fmt.Fprintf(&sb, "  bullets in flight: player=%.1f enemy=%.1f\n", wr.AvgPlayerBullets, wr.AvgEnemyBullets)
	fmt.Fprintf(&sb, "  hearts on floor: %.1f\n", wr.AvgPickups)
	return sb.String()
}

func pressureLabel(nearest float64) string {
	switch {
	case nearest < 0:
		return "clear"
	case nearest < 60:
		return "overrun"
	case nearest < 150:
		return "close quarters"
	case nearest < threatRadius:
		return "pressed"
	case nearest < 700:
		return "contested"
	default:
		return "distant"
	}
}

// History returns all collected reports.
func (r *SimReporter) History() []ArenaReport {
	return r.history
}
