package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spyrun/arena/internal/game"
)

const (
	feedPanelWidth = 250
	feedMaxEntries = 40
	feedLineHeight = 14
	feedVisible    = 8
)

// FeedEntry is a single line in the combat feed.
type FeedEntry struct {
	Tick    int
	Kind    game.EventKind
	Message string
}

// CombatFeed is a ring buffer of recent session events rendered on-screen.
type CombatFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewCombatFeed creates a feed with a fixed capacity.
func NewCombatFeed() *CombatFeed {
	return &CombatFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an event to the feed, overwriting the oldest entry when full.
func (cf *CombatFeed) Add(ev game.Event) {
	cf.entries[cf.head] = FeedEntry{
		Tick:    ev.Tick,
		Kind:    ev.Kind,
		Message: feedMessage(ev),
	}
	cf.head = (cf.head + 1) % feedMaxEntries
	if cf.count < feedMaxEntries {
		cf.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (cf *CombatFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, cf.count)
	for i := 0; i < cf.count; i++ {
		idx := (cf.head - cf.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = cf.entries[idx]
	}
	return result
}

func feedMessage(ev game.Event) string {
	switch ev.Kind {
	case game.EventEnemyHit:
		return fmt.Sprintf("hit E%d for %.0f", ev.ID, ev.Amount)
	case game.EventEnemyKilled:
		return fmt.Sprintf("E%d down", ev.ID)
	case game.EventPlayerHit:
		return fmt.Sprintf("you're hit, %.0f left", ev.Amount)
	case game.EventPlayerHealed:
		return "+1 heart"
	case game.EventPickupConsumed:
		return fmt.Sprintf("picked up H%d", ev.ID)
	case game.EventEnemySpawned:
		return fmt.Sprintf("E%d arrives", ev.ID)
	case game.EventPickupSpawned:
		return fmt.Sprintf("H%d dropped", ev.ID)
	case game.EventGameOver:
		return "game over"
	default:
		return ev.Kind.String()
	}
}

// feedColors tints each line by what kind of event it is.
var feedColors = map[game.EventKind]color.RGBA{
	game.EventEnemyHit:       {R: 230, G: 200, B: 120, A: 255},
	game.EventEnemyKilled:    {R: 255, G: 140, B: 60, A: 255},
	game.EventPlayerHit:      {R: 240, G: 80, B: 80, A: 255},
	game.EventPlayerHealed:   {R: 120, G: 230, B: 120, A: 255},
	game.EventPickupConsumed: {R: 150, G: 210, B: 150, A: 255},
	game.EventEnemySpawned:   {R: 170, G: 170, B: 190, A: 255},
	game.EventPickupSpawned:  {R: 170, G: 190, B: 170, A: 255},
	game.EventGameOver:       {R: 255, G: 60, B: 60, A: 255},
}

// Draw renders the newest entries in a panel anchored at the bottom-right
// corner of the screen.
func (cf *CombatFeed) Draw(screen *ebiten.Image, face text.Face, screenW, screenH int) {
	entries := cf.Recent()
	if len(entries) > feedVisible {
		entries = entries[len(entries)-feedVisible:]
	}
	if len(entries) == 0 {
		return
	}

	panelH := len(entries)*feedLineHeight + 8
	x := float32(screenW - feedPanelWidth - 8)
	y := float32(screenH - panelH - 8)
	vector.FillRect(screen, x, y, feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 12, B: 10, A: 190}, false)
	vector.StrokeRect(screen, x, y, feedPanelWidth, float32(panelH), 1.0, color.RGBA{R: 60, G: 80, B: 60, A: 200}, false)

	// Newest at the bottom.
	ty := float64(y) + 4
	for _, e := range entries {
		clr, ok := feedColors[e.Kind]
		if !ok {
			clr = color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+6, ty)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), face, op)
		ty += feedLineHeight
	}
}
