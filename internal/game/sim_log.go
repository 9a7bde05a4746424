package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a simulation run.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P" for the player, "E12" for enemy 12, "H3" for heart 3, "--" for global
	Category string  // combat, pickup, spawn, state
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] E3   combat    enemy_killed     hp 20 → 0
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a run. It is unbounded and
// machine-readable; tests and the headless report query it.
type SimLog struct {
	entries []SimLogEntry
}

// NewSimLog creates an empty SimLog.
func NewSimLog() *SimLog {
	return &SimLog{}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddEvent records a session event under its category.
func (sl *SimLog) AddEvent(ev Event) {
	switch ev.Kind {
	case EventEnemyHit:
		sl.Add(ev.Tick, enemyLabel(ev.ID), "combat", ev.Kind.String(), fmt.Sprintf("-%.0f hp", ev.Amount), ev.Amount)
	case EventEnemyKilled:
		sl.Add(ev.Tick, enemyLabel(ev.ID), "combat", ev.Kind.String(), fmt.Sprintf("at (%.0f,%.0f)", ev.Pos.X, ev.Pos.Y), ev.Amount)
	case EventPlayerHit:
		sl.Add(ev.Tick, "P", "combat", ev.Kind.String(), fmt.Sprintf("hearts left %.0f", ev.Amount), ev.Amount)
	case EventPlayerHealed:
		sl.Add(ev.Tick, "P", "pickup", ev.Kind.String(), "+1 heart", ev.Amount)
	case EventPickupConsumed:
		sl.Add(ev.Tick, heartLabel(ev.ID), "pickup", ev.Kind.String(), fmt.Sprintf("at (%.0f,%.0f)", ev.Pos.X, ev.Pos.Y), 0)
	case EventEnemySpawned:
		sl.Add(ev.Tick, enemyLabel(ev.ID), "spawn", ev.Kind.String(), fmt.Sprintf("at (%.0f,%.0f)", ev.Pos.X, ev.Pos.Y), 0)
	case EventPickupSpawned:
		sl.Add(ev.Tick, heartLabel(ev.ID), "spawn", ev.Kind.String(), fmt.Sprintf("at (%.0f,%.0f)", ev.Pos.X, ev.Pos.Y), 0)
	case EventGameOver:
		sl.Add(ev.Tick, "--", "state", "change", fmt.Sprintf("%s → %s", StateRunning, StateGameOver), 0)
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActor returns entries for a specific actor label.
func (sl *SimLog) FilterActor(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Actor == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (sl *SimLog) FirstOf(category, key string) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of a snapshot.
func Summary(snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d (%.1fs) ---\n", snap.Tick, snap.Elapsed)
	fmt.Fprintf(&sb, "state=%s hearts=%d/%d pos=(%.0f,%.0f) facing=%s\n",
		snap.State, snap.Player.Health, snap.Player.MaxHealth, snap.Player.Pos.X, snap.Player.Pos.Y, snap.Player.Facing)
	fmt.Fprintf(&sb, "enemies=%d bullets=%d pickups=%d\n", len(snap.Enemies), len(snap.Bullets), len(snap.Pickups))
	sb.WriteString(snap.Stats.Format())
	if snap.GameOver {
		sb.WriteString(GradeRun(snap.Stats, false).Format())
	}
	return sb.String()
}

func enemyLabel(id int) string { return fmt.Sprintf("E%d", id) }

func heartLabel(id int) string { return fmt.Sprintf("H%d", id) }
