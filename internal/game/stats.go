package game

import (
	"fmt"
	"strings"
)

// Stats tallies what happened over a session. It only ever grows.
type Stats struct {
	Ticks           int
	SurvivalSeconds float64

	ShotsFired      int // player bullets that left the barrel
	EnemyShotsFired int
	Misfires        int // dead-on-arrival bullets that were discarded
	HitsLanded      int // player bullets that struck an enemy
	HitsTaken       int // enemy bullets that struck the player
	BulletsCulled   int

	EnemiesSpawned int
	EnemiesKilled  int

	PickupsSpawned  int
	PickupsConsumed int
	HeartsHealed    int
}

// record folds one event into the tallies.
func (s *Stats) record(ev Event) {
	switch ev.Kind {
	case EventEnemyHit:
		s.HitsLanded++
	case EventEnemyKilled:
		s.HitsLanded++
		s.EnemiesKilled++
	case EventPlayerHit:
		s.HitsTaken++
	case EventPlayerHealed:
		s.HeartsHealed++
	case EventPickupConsumed:
		s.PickupsConsumed++
	case EventEnemySpawned:
		s.EnemiesSpawned++
	case EventPickupSpawned:
		s.PickupsSpawned++
	}
}

// Accuracy is the fraction of player shots that hit, or 0 before any shot.
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.HitsLanded) / float64(s.ShotsFired)
}

// Format renders the stats as a short multi-line block.
func (s Stats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "survived=%.1fs ticks=%d\n", s.SurvivalSeconds, s.Ticks)
	fmt.Fprintf(&sb, "shots: fired=%d landed=%d accuracy=%.0f%% misfires=%d culled=%d\n",
		s.ShotsFired, s.HitsLanded, s.Accuracy()*100, s.Misfires, s.BulletsCulled)
	fmt.Fprintf(&sb, "enemies: spawned=%d killed=%d shots=%d hits_taken=%d\n",
		s.EnemiesSpawned, s.EnemiesKilled, s.EnemyShotsFired, s.HitsTaken)
	fmt.Fprintf(&sb, "hearts: spawned=%d consumed=%d healed=%d\n",
		s.PickupsSpawned, s.PickupsConsumed, s.HeartsHealed)
	return sb.String()
}
