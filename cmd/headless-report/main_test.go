package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spyrun/arena/internal/game"
)

func TestFirstTick(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 3, Category: "combat", Key: "enemy_hit", Value: "-20 hp"},
		{Tick: 9, Category: "state", Key: "change", Value: "running → game_over"},
		{Tick: 12, Category: "combat", Key: "enemy_hit", Value: "-20 hp"},
	}
	if got := firstTick(entries, "combat", "enemy_hit", ""); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := firstTick(entries, "state", "change", "game_over"); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := firstTick(entries, "pickup", "player_healed", ""); got != -1 {
		t.Fatalf("expected -1 for a missing marker, got %d", got)
	}
}

func TestAvgHelpers(t *testing.T) {
	if got := avg(10, 4); got != 2.5 {
		t.Fatalf("avg(10,4) = %v", got)
	}
	if got := avg(10, 0); got != 0 {
		t.Fatalf("avg with no runs = %v", got)
	}
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("empty avgTickString = %q", got)
	}
	if got := avgTickString([]int{10, 20}); got != "15.0" {
		t.Fatalf("avgTickString = %q", got)
	}
}

func TestJoinSet(t *testing.T) {
	if got := joinSet(nil); got != "none" {
		t.Fatalf("empty set = %q", got)
	}
	got := joinSet(map[string]struct{}{"E7": {}, "E2": {}, "E10": {}})
	if got != "E10,E2,E7" {
		t.Fatalf("joinSet = %q", got)
	}
}

func TestRunAll_DeterministicAndOrdered(t *testing.T) {
	cfg := game.DefaultConfig()
	a, err := runAll(context.Background(), cfg, "autopilot", 4, 600, 100, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runAll(context.Background(), cfg, "autopilot", 4, 600, 100, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].runIndex != i+1 || a[i].seed != 100+int64(i)*3 {
			t.Fatalf("run %d out of order: index=%d seed=%d", i, a[i].runIndex, a[i].seed)
		}
		if a[i].stats != b[i].stats {
			t.Fatalf("run %d differs between concurrent and serial execution:\n%s\nvs\n%s",
				i+1, a[i].stats.Format(), b[i].stats.Format())
		}
	}
}

func TestRunAll_InvalidConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.World.Width = -1
	_, err := runAll(context.Background(), cfg, "idle", 2, 10, 1, 1, 2)
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunArena_IdlePlayerEventuallyDies(t *testing.T) {
	rs, err := runArena(1, 42, 60*60, game.DefaultConfig(), policies["idle"]())
	if err != nil {
		t.Fatal(err)
	}
	if !rs.gameOver || rs.hearts != 0 {
		t.Fatalf("an idle player in the classic arena should die within a minute: %+v", rs.stats)
	}
	if rs.gameOverTick != rs.ticks {
		t.Fatalf("game over marker %d should match the final tick %d", rs.gameOverTick, rs.ticks)
	}
	if rs.stats.ShotsFired != 0 {
		t.Fatal("idle player should never fire")
	}
}
