package game

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestPerfLetterGrade(t *testing.T) {
	cases := map[float64]string{100: "A+", 93: "A+", 90: "A", 80: "B+", 72: "B", 65: "C+", 56: "C", 50: "D", 10: "F"}
	for score, want := range cases {
		if got := PerfLetterGrade(score); got != want {
			t.Fatalf("PerfLetterGrade(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestGradeRun_IdleDeathIsF(t *testing.T) {
	st := Stats{SurvivalSeconds: 20, HitsTaken: 5}
	g := GradeRun(st, false)
	if g.Grade != "F" {
		t.Fatalf("expected F, got %s (%.1f)", g.Grade, g.Score)
	}
	if g.AccuracyScore != -1 {
		t.Fatal("accuracy should be ungraded with no shots")
	}
	if !slices.Contains(g.BadTraits, "never_fired") || !slices.Contains(g.BadTraits, "died_early") {
		t.Fatalf("bad traits = %v", g.BadTraits)
	}
}

func TestGradeRun_StrongRun(t *testing.T) {
	st := Stats{
		SurvivalSeconds: 120,
		ShotsFired:      40,
		HitsLanded:      30,
		EnemiesKilled:   12,
		HitsTaken:       3,
		HeartsHealed:    3,
		PickupsConsumed: 3,
	}
	g := GradeRun(st, true)
	// accuracy 75, survival 100, lethality 100, sustain 100 -> 93.75, +5 capped at 100.
	if math.Abs(g.Score-98.75) > 1e-9 {
		t.Fatalf("score = %v", g.Score)
	}
	if g.Grade != "A+" {
		t.Fatalf("grade = %s", g.Grade)
	}
	for _, want := range []string{"marksman", "scavenger", "exterminator"} {
		if !slices.Contains(g.GoodTraits, want) {
			t.Fatalf("missing %q in %v", want, g.GoodTraits)
		}
	}
	if len(g.BadTraits) != 0 {
		t.Fatalf("unexpected bad traits %v", g.BadTraits)
	}
}

func TestFormatGradesSummary(t *testing.T) {
	grades := []RunGrade{
		{Score: 80, Survived: true, GoodTraits: []string{"marksman"}},
		{Score: 40, BadTraits: []string{"died_early"}},
		{Score: 60, GoodTraits: []string{"marksman", "scavenger"}},
	}
	out := FormatGradesSummary(grades)
	for _, want := range []string{"avg_score=60.0 (C)", "survived=1/3", "marksman(2), scavenger(1)", "died_early(1)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if !strings.Contains(FormatGradesSummary(nil), "no runs") {
		t.Fatal("empty summary should say so")
	}
}

func TestScenario_GradeFromAutopilotRun(t *testing.T) {
	ts := NewTestSim(WithClassicArena(), WithSeed(7))
	ts.RunPolicy(NewAutopilot().Decide, 60*30)
	g := GradeRun(ts.Last.Stats, !ts.Last.GameOver)
	if g.Score < 0 || g.Score > 100 {
		t.Fatalf("score out of range: %v", g.Score)
	}
	if !strings.Contains(g.Format(), "grade "+g.Grade) {
		t.Fatalf("format missing grade:\n%s", g.Format())
	}
}
