package game

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Performance grading thresholds.
const (
	perfMinShots         = 10    // below this accuracy is not graded
	perfSurvivalTarget   = 120.0 // seconds for a full survival score
	perfKillsPerMinuteA  = 6.0   // kill rate worth a full lethality score
	perfMinSustainEvents = 3
)

// RunGrade is the computed performance grade for one run.
type RunGrade struct {
	Grade    string  // A+, A, B+, B, C+, C, D, F
	Score    float64 // 0-100
	Survived bool

	// Situation scores (0-100; -1 = not enough data to grade).
	AccuracyScore  float64
	SurvivalScore  float64
	LethalityScore float64
	SustainScore   float64

	GoodTraits []string
	BadTraits  []string
}

// GradeRun scores a finished (or cut short) run from its stats.
func GradeRun(st Stats, survived bool) RunGrade {
	g := RunGrade{
		Survived:       survived,
		AccuracyScore:  -1,
		SustainScore:   -1,
		SurvivalScore:  perfClamp(st.SurvivalSeconds / perfSurvivalTarget * 100),
		LethalityScore: 0,
	}

	if st.ShotsFired >= perfMinShots {
		g.AccuracyScore = perfClamp(st.Accuracy() * 100)
	}
	if st.SurvivalSeconds > 0 {
		perMinute := float64(st.EnemiesKilled) / (st.SurvivalSeconds / 60)
		g.LethalityScore = perfClamp(perMinute / perfKillsPerMinuteA * 100)
	}
	if st.HitsTaken+st.HeartsHealed >= perfMinSustainEvents {
		g.SustainScore = perfClamp(perfFrac(st.HeartsHealed, st.HitsTaken) * 100)
	}

	sum, n := 0.0, 0
	for _, s := range []float64{g.AccuracyScore, g.SurvivalScore, g.LethalityScore, g.SustainScore} {
		if s >= 0 {
			sum += s
			n++
		}
	}
	g.Score = sum / float64(n)
	if survived {
		g.Score = math.Min(100, g.Score+5)
	}

	g.Grade = PerfLetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = perfDetectTraits(st, survived)
	return g
}

func perfDetectTraits(st Stats, survived bool) (good, bad []string) {
	acc := st.Accuracy()

	if st.ShotsFired >= perfMinShots && acc > 0.6 {
		good = append(good, "marksman")
	}
	if st.HeartsHealed >= 3 {
		good = append(good, "scavenger")
	}
	if survived && st.HitsTaken == 0 {
		good = append(good, "untouched")
	}
	if st.EnemiesKilled >= 5 {
		good = append(good, "exterminator")
	}

	if st.ShotsFired >= perfMinShots && acc < 0.2 {
		bad = append(bad, "spray_and_pray")
	}
	if st.ShotsFired == 0 {
		bad = append(bad, "never_fired")
	}
	if !survived && st.SurvivalSeconds < 30 {
		bad = append(bad, "died_early")
	}
	if st.PickupsConsumed > st.HeartsHealed+2 {
		bad = append(bad, "wasted_hearts")
	}
	return
}

// Format returns a one-block human-readable grade.
func (g RunGrade) Format() string {
	var sb strings.Builder
	status := "survived"
	if !g.Survived {
		status = "KIA"
	}
	fmt.Fprintf(&sb, "  grade %-3s score=%.0f [%s]\n", g.Grade, g.Score, status)

	var scores []string
	if g.AccuracyScore >= 0 {
		scores = append(scores, fmt.Sprintf("Accuracy=%.0f", g.AccuracyScore))
	}
	scores = append(scores, fmt.Sprintf("Survival=%.0f", g.SurvivalScore))
	scores = append(scores, fmt.Sprintf("Lethality=%.0f", g.LethalityScore))
	if g.SustainScore >= 0 {
		scores = append(scores, fmt.Sprintf("Sustain=%.0f", g.SustainScore))
	}
	fmt.Fprintf(&sb, "    Scores: %s\n", strings.Join(scores, "  "))

	if len(g.GoodTraits) > 0 {
		fmt.Fprintf(&sb, "    Good: %s\n", strings.Join(g.GoodTraits, ", "))
	}
	if len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "    Bad:  %s\n", strings.Join(g.BadTraits, ", "))
	}
	return sb.String()
}

// FormatGradesSummary returns a compact summary over several runs.
func FormatGradesSummary(grades []RunGrade) string {
	if len(grades) == 0 {
		return "  no runs graded\n"
	}
	var sb strings.Builder
	scoreSum := 0.0
	survived := 0
	goodCount := map[string]int{}
	badCount := map[string]int{}
	for _, g := range grades {
		scoreSum += g.Score
		if g.Survived {
			survived++
		}
		for _, t := range g.GoodTraits {
			goodCount[t]++
		}
		for _, t := range g.BadTraits {
			badCount[t]++
		}
	}
	avg := scoreSum / float64(len(grades))
	fmt.Fprintf(&sb, "  avg_score=%.1f (%s)  survived=%d/%d\n", avg, PerfLetterGrade(avg), survived, len(grades))
	if len(goodCount) > 0 {
		fmt.Fprintf(&sb, "    Top good: %s\n", perfTopTraits(goodCount, 4))
	}
	if len(badCount) > 0 {
		fmt.Fprintf(&sb, "    Top bad:  %s\n", perfTopTraits(badCount, 4))
	}
	return sb.String()
}

func perfFrac(num, denom int) float64 {
	if denom <= 0 {
		if num > 0 {
			return 1
		}
		return 0
	}
	return float64(num) / float64(denom)
}

func perfClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PerfLetterGrade maps a 0-100 score to a letter grade.
func PerfLetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// perfTopTraits lists the n most common traits, ties broken by name.
func perfTopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
