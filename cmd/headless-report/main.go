package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/spyrun/arena/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	ticks    int
	elapsed  float64
	gameOver bool
	hearts   int

	firstHitTick   int // first enemy hit landed by the player
	firstKillTick  int
	firstDamage    int // first heart lost
	firstHealTick  int
	gameOverTick   int
	peakEnemyCount int

	killed        map[string]struct{}
	stats         game.Stats
	windowSummary *game.WindowReport
	grade         game.RunGrade
}

// policies are the scripted players a run can be driven by.
var policies = map[string]func() func(game.Snapshot) game.Input{
	"autopilot": func() func(game.Snapshot) game.Input { return game.NewAutopilot().Decide },
	"idle":      func() func(game.Snapshot) game.Input { return func(game.Snapshot) game.Input { return game.Input{} } },
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var policy string
	var configPath string
	var concurrency int
	var logLevel string

	flag.IntVar(&runs, "runs", 5, "number of headless arena runs")
	flag.IntVar(&ticks, "ticks", 3600, "max ticks per run (60 ticks = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policy, "policy", "autopilot", "player policy (autopilot, idle)")
	flag.StringVar(&configPath, "config", "", "arena YAML config (defaults when empty or missing)")
	flag.IntVar(&concurrency, "concurrency", 4, "runs simulated in parallel")
	flag.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Printf("error: bad -log-level: %v\n", err)
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if concurrency <= 0 {
		fmt.Println("error: -concurrency must be > 0")
		return
	}
	if _, ok := policies[policy]; !ok {
		fmt.Printf("error: unsupported policy %q (supported: %s)\n", policy, policyNames())
		return
	}
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("policy=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", policy, runs, ticks, seedBase, seedStep)

	all, err := runAll(context.Background(), cfg, policy, runs, ticks, seedBase, seedStep, concurrency)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

// runAll simulates every seed with at most concurrency runs in flight.
// Results come back in run order regardless of completion order.
func runAll(ctx context.Context, cfg game.Config, policy string, runs, ticks int, seedBase, seedStep int64, concurrency int) ([]runStats, error) {
	all := make([]runStats, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rs, err := runArena(i+1, seed, ticks, cfg, policies[policy]())
			if err != nil {
				return fmt.Errorf("run %d (seed=%d): %w", i+1, seed, err)
			}
			all[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runArena(runIndex int, seed int64, ticks int, cfg game.Config, policy func(game.Snapshot) game.Input) (runStats, error) {
	if err := cfg.Validate(); err != nil {
		return runStats{}, err
	}
	ts := game.NewTestSim(
		game.WithConfig(func(c *game.Config) { *c = cfg }),
		game.WithSeed(seed),
	)

	reporter := game.NewSimReporter(0)
	peak := len(ts.Last.Enemies)
	ts.RunPolicy(func(s game.Snapshot) game.Input {
		if len(s.Enemies) > peak {
			peak = len(s.Enemies)
		}
		if s.Tick%60 == 0 {
			reporter.Collect(s)
		}
		return policy(s)
	}, ticks)
	reporter.Collect(ts.Last)
	slog.Debug("run finished", "run", runIndex, "seed", seed, "session", ts.Session.ID(), "tick", ts.Last.Tick)

	entries := ts.SimLog.Entries()
	killed := map[string]struct{}{}
	for _, e := range ts.SimLog.Filter("combat", "enemy_killed") {
		killed[e.Actor] = struct{}{}
	}
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		ticks:          ts.Last.Tick,
		elapsed:        ts.Last.Elapsed,
		gameOver:       ts.Last.GameOver,
		hearts:         ts.Last.Player.Health,
		firstHitTick:   firstTick(entries, "combat", "enemy_hit", ""),
		firstKillTick:  firstTick(entries, "combat", "enemy_killed", ""),
		firstDamage:    firstTick(entries, "combat", "player_hit", ""),
		firstHealTick:  firstTick(entries, "pickup", "player_healed", ""),
		gameOverTick:   firstTick(entries, "state", "change", "game_over"),
		peakEnemyCount: peak,
		killed:         killed,
		stats:          ts.Last.Stats,
		windowSummary:  reporter.WindowSummary(),
		grade:          game.GradeRun(ts.Last.Stats, !ts.Last.GameOver),
	}, nil
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	outcome := "survived"
	if rs.gameOver {
		outcome = "game_over"
	}
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s ticks=%d elapsed=%.1fs hearts_left=%d peak_enemies=%d\n",
		outcome, rs.ticks, rs.elapsed, rs.hearts, rs.peakEnemyCount)
	fmt.Printf("phase_markers: first_hit=%d first_kill=%d first_damage=%d first_heal=%d game_over=%d\n",
		rs.firstHitTick, rs.firstKillTick, rs.firstDamage, rs.firstHealTick, rs.gameOverTick)
	fmt.Printf("killed_labels: %s\n", joinSet(rs.killed))
	fmt.Print(rs.stats.Format())
	fmt.Print(rs.grade.Format())
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalShots := 0
	totalLanded := 0
	totalKills := 0
	totalTaken := 0
	totalHealed := 0
	totalCulled := 0
	gameOvers := 0
	survival := 0.0

	grades := make([]game.RunGrade, 0, len(all))
	killTicks := make([]int, 0, len(all))
	damageTicks := make([]int, 0, len(all))
	gameOverTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalShots += rs.stats.ShotsFired
		totalLanded += rs.stats.HitsLanded
		totalKills += rs.stats.EnemiesKilled
		totalTaken += rs.stats.HitsTaken
		totalHealed += rs.stats.HeartsHealed
		totalCulled += rs.stats.BulletsCulled
		survival += rs.elapsed
		grades = append(grades, rs.grade)
		if rs.gameOver {
			gameOvers++
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstDamage >= 0 {
			damageTicks = append(damageTicks, rs.firstDamage)
		}
		if rs.gameOverTick >= 0 {
			gameOverTicks = append(gameOverTicks, rs.gameOverTick)
		}
	}

	accuracy := 0.0
	if totalShots > 0 {
		accuracy = float64(totalLanded) / float64(totalShots) * 100
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d game_overs=%d avg_survival=%.1fs\n", len(all), gameOvers, survival/float64(max(len(all), 1)))
	fmt.Printf("avg_per_run: shots=%.1f kills=%.1f hits_taken=%.1f hearts_healed=%.1f bullets_culled=%.1f\n",
		avg(totalShots, len(all)), avg(totalKills, len(all)), avg(totalTaken, len(all)), avg(totalHealed, len(all)), avg(totalCulled, len(all)))
	fmt.Printf("accuracy=%.0f%%\n", accuracy)
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s first_damage=%s game_over=%s\n",
		avgTickString(killTicks), avgTickString(damageTicks), avgTickString(gameOverTicks))
	fmt.Print(game.FormatGradesSummary(grades))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func policyNames() string {
	names := make([]string, 0, len(policies))
	for k := range policies {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
