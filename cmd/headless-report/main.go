package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Garsondee/Circle-Arena/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	id       string

	ticks    int
	gameOver bool

	shots    int
	hits     int
	kills    int
	distance float64
	accuracy float64
	score    float64

	hurtEvents    int
	spawnEvents   int
	despawnEvents int
	reloadEvents  int

	firstShotTick int
	firstKillTick int
	firstHurtTick int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var rate int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless bot runs")
	flag.IntVar(&ticks, "ticks", 3900, "maximum ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&rate, "rate", game.NominalTickRate, "simulation tick rate")
	flag.BoolVar(&verbose, "v", false, "log session transitions to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := game.DefaultConfigAt(rate)
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("runs=%d ticks=%d rate=%d seed_base=%d seed_step=%d\n\n", runs, ticks, cfg.TickRate, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runBot(i+1, seed, ticks, cfg, logger)
		all = append(all, rs)
		printRun(rs, cfg.TickRate)
	}

	printAggregate(all, cfg.TickRate)
}

// runBot plays one session with the scripted bot until game over or until
// maxTicks have elapsed.
func runBot(runIndex int, seed int64, maxTicks int, cfg game.Config, logger *slog.Logger) runStats {
	ts := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithSimSeed(seed),
		game.WithBot(game.Bot{}),
		game.WithSimLogger(logger),
	)
	if logger != nil {
		logger.Debug("run start", "run", runIndex, "seed", seed, "session_id", ts.Session.ID())
	}
	ts.RunUntil(func(ts *game.TestSim) bool {
		return ts.Session.State() == game.StateGameOver
	}, maxTicks)

	s := ts.Session
	st := s.Stats()
	log := ts.Log
	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		id:            s.ID(),
		ticks:         s.Tick(),
		gameOver:      s.State() == game.StateGameOver,
		shots:         st.Shots,
		hits:          st.Hits,
		kills:         st.Kills,
		distance:      st.Distance,
		accuracy:      st.Accuracy(),
		score:         st.Score(s.Tick(), s.Config().TickRate),
		hurtEvents:    log.Count(game.EventPlayerHurt),
		spawnEvents:   log.Count(game.EventSpawn),
		despawnEvents: log.Count(game.EventDespawn),
		reloadEvents:  log.Count(game.EventReloadStart),
		firstShotTick: log.FirstTick(game.EventShot),
		firstKillTick: log.FirstTick(game.EventKill),
		firstHurtTick: log.FirstTick(game.EventPlayerHurt),
	}
}

func outcome(rs runStats) string {
	if rs.gameOver {
		return "overrun"
	}
	return "survived"
}

func printRun(rs runStats, rate int) {
	fmt.Printf("--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, rs.id)
	fmt.Printf("outcome=%s ticks=%d seconds=%.1f grade=%s (%.1f)\n",
		outcome(rs), rs.ticks, float64(rs.ticks)/float64(rate), game.LetterGrade(rs.score), rs.score)
	fmt.Printf("combat: shots=%d hits=%d kills=%d accuracy=%.3f distance=%.0f\n",
		rs.shots, rs.hits, rs.kills, rs.accuracy, rs.distance)
	fmt.Printf("event_totals: player_hurt=%d spawn=%d despawn=%d reload=%d\n",
		rs.hurtEvents, rs.spawnEvents, rs.despawnEvents, rs.reloadEvents)
	fmt.Printf("phase_markers: first_shot=%d first_kill=%d first_hurt=%d\n",
		rs.firstShotTick, rs.firstKillTick, rs.firstHurtTick)
	fmt.Println()
}

func printAggregate(all []runStats, rate int) {
	totalShots := 0
	totalScore := 0.0
	totalHits := 0
	totalKills := 0
	totalHurt := 0
	totalDespawn := 0
	overrun := 0

	survivalTicks := make([]int, 0, len(all))
	killTicks := make([]int, 0, len(all))
	hurtTicks := make([]int, 0, len(all))

	for _, rs := range all {
		totalShots += rs.shots
		totalScore += rs.score
		totalHits += rs.hits
		totalKills += rs.kills
		totalHurt += rs.hurtEvents
		totalDespawn += rs.despawnEvents
		if rs.gameOver {
			overrun++
			survivalTicks = append(survivalTicks, rs.ticks)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstHurtTick >= 0 {
			hurtTicks = append(hurtTicks, rs.firstHurtTick)
		}
	}

	pooled := game.Stats{Shots: totalShots, Hits: totalHits}
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d overrun=%d survived=%d\n", len(all), overrun, len(all)-overrun)
	fmt.Printf("avg_per_run: shots=%.1f hits=%.1f kills=%.1f player_hurt=%.1f despawn=%.1f\n",
		avg(totalShots, len(all)), avg(totalHits, len(all)), avg(totalKills, len(all)),
		avg(totalHurt, len(all)), avg(totalDespawn, len(all)))
	fmt.Printf("pooled_accuracy=%.3f\n", pooled.Accuracy())
	avgScore := totalScore / float64(len(all))
	fmt.Printf("avg_grade=%s (%.1f)\n", game.LetterGrade(avgScore), avgScore)
	fmt.Printf("phase_marker_avg_ticks: game_over=%s first_kill=%s first_hurt=%s\n",
		avgTickString(survivalTicks), avgTickString(killTicks), avgTickString(hurtTicks))
	if len(survivalTicks) > 0 {
		sum := 0
		for _, v := range survivalTicks {
			sum += v
		}
		fmt.Printf("avg_survival_seconds=%.1f\n", float64(sum)/float64(len(survivalTicks))/float64(rate))
	}
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
