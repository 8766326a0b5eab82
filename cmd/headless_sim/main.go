// headless_sim 无窗口运行若干局对局，自动打击与自动选择升级奖励，输出每局报告
//
// 用法:
//
//	go run ./cmd/headless_sim -runs 3 -ticks 36000 -seed-base 7
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/session"
)

const tickRate = 60

type runOptions struct {
	ticks       int
	strikeEvery int
	difficulty  string
}

type runResult struct {
	seed     int64
	ticks    int
	gameOver bool
	breached []components.Side
	rewards  map[session.Reward]int
	report   game.SessionReport
}

func main() {
	var runs int
	var ticks int
	var strikeEvery int
	var seedBase int64
	var seedStep int64
	var configPath string
	var difficulty string
	var verbose bool

	flag.IntVar(&runs, "runs", 3, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 36000, "max ticks per run (60 ticks = 1s)")
	flag.IntVar(&strikeEvery, "strike-every", 20, "ticks between automatic strikes (0 disables)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&difficulty, "difficulty", config.DifficultyNormal, "easy, normal or hard")
	flag.StringVar(&configPath, "config", "", "game config yaml (defaults to built-in values)")
	flag.BoolVar(&verbose, "verbose", false, "write engine logs to stderr")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}
	if !config.IsDifficulty(difficulty) {
		fmt.Printf("error: unsupported difficulty %q (supported: %v)\n", difficulty, config.DifficultyLevels)
		os.Exit(2)
	}
	if verbose {
		if err := logger.InitLogger(logger.Options{Verbose: true}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		}
		defer logger.SyncLogger()
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfigFile(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	fmt.Printf("=== Four Walls headless report ===\n")
	fmt.Printf("runs=%d ticks=%d strike_every=%d difficulty=%s seed_base=%d seed_step=%d\n\n", runs, ticks, strikeEvery, difficulty, seedBase, seedStep)

	opts := runOptions{ticks: ticks, strikeEvery: strikeEvery, difficulty: difficulty}
	results := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		res, err := simulate(cfg, seed, opts)
		if err != nil {
			fmt.Printf("run %d: error: %v\n", i+1, err)
			os.Exit(1)
		}
		results = append(results, res)
		printRun(i+1, res)
	}
	printSummary(results)
}

// simulate 运行一局，直到 GameOver 或达到 tick 上限
func simulate(cfg *config.GameConfig, seed int64, opts runOptions) (runResult, error) {
	s := session.New(cfg, rand.New(rand.NewSource(seed)))
	if opts.difficulty != "" {
		if err := s.SetDifficulty(opts.difficulty); err != nil {
			return runResult{}, err
		}
	}
	if err := s.Setup(); err != nil {
		return runResult{}, err
	}
	defer s.Teardown()

	res := runResult{seed: seed, rewards: make(map[session.Reward]int)}
	s.State().OnEnter(game.GameStateGameOver, func(game.GameState) {
		res.gameOver = true
		res.report = s.Report()
	})

	dt := 1.0 / tickRate
	for res.ticks < opts.ticks && !res.gameOver {
		if s.State().Is(game.GameStateLevelUp) {
			r := pickReward(s)
			if err := s.ChooseReward(r); err != nil {
				return res, err
			}
			res.rewards[r]++
		}
		if opts.strikeEvery > 0 && res.ticks%opts.strikeEvery == 0 {
			if x, y, ok := nearestEnemy(s.EntityManager()); ok {
				s.StrikeAt(x, y)
			}
		}
		s.Update(dt)
		res.ticks++
	}

	if !res.gameOver {
		res.report = s.Report()
	}
	for _, side := range components.AllSides {
		if res.report.Sides[side].Destroyed {
			res.breached = append(res.breached, side)
		}
	}
	return res, nil
}

// pickReward 城墙受损过半时修复，否则加固
func pickReward(s *session.Session) session.Reward {
	for _, side := range components.AllSides {
		w := s.Wall(side)
		if w.Health*2 < w.MaxHealth {
			return session.RewardRepairWalls
		}
	}
	if s.Castle().Level%2 == 0 {
		return session.RewardSharpenBlades
	}
	return session.RewardReinforceWalls
}

// nearestEnemy 找到离城堡最近的存活敌人
func nearestEnemy(em *ecs.EntityManager) (float64, float64, bool) {
	best := math.Inf(1)
	var bx, by float64
	found := false
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Resolved {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := math.Hypot(pos.X, pos.Y); d < best {
			best, bx, by, found = d, pos.X, pos.Y, true
		}
	}
	return bx, by, found
}

func printRun(index int, res runResult) {
	outcome := "survived"
	if res.gameOver {
		outcome = fmt.Sprintf("breached %v", res.breached)
	}
	fmt.Printf("--- run %d seed=%d ticks=%d (%s) ---\n", index, res.seed, res.ticks, outcome)
	fmt.Print(game.FormatReport(res.report))
	fmt.Printf("rewards: reinforce=%d repair=%d sharpen=%d\n\n",
		res.rewards[session.RewardReinforceWalls],
		res.rewards[session.RewardRepairWalls],
		res.rewards[session.RewardSharpenBlades])
}

func printSummary(results []runResult) {
	var levels, kills, survived int
	var duration float64
	breaches := make(map[components.Side]int)
	for _, r := range results {
		levels += int(r.report.Level)
		kills += r.report.TotalKilled()
		duration += r.report.Duration
		if !r.gameOver {
			survived++
		}
		for _, side := range r.breached {
			breaches[side]++
		}
	}
	n := float64(len(results))
	fmt.Printf("=== summary ===\n")
	fmt.Printf("survived=%d/%d avg_level=%.2f avg_kills=%.1f avg_time=%.1fs\n",
		survived, len(results), float64(levels)/n, float64(kills)/n, duration/n)
	for _, side := range components.AllSides {
		fmt.Printf("  %-6s breached %d times\n", side, breaches[side])
	}
}
