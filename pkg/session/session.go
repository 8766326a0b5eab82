// Package session 管理一局游戏：实体的创建与销毁、每 tick 的系统调度顺序、
// 以及玩家操作（打击、升级奖励、暂停）。
package session

import (
	"fmt"
	"math"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/entities"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/systems"
)

// Session 一局游戏
//
// 每个方位各有一组刷怪、移动、死亡结算和城墙监视系统；城堡与对局状态机是唯一的共享状态，
// 只在 Update 的串行阶段修改。
type Session struct {
	cfg   *config.GameConfig
	em    *ecs.EntityManager
	state *game.StateMachine[game.GameState]
	queue *game.EventQueue[game.GameOverEvent]

	spawners     [components.SideCount]*systems.SpawnSystem
	movers       [components.SideCount]*systems.MovementSystem
	deaths       [components.SideCount]*systems.DeathSystem
	wallWatchers [components.SideCount]*systems.WallDestroyedSystem
	levelUp      *systems.LevelUpSystem
	gameOver     *systems.GameOverSystem
	physics      *systems.PhysicsSystem

	stats        statsTracker
	strikeDamage int
	active       bool

	difficulty string
	// pauseAfterLevelUp 暂停请求被同一 tick 的升级覆盖，回到 InGame 后补上
	pauseAfterLevelUp bool
}

// New 创建对局（尚未开始，需调用 Setup）
func New(cfg *config.GameConfig, rng systems.RandSource) *Session {
	em := ecs.NewEntityManager()
	state := game.NewGameStateMachine()
	queue := game.NewEventQueue[game.GameOverEvent]()

	s := &Session{
		cfg:      cfg,
		em:       em,
		state:    state,
		queue:    queue,
		levelUp:  systems.NewLevelUpSystem(em, state),
		gameOver: systems.NewGameOverSystem(state, queue),
		physics:  systems.NewPhysicsSystem(em, cfg.Layout.WorldHalfExtent),

		difficulty: config.DifficultyNormal,
	}
	for _, side := range components.AllSides {
		s.spawners[side] = systems.NewSpawnSystem(side, em, cfg, rng)
		s.movers[side] = systems.NewMovementSystem(side, em, cfg.Movement.ForceMultiplier)
		s.deaths[side] = systems.NewDeathSystem(side, em)
		s.wallWatchers[side] = systems.NewWallDestroyedSystem(side, em, state, queue)
	}

	state.OnEnter(game.GameStateLevelUp, func(game.GameState) {
		s.applyProgression()
	})
	state.OnEnter(game.GameStateInGame, func(from game.GameState) {
		if from == game.GameStateLevelUp && s.pauseAfterLevelUp {
			s.pauseAfterLevelUp = false
			s.state.Request(game.GameStatePaused)
		}
	})
	return s
}

// SetDifficulty 设置难度，下一次 Setup 时生效
func (s *Session) SetDifficulty(name string) error {
	if !config.IsDifficulty(name) {
		return fmt.Errorf("unknown difficulty %q", name)
	}
	s.difficulty = name
	return nil
}

// Difficulty 返回当前难度名称
func (s *Session) Difficulty() string {
	return s.difficulty
}

// Setup 创建城堡、城墙和刷怪点，并进入 InGame
func (s *Session) Setup() error {
	if s.active {
		return fmt.Errorf("session already active")
	}
	s.em.Clear()
	s.physics.Clear()
	s.queue.Clear()
	s.stats = statsTracker{}
	s.strikeDamage = s.cfg.Player.StrikeDamage
	s.pauseAfterLevelUp = false

	if _, err := entities.NewCastleEntity(s.em, s.cfg); err != nil {
		return fmt.Errorf("failed to create castle: %w", err)
	}
	profile := s.cfg.DifficultyFor(s.difficulty)
	for _, side := range components.AllSides {
		if _, err := entities.NewWallEntity(s.em, s.cfg, side); err != nil {
			return fmt.Errorf("failed to create %s wall: %w", side, err)
		}
		id, err := entities.NewSpawnerEntity(s.em, s.cfg, side)
		if err != nil {
			return fmt.Errorf("failed to create %s spawner: %w", side, err)
		}
		spawner, _ := ecs.GetComponent[*components.SpawnerComponent](s.em, id)
		systems.ApplyDifficulty(spawner, profile)
	}
	s.checkCardinality()

	s.active = true
	s.state.Reset(game.GameStateNone)
	s.state.Request(game.GameStateInGame)
	s.state.Apply()
	logger.Log.Infof("[Session] started (difficulty %s)", s.difficulty)
	return nil
}

// checkCardinality 城堡唯一、每个方位恰好一面城墙和一个刷怪点，否则 panic
func (s *Session) checkCardinality() {
	systems.MustFindCastle(s.em)
	for _, side := range components.AllSides {
		systems.MustFindWall(s.em, side)
		systems.MustFindSpawner(s.em, side)
	}
}

// Teardown 销毁本局所有实体，状态回到 None
func (s *Session) Teardown() {
	if !s.active {
		return
	}
	s.physics.Clear()
	s.em.Clear()
	s.queue.Clear()
	s.state.Reset(game.GameStateNone)
	s.pauseAfterLevelUp = false
	s.active = false
	logger.Log.Infof("[Session] torn down")
}

// Active 对局是否进行中
func (s *Session) Active() bool {
	return s.active
}

// Update 推进一个 tick
//
// 顺序：
//  1. InGame 且没有挂起暂停时：各方位刷怪、移动，物理步进，各方位死亡结算（只产生经验记录）
//  2. 汇总经验计入城堡，检查一次升级
//  3. 各方位城墙监视器，GameOver 事件汇总
//  4. 清理标记删除的实体，状态转换生效
func (s *Session) Update(deltaTime float64) {
	if !s.active {
		return
	}

	pausing := s.state.IsPending(game.GameStatePaused)
	var credits []systems.ExpCredit
	if s.state.Is(game.GameStateInGame) && !pausing {
		s.stats.duration += deltaTime
		for _, side := range components.AllSides {
			s.stats.sides[side].Spawned += s.spawners[side].Update(deltaTime)
		}
		for _, side := range components.AllSides {
			s.movers[side].Update(deltaTime)
		}
		damage := s.physics.Update(deltaTime)
		for _, side := range components.AllSides {
			s.stats.sides[side].DamageTaken += damage[side]
		}
		for _, side := range components.AllSides {
			credits = append(credits, s.deaths[side].Update()...)
		}
	}

	if len(credits) > 0 {
		_, castle := systems.MustFindCastle(s.em)
		systems.CreditExperience(castle, systems.SumCredits(credits))
		s.stats.recordCredits(credits)
	}
	if s.levelUp.Update() && pausing {
		s.pauseAfterLevelUp = true
	}

	for _, side := range components.AllSides {
		s.wallWatchers[side].Update()
	}
	for _, side := range s.gameOver.Update() {
		s.stats.sides[side].Destroyed = true
	}

	s.em.RemoveMarkedEntities()
	s.state.Apply()
}

// StrikeAt 玩家在世界坐标 (x, y) 处打击，伤害离点击位置最近的敌人
// 只在 InGame 时有效，返回是否命中
func (s *Session) StrikeAt(x, y float64) bool {
	if !s.active || !s.state.Is(game.GameStateInGame) {
		return false
	}
	hits := s.physics.EnemiesAt(x, y, s.cfg.Player.StrikeRadius)
	if len(hits) == 0 {
		return false
	}

	var target ecs.EntityID
	best := math.Inf(1)
	for _, id := range hits {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}
		if d := math.Hypot(pos.X-x, pos.Y-y); d < best {
			best, target = d, id
		}
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, target)
	if !ok {
		return false
	}
	enemy.Health -= s.strikeDamage
	return true
}

// Pause 暂停（InGame → Paused）
func (s *Session) Pause() bool {
	return s.active && s.state.Request(game.GameStatePaused)
}

// Resume 继续（Paused → InGame）
func (s *Session) Resume() bool {
	return s.active && s.state.Is(game.GameStatePaused) && s.state.Request(game.GameStateInGame)
}

// ShowStats 游戏结束后查看某个方位的统计
func (s *Session) ShowStats(side components.Side) bool {
	return s.active && s.state.Request(game.StatsStateFor(side))
}

// CloseStats 从统计界面回到 GameOver
func (s *Session) CloseStats() bool {
	if _, ok := s.state.Current().StatsSide(); !ok {
		return false
	}
	return s.state.Request(game.GameStateGameOver)
}

// State 对局状态机（表现层读取并注册监听器）
func (s *Session) State() *game.StateMachine[game.GameState] {
	return s.state
}

// EntityManager 实体管理器（表现层只读查询）
func (s *Session) EntityManager() *ecs.EntityManager {
	return s.em
}

// Config 本局使用的配置
func (s *Session) Config() *config.GameConfig {
	return s.cfg
}

// Castle 返回城堡组件
func (s *Session) Castle() *components.CastleComponent {
	_, castle := systems.MustFindCastle(s.em)
	return castle
}

// Wall 返回指定方位的城墙组件
func (s *Session) Wall(side components.Side) *components.WallComponent {
	_, wall := systems.MustFindWall(s.em, side)
	return wall
}

// StrikeDamage 当前打击伤害
func (s *Session) StrikeDamage() int {
	return s.strikeDamage
}

// Report 返回当前对局统计
func (s *Session) Report() game.SessionReport {
	var level uint32
	if s.active {
		level = s.Castle().Level
	}
	return s.stats.report(level)
}
