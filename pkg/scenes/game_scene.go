package scenes

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statusDuration 提示信息显示时长（秒）
const statusDuration = 2.0

// sideKeys 游戏结束后查看各方位统计的按键
var sideKeys = [components.SideCount]ebiten.Key{
	components.SideNorth: ebiten.KeyN,
	components.SideSouth: ebiten.KeyS,
	components.SideWest:  ebiten.KeyW,
	components.SideEast:  ebiten.KeyE,
}

// rewardKeys 升级奖励的选择按键，与 session.AllRewards 一一对应
var rewardKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GameScene 对局场景
// 场景创建即开始一局，场景被替换时销毁对局
type GameScene struct {
	ctx     *Context
	session *session.Session

	recorded bool
	newBest  bool

	status      string
	statusTimer float64
}

// NewGameScene 创建对局场景并开始新的一局
func NewGameScene(ctx *Context) (*GameScene, error) {
	s := session.New(ctx.Config, ctx.NewRand())
	g := &GameScene{ctx: ctx, session: s}

	s.State().OnEnter(game.GameStateGameOver, func(from game.GameState) {
		if from == game.GameStateInGame {
			g.recordReport()
		}
	})

	if ctx.Settings != nil {
		if err := s.SetDifficulty(ctx.Settings.GetSettings().Difficulty); err != nil {
			logger.Log.Warnf("[GameScene] %v", err)
		}
	}
	if err := s.Setup(); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return g, nil
}

// Session 返回本场景的对局
func (g *GameScene) Session() *session.Session {
	return g.session
}

// Update 处理输入后推进对局
func (g *GameScene) Update(deltaTime float64) {
	g.handleInput()
	g.advance(deltaTime)
}

// advance 按游戏速度推进对局
func (g *GameScene) advance(deltaTime float64) {
	speed := 1.0
	if g.ctx.Settings != nil {
		speed = g.ctx.Settings.GetSettings().GameSpeed
	}
	g.session.Update(deltaTime * speed)

	if g.statusTimer > 0 {
		g.statusTimer -= deltaTime
		if g.statusTimer <= 0 {
			g.status = ""
		}
	}
}

// OnLeave 离开场景时销毁对局
func (g *GameScene) OnLeave() {
	g.session.Teardown()
}

func (g *GameScene) handleInput() {
	state := g.session.State().Current()
	if side, ok := state.StatsSide(); ok {
		g.handleStatsInput(side)
		return
	}

	switch state {
	case game.GameStateInGame:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ScreenToWorld(ebiten.CursorPosition())
			g.session.StrikeAt(x, y)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.session.Pause()
		}

	case game.GameStatePaused:
		g.handlePauseInput()

	case game.GameStateLevelUp:
		for i, key := range rewardKeys {
			if inpututil.IsKeyJustPressed(key) {
				if err := g.session.ChooseReward(session.AllRewards[i]); err != nil {
					logger.Log.Warnf("[GameScene] %v", err)
				}
				break
			}
		}

	case game.GameStateGameOver:
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			g.ctx.Global.Request(game.GlobalInGame)
		case inpututil.IsKeyJustPressed(ebiten.KeyM):
			g.ctx.Global.Request(game.GlobalMainMenu)
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			g.copyReport()
		}
		for _, side := range components.AllSides {
			if inpututil.IsKeyJustPressed(sideKeys[side]) {
				g.session.ShowStats(side)
			}
		}
	}
}

func (g *GameScene) handlePauseInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.saveSettings()
		g.session.Resume()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.saveSettings()
		g.ctx.Global.Request(game.GlobalMainMenu)
	}

	sm := g.ctx.Settings
	if sm == nil {
		return
	}
	s := sm.GetSettings()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		sm.SetShowHealthBars(!s.ShowHealthBars)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		sm.SetShowFPS(!s.ShowFPS)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		sm.SetShowHints(!s.ShowHints)
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.setStatus(fmt.Sprintf("Difficulty %s from next game", sm.CycleDifficulty()))
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		sm.SetGameSpeed(s.GameSpeed + 0.25)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		sm.SetGameSpeed(s.GameSpeed - 0.25)
	}
}

func (g *GameScene) handleStatsInput(side components.Side) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.session.CloseStats()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.session.ShowStats(components.AllSides[(int(side)+1)%components.SideCount])
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.session.ShowStats(components.AllSides[(int(side)+components.SideCount-1)%components.SideCount])
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyReport()
	}
}

// recordReport 记录本局统计（每局一次）
func (g *GameScene) recordReport() {
	if g.recorded || g.ctx.Stats == nil {
		return
	}
	g.recorded = true
	best, err := g.ctx.Stats.Record(g.session.Report())
	if err != nil {
		logger.Log.Warnf("[GameScene] failed to save stats: %v", err)
	}
	g.newBest = best
}

func (g *GameScene) copyReport() {
	report := game.FormatReport(g.session.Report())
	if err := clipboard.WriteAll(report); err != nil {
		logger.Log.Warnf("[GameScene] clipboard unavailable: %v", err)
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Report copied to clipboard")
}

func (g *GameScene) saveSettings() {
	if g.ctx.Settings == nil {
		return
	}
	if err := g.ctx.Settings.Save(); err != nil {
		logger.Log.Warnf("[GameScene] failed to save settings: %v", err)
	}
}

func (g *GameScene) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusDuration
}
