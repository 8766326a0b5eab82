// Package app 提供游戏应用的核心包装器
//
// 负责创建顶层状态机、场景管理器和持久化管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/scenes"
	"github.com/gonewx/fourwalls/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "fourwalls"

// Config 定义应用启动配置
type Config struct {
	// GameConfig 游戏数值配置，nil 时使用内置默认值
	GameConfig *config.GameConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SkipMenu 跳过主菜单直接开始游戏
	SkipMenu bool
}

// App 实现 ebiten.Game
type App struct {
	global       *game.StateMachine[game.GlobalState]
	sceneManager *game.SceneManager
	ctx          *scenes.Context
	skipMenu     bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化游戏应用
//
// gdata 不可用时设置与统计降级为仅内存保存。
func NewApp(cfg Config) (*App, error) {
	gameConfig := cfg.GameConfig
	if gameConfig == nil {
		gameConfig = config.DefaultGameConfig()
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Log.Warnf("[App] gdata unavailable, settings and stats will not persist: %v", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}
	stats := game.NewStatsManager(gdataManager)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	global := game.NewGlobalStateMachine()
	ctx := &scenes.Context{
		Global:   global,
		Config:   gameConfig,
		Settings: settings,
		Stats:    stats,
		NewRand: func() systems.RandSource {
			return rand.New(rand.NewSource(rng.Int63()))
		},
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.GlobalMainMenu, func() game.Scene {
		return scenes.NewMainMenuScene(ctx)
	})
	sceneManager.Register(game.GlobalInGame, func() game.Scene {
		scene, err := scenes.NewGameScene(ctx)
		if err != nil {
			logger.Log.Errorf("[App] %v", err)
			return nil
		}
		return scene
	})
	sceneManager.Bind(global)

	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	logger.Log.Infof("[App] initialized (seed %d)", seed)
	return &App{
		global:       global,
		sceneManager: sceneManager,
		ctx:          ctx,
		skipMenu:     cfg.SkipMenu,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	if a.global.Is(game.GlobalAssetLoading) {
		// 资源都已嵌入，直接进入主菜单
		a.global.Request(game.GlobalMainMenu)
		a.global.Apply()
		if a.skipMenu {
			a.global.Request(game.GlobalInGame)
			a.global.Apply()
		}
	}

	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	a.global.Apply()

	if a.ctx.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 退出全屏后需要等几帧窗口管理器才能正确设置大小
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.ctx.Settings.SetFullscreen(fullscreen)
	if err := a.ctx.Settings.Save(); err != nil {
		logger.Log.Warnf("[App] failed to save settings: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑色 letterbox 并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

// Shutdown 程序退出前收尾：销毁当前对局并保存设置
func (a *App) Shutdown() {
	a.sceneManager.Leave()
	if err := a.ctx.Settings.Save(); err != nil {
		logger.Log.Warnf("[App] failed to save settings on exit: %v", err)
	}
}
