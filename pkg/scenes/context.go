package scenes

import (
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/systems"
)

// Context 场景共享的依赖
type Context struct {
	Global   *game.StateMachine[game.GlobalState]
	Config   *config.GameConfig
	Settings *game.SettingsManager
	Stats    *game.StatsManager
	// NewRand 为每局创建随机源
	NewRand func() systems.RandSource

	quit bool
}

// RequestQuit 请求退出程序（App 在本帧结束时返回 ebiten.Termination）
func (c *Context) RequestQuit() {
	c.quit = true
}

// QuitRequested 是否已请求退出
func (c *Context) QuitRequested() bool {
	return c.quit
}
