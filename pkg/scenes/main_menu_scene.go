package scenes

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MainMenuScene 主菜单
// Enter/Space/鼠标左键开始游戏，Esc 退出
type MainMenuScene struct {
	ctx *Context
}

// NewMainMenuScene 创建主菜单场景
func NewMainMenuScene(ctx *Context) *MainMenuScene {
	return &MainMenuScene{ctx: ctx}
}

// Update 处理菜单输入
func (m *MainMenuScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		m.ctx.Global.Request(game.GlobalInGame)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.ctx.RequestQuit()
	}
}

// Draw 绘制标题与累计统计
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawCenteredText(screen, "FOUR WALLS", 200, accentColor)
	drawCenteredText(screen, "Defend the castle from every side", 230, textColor)
	drawCenteredText(screen, "[Enter] Start    [Esc] Quit", 320, textColor)

	if m.ctx.Stats != nil {
		s := m.ctx.Stats.GetStats()
		line := fmt.Sprintf("Games played: %d   Best level: %d   Longest run: %.0fs", s.GamesPlayed, s.BestLevel, s.LongestRun)
		drawCenteredText(screen, line, 400, textColor)
	}
}
