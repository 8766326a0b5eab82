package scenes

import (
	"fmt"
	"strings"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw 绘制世界、HUD 和当前状态的覆盖层
func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if !g.session.Active() {
		return
	}

	g.drawWorld(screen)
	g.drawHUD(screen)

	state := g.session.State().Current()
	if side, ok := state.StatsSide(); ok {
		g.drawStats(screen, side)
		return
	}
	switch state {
	case game.GameStatePaused:
		g.drawPause(screen)
	case game.GameStateLevelUp:
		g.drawLevelUp(screen)
	case game.GameStateGameOver:
		g.drawGameOver(screen)
	}
}

func (g *GameScene) drawWorld(screen *ebiten.Image) {
	em := g.session.EntityManager()

	cx, cy := WorldToScreen(0, 0)
	vector.DrawFilledRect(screen, cx-20, cy-20, 40, 40, castleColor, false)

	for _, id := range ecs.GetEntitiesWith2[*components.SpawnerComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sp, _ := ecs.GetComponent[*components.SpawnerComponent](em, id)
		x, y := WorldToScreen(pos.X, pos.Y)
		vector.StrokeCircle(screen, x, y, float32(sp.Radius*worldScale), 1, spawnerColor, true)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.WallComponent, *components.PositionComponent](em) {
		wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		hw, hh := wall.Extents()
		x, y := WorldToScreen(pos.X-hw, pos.Y+hh)
		w, h := float32(hw*2*worldScale), float32(hh*2*worldScale)

		clr := wallColor
		switch {
		case wall.Health <= 0:
			clr = wallBrokenColor
		case wall.Health*4 < wall.MaxHealth:
			clr = wallLowColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	}

	showBars := g.ctx.Settings == nil || g.ctx.Settings.GetSettings().ShowHealthBars
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.ColliderComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](em, id)
		x, y := WorldToScreen(pos.X, pos.Y)
		r := float32(col.Radius * worldScale)

		clr := goblinColor
		if enemy.Kind == components.EnemySpearGoblin {
			clr = spearColor
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)

		if showBars {
			maxHP := g.session.Config().EnemyStatsFor(enemy.Kind).Health
			drawBar(screen, x-r, y-r-4, r*2, 2, enemy.Health, maxHP)
		}
	}
}

// drawBar 绘制生命条，value 超过 maxValue 时按满格绘制
func drawBar(screen *ebiten.Image, x, y, w, h float32, value, maxValue int) {
	vector.DrawFilledRect(screen, x, y, w, h, hpBackColor, false)
	if maxValue <= 0 || value <= 0 {
		return
	}
	ratio := min(float32(value)/float32(maxValue), 1)
	vector.DrawFilledRect(screen, x, y, w*ratio, h, hpFillColor, false)
}

func (g *GameScene) drawHUD(screen *ebiten.Image) {
	castle := g.session.Castle()
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d   EXP %d/%d   Strike %d\n", castle.Level, castle.Exp, castle.NextLevelExp, g.session.StrikeDamage())
	for _, side := range components.AllSides {
		w := g.session.Wall(side)
		fmt.Fprintf(&b, "%-5s wall %4d/%d\n", side, w.Health, w.MaxHealth)
	}
	drawText(screen, b.String(), 10, 20, textColor)

	if g.ctx.Settings != nil && g.ctx.Settings.GetSettings().ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), ScreenWidth-140, 4)
	}
	if g.ctx.Settings != nil && g.ctx.Settings.GetSettings().ShowHints && g.session.State().Is(game.GameStateInGame) {
		drawCenteredText(screen, "[Click] Strike   [P/Esc] Pause", ScreenHeight-40, textColor)
	}
	if g.status != "" {
		drawCenteredText(screen, g.status, ScreenHeight-20, accentColor)
	}
}

func drawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, overlayColor, false)
}

func (g *GameScene) drawPause(screen *ebiten.Image) {
	drawOverlay(screen)
	drawCenteredText(screen, "PAUSED", 200, accentColor)
	if g.ctx.Settings != nil {
		s := g.ctx.Settings.GetSettings()
		drawCenteredText(screen, fmt.Sprintf("[H] Health bars: %v", s.ShowHealthBars), 250, textColor)
		drawCenteredText(screen, fmt.Sprintf("[F] Show FPS: %v", s.ShowFPS), 270, textColor)
		drawCenteredText(screen, fmt.Sprintf("[T] Key hints: %v", s.ShowHints), 290, textColor)
		drawCenteredText(screen, fmt.Sprintf("[-/+] Game speed: %.2fx", s.GameSpeed), 310, textColor)
		drawCenteredText(screen, fmt.Sprintf("[D] Difficulty: %s (this game: %s)", s.Difficulty, g.session.Difficulty()), 330, textColor)
	}
	drawCenteredText(screen, "[Esc] Resume    [M] Main menu", 380, textColor)
}

func (g *GameScene) drawLevelUp(screen *ebiten.Image) {
	drawOverlay(screen)
	drawCenteredText(screen, fmt.Sprintf("LEVEL %d!", g.session.Castle().Level), 200, accentColor)
	for i, r := range session.AllRewards {
		drawCenteredText(screen, fmt.Sprintf("[%d] %s", i+1, r), 250+i*20, textColor)
	}
}

func (g *GameScene) drawGameOver(screen *ebiten.Image) {
	drawOverlay(screen)
	drawCenteredText(screen, "THE CASTLE HAS FALLEN", 180, accentColor)
	report := g.session.Report()
	drawCenteredText(screen, fmt.Sprintf("Level %d   Enemies killed %d   Survived %.0fs", report.Level, report.TotalKilled(), report.Duration), 220, textColor)
	if g.newBest {
		drawCenteredText(screen, "New best level!", 240, accentColor)
	}
	drawCenteredText(screen, "[N/S/W/E] Side stats   [C] Copy report", 290, textColor)
	drawCenteredText(screen, "[R] Restart   [M] Main menu", 310, textColor)
}

func (g *GameScene) drawStats(screen *ebiten.Image, side components.Side) {
	drawOverlay(screen)
	st := g.session.Report().Sides[side]
	wall := "standing"
	if st.Destroyed {
		wall = "destroyed"
	}
	drawCenteredText(screen, strings.ToUpper(side.String())+" SIDE", 180, accentColor)
	lines := []string{
		fmt.Sprintf("Enemies spawned: %d", st.Spawned),
		fmt.Sprintf("Enemies killed:  %d", st.Killed),
		fmt.Sprintf("Experience:      %d", st.ExpEarned),
		fmt.Sprintf("Wall damage:     %d", st.DamageTaken),
		fmt.Sprintf("Wall:            %s", wall),
	}
	for i, l := range lines {
		drawCenteredText(screen, l, 220+i*20, textColor)
	}
	drawCenteredText(screen, "[<-/->] Other side   [C] Copy   [Esc] Back", 360, textColor)
}
