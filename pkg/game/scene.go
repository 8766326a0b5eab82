package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个界面场景（主菜单、对局等）
// 同一时刻只有一个场景的 Update 和 Draw 被调用
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Leaver 可选接口：场景被替换或程序退出前调用 OnLeave
//
// 对局场景借此销毁 Session 并记录统计
type Leaver interface {
	OnLeave()
}
