package systems

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/game"
)

// WallDestroyedSystem 单个方位的城墙摧毁监视器
// 城墙生命值 <= 0 时发送 GameOverEvent，由 GameOverSystem 统一处理
type WallDestroyedSystem struct {
	side  components.Side
	em    *ecs.EntityManager
	state *game.StateMachine[game.GameState]
	queue *game.EventQueue[game.GameOverEvent]
}

// NewWallDestroyedSystem 创建指定方位的城墙摧毁监视器
func NewWallDestroyedSystem(side components.Side, em *ecs.EntityManager, state *game.StateMachine[game.GameState], queue *game.EventQueue[game.GameOverEvent]) *WallDestroyedSystem {
	return &WallDestroyedSystem{side: side, em: em, state: state, queue: queue}
}

// Update 返回 true 表示本 tick 发出了事件
// 对局已结束（GameOver 或统计界面）或 GameOver 已挂起时不再检查
func (s *WallDestroyedSystem) Update() bool {
	if gameOverHandled(s.state) {
		return false
	}
	_, wall := MustFindWall(s.em, s.side)
	if wall.Health > 0 {
		return false
	}
	s.queue.Send(game.GameOverEvent{Side: s.side})
	return true
}

func gameOverHandled(state *game.StateMachine[game.GameState]) bool {
	if state.IsPending(game.GameStateGameOver) {
		return true
	}
	cur := state.Current()
	if cur == game.GameStateGameOver {
		return true
	}
	_, stats := cur.StatsSide()
	return stats
}
