package systems

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
)

// GameOverSystem 游戏结束事件的唯一消费者
// 同一 tick 内多面城墙被摧毁只产生一次状态转换请求
type GameOverSystem struct {
	state *game.StateMachine[game.GameState]
	queue *game.EventQueue[game.GameOverEvent]
}

// NewGameOverSystem 创建游戏结束系统
func NewGameOverSystem(state *game.StateMachine[game.GameState], queue *game.EventQueue[game.GameOverEvent]) *GameOverSystem {
	return &GameOverSystem{state: state, queue: queue}
}

// Update 取走全部事件，有事件时请求 GameOver
// 返回本 tick 被摧毁的方位（去重，按事件顺序）
func (s *GameOverSystem) Update() []components.Side {
	events := s.queue.Drain()
	if len(events) == 0 {
		return nil
	}

	var seen [components.SideCount]bool
	var sides []components.Side
	for _, e := range events {
		if e.Side.Valid() && !seen[e.Side] {
			seen[e.Side] = true
			sides = append(sides, e.Side)
		}
	}

	if s.state.Request(game.GameStateGameOver) {
		logger.Log.Infof("[GameOverSystem] walls destroyed: %v", sides)
	}
	return sides
}
