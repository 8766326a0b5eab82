package systems

import (
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
)

// LevelUpSystem 升级监视器
// 只在对局状态为 InGame 时检查，每 tick 最多升一级
type LevelUpSystem struct {
	em    *ecs.EntityManager
	state *game.StateMachine[game.GameState]
}

// NewLevelUpSystem 创建升级监视器
func NewLevelUpSystem(em *ecs.EntityManager, state *game.StateMachine[game.GameState]) *LevelUpSystem {
	return &LevelUpSystem{em: em, state: state}
}

// Update 返回 true 表示本 tick 城堡升级
func (s *LevelUpSystem) Update() bool {
	if !s.state.Is(game.GameStateInGame) {
		return false
	}
	_, castle := MustFindCastle(s.em)
	if !TryLevelUp(castle) {
		return false
	}
	logger.Log.Infof("[LevelUpSystem] castle reached level %d (next at %d exp)", castle.Level, castle.NextLevelExp)
	s.state.Request(game.GameStateLevelUp)
	return true
}
