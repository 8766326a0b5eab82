package game

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
)

// GlobalState 应用顶层状态
type GlobalState uint8

const (
	GlobalAssetLoading GlobalState = iota
	GlobalMainMenu
	GlobalInGame
)

// String 返回状态名称
func (s GlobalState) String() string {
	switch s {
	case GlobalAssetLoading:
		return "AssetLoading"
	case GlobalMainMenu:
		return "MainMenu"
	case GlobalInGame:
		return "InGame"
	default:
		return fmt.Sprintf("GlobalState(%d)", uint8(s))
	}
}

// GameState 一局游戏内的状态
// GameStateNone 表示当前没有进行中的对局
type GameState uint8

const (
	GameStateNone GameState = iota
	GameStateInGame
	GameStatePaused
	GameStateLevelUp
	GameStateGameOver
	GameStateStatsNorth
	GameStateStatsSouth
	GameStateStatsWest
	GameStateStatsEast
)

// String 返回状态名称
func (s GameState) String() string {
	switch s {
	case GameStateNone:
		return "None"
	case GameStateInGame:
		return "InGame"
	case GameStatePaused:
		return "Paused"
	case GameStateLevelUp:
		return "LevelUp"
	case GameStateGameOver:
		return "GameOver"
	case GameStateStatsNorth:
		return "StatsNorth"
	case GameStateStatsSouth:
		return "StatsSouth"
	case GameStateStatsWest:
		return "StatsWest"
	case GameStateStatsEast:
		return "StatsEast"
	default:
		return fmt.Sprintf("GameState(%d)", uint8(s))
	}
}

// StatsStateFor 返回展示指定方位统计的状态
func StatsStateFor(side components.Side) GameState {
	return GameStateStatsNorth + GameState(side)
}

// StatsSide 如果是方位统计状态，返回对应方位
func (s GameState) StatsSide() (components.Side, bool) {
	if s >= GameStateStatsNorth && s <= GameStateStatsEast {
		return components.Side(s - GameStateStatsNorth), true
	}
	return 0, false
}

// IsGlobalTransitionAllowed 顶层状态转换表
//
//	AssetLoading → MainMenu
//	MainMenu     → InGame
//	InGame       → MainMenu | InGame（重新开始）
func IsGlobalTransitionAllowed(from, to GlobalState) bool {
	switch from {
	case GlobalAssetLoading:
		return to == GlobalMainMenu
	case GlobalMainMenu:
		return to == GlobalInGame
	case GlobalInGame:
		return to == GlobalMainMenu || to == GlobalInGame
	}
	return false
}

// IsGameTransitionAllowed 对局内状态转换表
//
//	None     → InGame（对局开始）
//	InGame   → LevelUp | Paused | GameOver
//	LevelUp  → InGame
//	Paused   → InGame
//	GameOver → Stats*
//	Stats*   → Stats* | GameOver
//
// 离开对局（任意 → None）由 Session 直接重置，不经过此表
func IsGameTransitionAllowed(from, to GameState) bool {
	if _, ok := from.StatsSide(); ok {
		_, toStats := to.StatsSide()
		return toStats || to == GameStateGameOver
	}
	switch from {
	case GameStateNone:
		return to == GameStateInGame
	case GameStateInGame:
		return to == GameStateLevelUp || to == GameStatePaused || to == GameStateGameOver
	case GameStateLevelUp, GameStatePaused:
		return to == GameStateInGame
	case GameStateGameOver:
		_, toStats := to.StatsSide()
		return toStats
	}
	return false
}
