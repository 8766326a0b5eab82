package game

import (
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数，每次进入对应顶层状态时调用
type SceneFactory func() Scene

// SceneManager 根据顶层状态切换当前场景
type SceneManager struct {
	currentScene Scene
	factories    map[GlobalState]SceneFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[GlobalState]SceneFactory),
	}
}

// Register 为顶层状态注册场景工厂
func (sm *SceneManager) Register(state GlobalState, factory SceneFactory) {
	sm.factories[state] = factory
}

// Bind 监听顶层状态机：每次进入已注册的状态都创建新场景
// InGame → InGame（重新开始）同样会重建对局场景
func (sm *SceneManager) Bind(global *StateMachine[GlobalState]) {
	for state := range sm.factories {
		st := state
		global.OnEnter(st, func(from GlobalState) {
			sm.Enter(st)
		})
	}
}

// Enter 创建并切换到 state 对应的场景
func (sm *SceneManager) Enter(state GlobalState) {
	factory, ok := sm.factories[state]
	if !ok {
		logger.Log.Warnf("[SceneManager] no scene registered for %v", state)
		return
	}
	scene := factory()
	if scene == nil {
		logger.Log.Errorf("[SceneManager] factory for %v returned nil", state)
		return
	}
	sm.SwitchTo(scene)
	logger.Log.Debugf("[SceneManager] switched to %v scene", state)
}

// SwitchTo 替换当前场景，旧场景如实现 Leaver 则先调用 OnLeave
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.Leave()
	sm.currentScene = scene
}

// Leave 让当前场景收尾并清空
func (sm *SceneManager) Leave() {
	if l, ok := sm.currentScene.(Leaver); ok {
		l.OnLeave()
	}
	sm.currentScene = nil
}

// GetCurrentScene 返回当前活动场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
