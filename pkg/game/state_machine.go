package game

import (
	"github.com/gonewx/fourwalls/pkg/logger"
)

// StateMachine 带延迟生效的状态机
//
// Request 只记录下一个状态，Apply 在 tick 末尾统一生效并触发 OnExit/OnEnter 监听器。
// 同一 tick 内的多次请求：后到的请求覆盖先到的，除非 keep 规则要求保留已挂起的状态
// （例如 GameOver 挂起后不再被 LevelUp 覆盖）。
type StateMachine[S comparable] struct {
	name    string
	current S
	next    S
	hasNext bool

	allowed func(from, to S) bool
	keep    func(pending, requested S) bool

	onEnter map[S][]func(from S)
	onExit  map[S][]func(to S)
}

// NewStateMachine 创建状态机
//
// 参数：
//   - name: 日志中使用的名称
//   - initial: 初始状态
//   - allowed: 转换合法性校验，nil 表示允许任意转换
func NewStateMachine[S comparable](name string, initial S, allowed func(from, to S) bool) *StateMachine[S] {
	return &StateMachine[S]{
		name:    name,
		current: initial,
		allowed: allowed,
		onEnter: make(map[S][]func(from S)),
		onExit:  make(map[S][]func(to S)),
	}
}

// SetKeepRule 设置挂起状态的保留规则
// keep(pending, requested) 返回 true 时，新的请求被拒绝
func (sm *StateMachine[S]) SetKeepRule(keep func(pending, requested S) bool) {
	sm.keep = keep
}

// Current 返回当前状态
func (sm *StateMachine[S]) Current() S {
	return sm.current
}

// Is 检查当前状态
func (sm *StateMachine[S]) Is(s S) bool {
	return sm.current == s
}

// IsPending 检查是否挂起了指定状态
func (sm *StateMachine[S]) IsPending(s S) bool {
	return sm.hasNext && sm.next == s
}

// Request 请求在下一次 Apply 时切换到 to
// 返回 false 表示请求被拒绝（非法转换或被挂起状态保留规则拦截）
func (sm *StateMachine[S]) Request(to S) bool {
	if sm.allowed != nil && !sm.allowed(sm.current, to) {
		logger.Log.Warnf("[%s] rejected transition %v -> %v", sm.name, sm.current, to)
		return false
	}
	if sm.hasNext {
		if sm.next == to {
			return true
		}
		if sm.keep != nil && sm.keep(sm.next, to) {
			logger.Log.Debugf("[%s] keeping pending %v, dropped request %v", sm.name, sm.next, to)
			return false
		}
	}
	sm.next = to
	sm.hasNext = true
	return true
}

// Apply 使挂起的状态生效
// 返回 true 表示发生了转换（包括切换到相同状态的"重新进入"）
func (sm *StateMachine[S]) Apply() bool {
	if !sm.hasNext {
		return false
	}
	from, to := sm.current, sm.next
	sm.hasNext = false
	var zero S
	sm.next = zero

	for _, fn := range sm.onExit[from] {
		fn(to)
	}
	sm.current = to
	logger.Log.Infof("[%s] %v -> %v", sm.name, from, to)
	for _, fn := range sm.onEnter[to] {
		fn(from)
	}
	return true
}

// Reset 立即切换状态并清除挂起请求，不校验也不触发监听器
// 用于对局的创建与销毁
func (sm *StateMachine[S]) Reset(s S) {
	var zero S
	sm.current = s
	sm.next = zero
	sm.hasNext = false
}

// OnEnter 注册进入状态 s 时的回调，参数为来源状态
func (sm *StateMachine[S]) OnEnter(s S, fn func(from S)) {
	sm.onEnter[s] = append(sm.onEnter[s], fn)
}

// OnExit 注册离开状态 s 时的回调，参数为目标状态
func (sm *StateMachine[S]) OnExit(s S, fn func(to S)) {
	sm.onExit[s] = append(sm.onExit[s], fn)
}

// NewGlobalStateMachine 创建顶层状态机，初始为 AssetLoading
func NewGlobalStateMachine() *StateMachine[GlobalState] {
	return NewStateMachine("GlobalState", GlobalAssetLoading, IsGlobalTransitionAllowed)
}

// NewGameStateMachine 创建对局状态机，初始为 None
// GameOver 一旦挂起，同一 tick 内其他请求不能覆盖它
func NewGameStateMachine() *StateMachine[GameState] {
	sm := NewStateMachine("GameState", GameStateNone, IsGameTransitionAllowed)
	sm.SetKeepRule(func(pending, requested GameState) bool {
		return pending == GameStateGameOver && requested != GameStateGameOver
	})
	return sm
}
