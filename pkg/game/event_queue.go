package game

import "github.com/gonewx/fourwalls/pkg/components"

// GameOverEvent 城墙被摧毁通知
type GameOverEvent struct {
	Side components.Side
}

// EventQueue 多生产者、单消费者的事件队列
// 生产者在 tick 内 Send，消费者每 tick 调用一次 Drain 取走全部事件
type EventQueue[T any] struct {
	events []T
}

// NewEventQueue 创建事件队列
func NewEventQueue[T any]() *EventQueue[T] {
	return &EventQueue[T]{}
}

// Send 追加事件
func (q *EventQueue[T]) Send(e T) {
	q.events = append(q.events, e)
}

// Len 返回未消费事件数量
func (q *EventQueue[T]) Len() int {
	return len(q.events)
}

// Drain 取出并清空所有事件
func (q *EventQueue[T]) Drain() []T {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Clear 丢弃所有事件
func (q *EventQueue[T]) Clear() {
	q.events = nil
}
