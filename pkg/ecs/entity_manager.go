package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
// 0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 组件按具体类型存储，查询使用泛型函数（GetComponent[T]、GetEntitiesWith1/2/3）。
// 删除是延迟的：DestroyEntity 仅做标记，RemoveMarkedEntities 在每个 tick 末尾统一清理，
// 这样同一 tick 内的其他系统仍能观察到将被删除的实体。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID集合（去重）
	entitiesToDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 检查实体是否存在（已标记但尚未清理的实体仍视为存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity 标记实体待删除(不立即删除)
// 对同一实体重复调用是安全的
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, ok := em.components[id]; !ok {
		return
	}
	em.entitiesToDestroy[id] = struct{}{}
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.entitiesToDestroy[id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for id := range em.entitiesToDestroy {
		if _, ok := em.components[id]; ok {
			delete(em.components, id)
			removed++
		}
	}
	clear(em.entitiesToDestroy)
	return removed
}

// EntityCount 返回当前实体数量（包括已标记未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// Clear 立即删除所有实体，下一个ID不会重置
func (em *EntityManager) Clear() {
	clear(em.components)
	clear(em.entitiesToDestroy)
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeFor[T]()] = component
	}
}

// GetComponent 获取实体的特定类型组件
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[reflect.TypeFor[T]()]
		return found
	}
	return false
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体，结果按ID升序
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 的所有实体，结果按ID升序
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// GetEntitiesWith3 查询同时拥有 T1、T2、T3 的所有实体，结果按ID升序
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.query(reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// query 按组件类型组合过滤实体
// 排序保证同一状态下系统的遍历顺序固定（map 遍历顺序是随机的）
func (em *EntityManager) query(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
