package systems

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// 城堡、城墙、刷怪点的数量是结构性约束：
// 城堡恰好一个，每个方位恰好一面城墙和一个刷怪点。违反时直接 panic。

// MustFindCastle 返回唯一的城堡实体
func MustFindCastle(em *ecs.EntityManager) (ecs.EntityID, *components.CastleComponent) {
	ids := ecs.GetEntitiesWith1[*components.CastleComponent](em)
	if len(ids) != 1 {
		panic(fmt.Sprintf("expected exactly one castle, found %d", len(ids)))
	}
	castle, _ := ecs.GetComponent[*components.CastleComponent](em, ids[0])
	return ids[0], castle
}

// MustFindWall 返回指定方位唯一的城墙实体
func MustFindWall(em *ecs.EntityManager, side components.Side) (ecs.EntityID, *components.WallComponent) {
	id := mustFindSideEntity[*components.WallComponent](em, side, "wall")
	wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
	return id, wall
}

// MustFindSpawner 返回指定方位唯一的刷怪点实体
func MustFindSpawner(em *ecs.EntityManager, side components.Side) (ecs.EntityID, *components.SpawnerComponent) {
	id := mustFindSideEntity[*components.SpawnerComponent](em, side, "spawner")
	spawner, _ := ecs.GetComponent[*components.SpawnerComponent](em, id)
	return id, spawner
}

// MustPosition 返回实体的位置组件，缺失时 panic
// 城墙和刷怪点创建时必带位置，缺失说明实体被破坏
func MustPosition(em *ecs.EntityManager, id ecs.EntityID, what string) *components.PositionComponent {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		panic(fmt.Sprintf("%s %d has no position", what, id))
	}
	return pos
}

func mustFindSideEntity[T any](em *ecs.EntityManager, side components.Side, what string) ecs.EntityID {
	var found []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[T, *components.SideComponent](em) {
		sc, _ := ecs.GetComponent[*components.SideComponent](em, id)
		if sc.Side == side {
			found = append(found, id)
		}
	}
	if len(found) != 1 {
		panic(fmt.Sprintf("expected exactly one %s for side %s, found %d", what, side, len(found)))
	}
	return found[0]
}

// sideEnemies 返回属于指定方位的敌人（按ID升序）
func sideEnemies(em *ecs.EntityManager, side components.Side) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.SideComponent](em) {
		sc, _ := ecs.GetComponent[*components.SideComponent](em, id)
		if sc.Side == side {
			out = append(out, id)
		}
	}
	return out
}
