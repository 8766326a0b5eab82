package systems

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/solarlune/resolv"
)

// 碰撞标签：敌人只与本方位城墙发生接触
var (
	tagEnemy = resolv.NewTag("enemy")
	tagWalls = [components.SideCount]resolv.Tags{
		resolv.NewTag("wall-north"),
		resolv.NewTag("wall-south"),
		resolv.NewTag("wall-west"),
		resolv.NewTag("wall-east"),
	}
)

// spaceCellSize resolv 空间网格大小
const spaceCellSize = 32

// PhysicsSystem 速度积分与接触检测
//
// 以 resolv 空间做碰撞查询：
//   - 敌人按速度移动，速度受线性阻尼衰减
//   - 敌人即将进入本方位城墙时停下，按攻速对城墙造成伤害
//
// 世界坐标以城堡为原点，写入 resolv 时整体平移 halfExtent，使空间坐标非负。
// 形状的 position 即矩形中心。
type PhysicsSystem struct {
	em         *ecs.EntityManager
	space      *resolv.Space
	halfExtent float64

	shapes   map[ecs.EntityID]resolv.IShape
	entities map[resolv.IShape]ecs.EntityID
}

// NewPhysicsSystem 创建物理系统
// halfExtent 为世界半边长，超出范围的实体仍会移动，但不参与碰撞
func NewPhysicsSystem(em *ecs.EntityManager, halfExtent float64) *PhysicsSystem {
	size := int(halfExtent * 2)
	return &PhysicsSystem{
		em:         em,
		space:      resolv.NewSpace(size, size, spaceCellSize, spaceCellSize),
		halfExtent: halfExtent,
		shapes:     make(map[ecs.EntityID]resolv.IShape),
		entities:   make(map[resolv.IShape]ecs.EntityID),
	}
}

// Update 推进一步物理模拟
// 返回每个方位城墙本步受到的伤害
func (ps *PhysicsSystem) Update(deltaTime float64) [components.SideCount]int {
	var damage [components.SideCount]int
	ps.sync()

	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.VelocityComponent](ps.em)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](ps.em, id)
		if enemy.Resolved {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		side, ok := ecs.GetComponent[*components.SideComponent](ps.em, id)
		if !ok {
			continue
		}

		damp := 1.0 / (1.0 + deltaTime*vel.LinearDamping)
		vel.X *= damp
		vel.Y *= damp

		nextX := pos.X + vel.X*deltaTime
		nextY := pos.Y + vel.Y*deltaTime

		sh, tracked := ps.shapes[id]
		if !tracked {
			pos.X, pos.Y = nextX, nextY
			continue
		}

		sh.SetPosition(ps.toSpace(nextX, nextY))
		wallID, touching := ps.touchingWall(sh, side.Side)
		if !touching {
			pos.X, pos.Y = nextX, nextY
			enemy.AttackCooldown = 0
			continue
		}

		// 贴住城墙：停在原位并攻击
		sh.SetPosition(ps.toSpace(pos.X, pos.Y))
		vel.X, vel.Y = 0, 0
		if hit := ps.attack(enemy, wallID, deltaTime); hit > 0 {
			damage[side.Side] += hit
		}
	}
	return damage
}

// attack 推进攻击冷却，冷却结束时对城墙造成伤害
func (ps *PhysicsSystem) attack(enemy *components.EnemyComponent, wallID ecs.EntityID, deltaTime float64) int {
	if enemy.AttackSpeed <= 0 || enemy.Damage <= 0 {
		return 0
	}
	wall, ok := ecs.GetComponent[*components.WallComponent](ps.em, wallID)
	if !ok {
		return 0
	}
	enemy.AttackCooldown -= deltaTime
	if enemy.AttackCooldown > 0 {
		return 0
	}
	enemy.AttackCooldown += 1.0 / enemy.AttackSpeed
	ApplyWallDamage(wall, enemy.Damage)
	return enemy.Damage
}

// touchingWall 检查形状是否与指定方位的城墙相交
func (ps *PhysicsSystem) touchingWall(sh resolv.IShape, side components.Side) (ecs.EntityID, bool) {
	var wallID ecs.EntityID
	found := false
	sh.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: sh.SelectTouchingCells(0).FilterShapes().ByTags(tagWalls[side]),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if id, ok := ps.entities[set.OtherShape]; ok {
				wallID = id
				found = true
				return false
			}
			return true
		},
	})
	return wallID, found
}

// EnemiesAt 返回与以 (x, y) 为中心、半径 radius 的方形区域相交的敌人
// 已结算死亡的敌人不计入
func (ps *PhysicsSystem) EnemiesAt(x, y, radius float64) []ecs.EntityID {
	ps.sync()

	sx, sy := ps.toSpace(x, y)
	probe := resolv.NewRectangle(sx, sy, radius*2, radius*2)
	ps.space.Add(probe)
	defer ps.space.Remove(probe)

	var hits []ecs.EntityID
	probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: probe.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			id, ok := ps.entities[set.OtherShape]
			if !ok {
				return true
			}
			if enemy, ok := ecs.GetComponent[*components.EnemyComponent](ps.em, id); ok && !enemy.Resolved {
				hits = append(hits, id)
			}
			return true
		},
	})
	return hits
}

// ShapeCount 返回已登记的碰撞形状数量
func (ps *PhysicsSystem) ShapeCount() int {
	return len(ps.shapes)
}

// Clear 移除所有碰撞形状
func (ps *PhysicsSystem) Clear() {
	for id, sh := range ps.shapes {
		ps.space.Remove(sh)
		delete(ps.entities, sh)
		delete(ps.shapes, id)
	}
}

// sync 让 resolv 空间与实体保持一致：
// 为新的碰撞体创建形状，移除已删除或已标记删除实体的形状
func (ps *PhysicsSystem) sync() {
	for id, sh := range ps.shapes {
		if !ps.em.Exists(id) || ps.em.IsMarkedForDestroy(id) {
			ps.space.Remove(sh)
			delete(ps.entities, sh)
			delete(ps.shapes, id)
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ColliderComponent, *components.PositionComponent](ps.em) {
		if _, ok := ps.shapes[id]; ok || ps.em.IsMarkedForDestroy(id) {
			continue
		}
		tags, ok := ps.tagsFor(id)
		if !ok {
			continue
		}
		col, _ := ecs.GetComponent[*components.ColliderComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)

		hw, hh := col.Extents()
		sx, sy := ps.toSpace(pos.X, pos.Y)
		sh := resolv.NewRectangle(sx, sy, hw*2, hh*2)
		sh.Tags().Set(tags)
		ps.space.Add(sh)
		ps.shapes[id] = sh
		ps.entities[sh] = id
	}
}

func (ps *PhysicsSystem) tagsFor(id ecs.EntityID) (resolv.Tags, bool) {
	if ecs.HasComponent[*components.EnemyComponent](ps.em, id) {
		return tagEnemy, true
	}
	if ecs.HasComponent[*components.WallComponent](ps.em, id) {
		side, ok := ecs.GetComponent[*components.SideComponent](ps.em, id)
		if !ok || !side.Side.Valid() {
			logger.Log.Warnf("[PhysicsSystem] wall %d has no valid side, skipped", id)
			return 0, false
		}
		return tagWalls[side.Side], true
	}
	return 0, false
}

func (ps *PhysicsSystem) toSpace(x, y float64) (float64, float64) {
	return x + ps.halfExtent, y + ps.halfExtent
}
