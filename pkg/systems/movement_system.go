package systems

import (
	"math"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// MovementSystem 单个方位的移动系统
// 每帧把本方位敌人的速度重新指向本方位城墙
type MovementSystem struct {
	side            components.Side
	em              *ecs.EntityManager
	forceMultiplier float64
}

// NewMovementSystem 创建指定方位的移动系统
// forceMultiplier 把"速度 × 时间"放大为物理积分器需要的速度量级
func NewMovementSystem(side components.Side, em *ecs.EntityManager, forceMultiplier float64) *MovementSystem {
	return &MovementSystem{side: side, em: em, forceMultiplier: forceMultiplier}
}

// Update 覆盖写入敌人速度，不累加
func (s *MovementSystem) Update(deltaTime float64) {
	wallID, _ := MustFindWall(s.em, s.side)
	wallPos := MustPosition(s.em, wallID, s.side.String()+" wall")

	for _, id := range sideEnemies(s.em, s.side) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, ok2 := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok1 || !ok2 || enemy.Resolved {
			continue
		}

		dx, dy := normalize(wallPos.X-pos.X, wallPos.Y-pos.Y)
		scale := deltaTime * enemy.Speed * s.forceMultiplier
		vel.X = dx * scale
		vel.Y = dy * scale
	}
}

// normalize 归一化向量，零向量返回 (0, 0)
func normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}
