package entities

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// BuffedEnemyStats 基础属性乘以刷怪增益后的结果
//
// 整数属性（生命值、经验、伤害）按 int(base * factor) 截断，
// 浮点属性（速度、攻速）直接相乘。
func BuffedEnemyStats(base config.EnemyStats, buffs components.EnemySpawnBuffs) config.EnemyStats {
	out := base
	out.Health = int(float64(base.Health) * buffs.Health)
	out.Speed = base.Speed * buffs.Speed
	out.Exp = uint32(float64(base.Exp) * buffs.Exp)
	out.Damage = int(float64(base.Damage) * buffs.Damage)
	out.AttackSpeed = base.AttackSpeed * buffs.AttackSpeed
	return out
}

// NewEnemyEntity 创建敌人实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（提供敌人基础属性）
//   - kind: 敌人类型
//   - side: 敌人来自的方位，决定它进攻哪面城墙
//   - x, y: 世界坐标
//   - buffs: 刷怪点当前的增益倍率
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.GameConfig, kind components.EnemyKind, side components.Side, x, y float64, buffs components.EnemySpawnBuffs) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	base, ok := cfg.Enemies[kind.String()]
	if !ok {
		return 0, fmt.Errorf("no stats for enemy kind %s", kind)
	}
	stats := BuffedEnemyStats(base, buffs)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Kind:        kind,
		Health:      stats.Health,
		Speed:       stats.Speed,
		Exp:         stats.Exp,
		Damage:      stats.Damage,
		AttackSpeed: stats.AttackSpeed,
	})
	ecs.AddComponent(em, id, &components.SideComponent{Side: side})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{LinearDamping: stats.LinearDamping})
	ecs.AddComponent(em, id, &components.ColliderComponent{
		Shape:  components.ColliderBall,
		Radius: stats.Size,
	})
	return id, nil
}
