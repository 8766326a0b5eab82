package systems

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/logger"
)

// ExpCredit 一个死亡敌人带来的经验
type ExpCredit struct {
	Side  components.Side
	Enemy ecs.EntityID
	Exp   uint32
}

// DeathSystem 单个方位的死亡结算系统
//
// 只生成经验记录，不直接写城堡：四个方位的记录汇总后由 Session 统一计入，
// 再检查一次升级。
type DeathSystem struct {
	side components.Side
	em   *ecs.EntityManager
}

// NewDeathSystem 创建指定方位的死亡结算系统
func NewDeathSystem(side components.Side, em *ecs.EntityManager) *DeathSystem {
	return &DeathSystem{side: side, em: em}
}

// Update 结算本方位生命值 <= 0 的敌人
// 标记删除与产生经验记录在同一步完成，已结算的敌人不会再次计入
func (s *DeathSystem) Update() []ExpCredit {
	var credits []ExpCredit
	for _, id := range sideEnemies(s.em, s.side) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.Resolved || enemy.Health > 0 {
			continue
		}
		enemy.Resolved = true
		s.em.DestroyEntity(id)
		credits = append(credits, ExpCredit{Side: s.side, Enemy: id, Exp: enemy.Exp})
	}
	if len(credits) > 0 {
		logger.Log.Debugf("[DeathSystem] %s: %d enemies died", s.side, len(credits))
	}
	return credits
}

// SumCredits 汇总经验，与记录顺序无关
func SumCredits(credits []ExpCredit) uint32 {
	var total uint32
	for _, c := range credits {
		total = saturatingAdd(total, c.Exp)
	}
	return total
}
