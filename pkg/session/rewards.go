package session

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/game"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/gonewx/fourwalls/pkg/systems"
)

// Reward 升级奖励
type Reward uint8

const (
	RewardReinforceWalls Reward = iota // 所有城墙提高最大生命值
	RewardRepairWalls                  // 修复所有城墙
	RewardSharpenBlades                // 提高打击伤害
)

// AllRewards 升级界面提供的奖励，顺序即按键 1/2/3
var AllRewards = []Reward{RewardReinforceWalls, RewardRepairWalls, RewardSharpenBlades}

// String 返回奖励名称
func (r Reward) String() string {
	switch r {
	case RewardReinforceWalls:
		return "Reinforce walls"
	case RewardRepairWalls:
		return "Repair walls"
	case RewardSharpenBlades:
		return "Sharpen blades"
	default:
		return fmt.Sprintf("Reward(%d)", uint8(r))
	}
}

// ChooseReward 在升级界面选择奖励，随后回到 InGame
func (s *Session) ChooseReward(r Reward) error {
	if !s.active || !s.state.Is(game.GameStateLevelUp) {
		return fmt.Errorf("cannot choose reward in state %v", s.state.Current())
	}

	amounts := s.cfg.Progression.Rewards
	switch r {
	case RewardReinforceWalls:
		for _, side := range components.AllSides {
			systems.IncreaseWallMaxHealth(s.Wall(side), amounts.ReinforceAmount)
		}
	case RewardRepairWalls:
		for _, side := range components.AllSides {
			systems.HealWall(s.Wall(side), amounts.RepairAmount)
		}
	case RewardSharpenBlades:
		s.strikeDamage += amounts.SharpenAmount
	default:
		return fmt.Errorf("unknown reward %v", r)
	}

	logger.Log.Infof("[Session] reward chosen: %s", r)
	s.state.Request(game.GameStateInGame)
	return nil
}

// applyProgression 每次升级后强化所有刷怪点
// 增益倍率乘以配置的成长率；每 ExtraEnemiesEvery 级每波多一个敌人
func (s *Session) applyProgression() {
	level := s.Castle().Level
	growth := s.cfg.Progression.BuffGrowth
	every := s.cfg.Progression.ExtraEnemiesEvery

	for _, id := range ecs.GetEntitiesWith1[*components.SpawnerComponent](s.em) {
		spawner, _ := ecs.GetComponent[*components.SpawnerComponent](s.em, id)
		b := &spawner.Buffs
		b.Health *= growth.Health
		b.Speed *= growth.Speed
		b.Exp *= growth.Exp
		b.Damage *= growth.Damage
		b.AttackSpeed *= growth.AttackSpeed
		if every > 0 && level%every == 0 {
			spawner.NumberPerWave++
		}
	}
	logger.Log.Debugf("[Session] progression applied for level %d", level)
}
