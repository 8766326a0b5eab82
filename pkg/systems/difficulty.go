package systems

import (
	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
)

// ApplyDifficulty 把难度倍率作用到刷怪点
// 刷怪周期按倍率缩放，生命与攻击倍率乘到刷怪增益上，成长倍率继续在此基础上累乘
func ApplyDifficulty(spawner *components.SpawnerComponent, p config.DifficultyProfile) {
	if p.SpawnPeriod > 0 {
		spawner.Timer.Duration *= p.SpawnPeriod
	}
	if p.Health > 0 {
		spawner.Buffs.Health *= p.Health
	}
	if p.Damage > 0 {
		spawner.Buffs.Damage *= p.Damage
	}
}
