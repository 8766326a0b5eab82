package entities

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// NewSpawnerEntity 创建指定方位的刷怪点
// 计时器从 0 开始，第一波在一个完整周期后出现
func NewSpawnerEntity(em *ecs.EntityManager, cfg *config.GameConfig, side components.Side) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if !side.Valid() {
		return 0, fmt.Errorf("invalid side %v", side)
	}

	pos := cfg.SpawnerPosition(side)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpawnerComponent{
		NumberPerWave: cfg.Spawner.NumberPerWave,
		Radius:        cfg.Spawner.Radius,
		Timer:         components.RepeatingTimer{Duration: cfg.Spawner.Period},
		Buffs:         components.DefaultEnemySpawnBuffs(),
	})
	ecs.AddComponent(em, id, &components.SideComponent{Side: side})
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	return id, nil
}
