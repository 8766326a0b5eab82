package entities

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// NewCastleEntity 创建城堡实体（每局唯一）
// 城堡位于世界原点，等级从 0 开始
func NewCastleEntity(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if cfg.Castle.NextLevelExpGrowth <= 1.0 {
		return 0, fmt.Errorf("castle growth must be > 1.0, got %v", cfg.Castle.NextLevelExpGrowth)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CastleComponent{
		Level:              0,
		Exp:                0,
		NextLevelExp:       cfg.Castle.NextLevelExp,
		NextLevelExpGrowth: cfg.Castle.NextLevelExpGrowth,
	})
	ecs.AddComponent(em, id, &components.PositionComponent{})
	return id, nil
}

// NewWallEntity 创建指定方位的城墙实体
// 北/南城墙水平放置，西/东城墙竖直放置
func NewWallEntity(em *ecs.EntityManager, cfg *config.GameConfig, side components.Side) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("game config cannot be nil")
	}
	if !side.Valid() {
		return 0, fmt.Errorf("invalid side %v", side)
	}

	pos := cfg.WallPosition(side)
	horizontal := side == components.SideNorth || side == components.SideSouth
	halfThickness := cfg.Wall.Thickness / 2
	halfLength := cfg.Wall.Length / 2

	wall := &components.WallComponent{
		Health:        cfg.Wall.BaseHealth,
		MaxHealth:     cfg.Wall.BaseHealth,
		HalfThickness: halfThickness,
		HalfLength:    halfLength,
		Horizontal:    horizontal,
	}
	collider := &components.ColliderComponent{Shape: components.ColliderBox}
	collider.HalfWidth, collider.HalfHeight = wall.Extents()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, wall)
	ecs.AddComponent(em, id, &components.SideComponent{Side: side})
	ecs.AddComponent(em, id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	ecs.AddComponent(em, id, collider)
	return id, nil
}
