package entities

import (
	"testing"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

// TestNewCastleEntity 测试城堡初始属性
func TestNewCastleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewCastleEntity(em, cfg)
	if err != nil {
		t.Fatalf("NewCastleEntity error: %v", err)
	}
	castle, ok := ecs.GetComponent[*components.CastleComponent](em, id)
	if !ok {
		t.Fatal("castle component missing")
	}
	if castle.Level != 0 || castle.Exp != 0 || castle.NextLevelExp != 10 || castle.NextLevelExpGrowth != 1.2 {
		t.Errorf("castle = %+v", *castle)
	}

	cfg.Castle.NextLevelExpGrowth = 1.0
	if _, err := NewCastleEntity(em, cfg); err == nil {
		t.Error("growth 1.0 should be rejected")
	}
	if _, err := NewCastleEntity(nil, cfg); err == nil {
		t.Error("nil entity manager should be rejected")
	}
}

// TestNewWallEntity 测试城墙方向与碰撞体
func TestNewWallEntity(t *testing.T) {
	tests := []struct {
		side       components.Side
		horizontal bool
		x, y       float64
	}{
		{components.SideNorth, true, 0, 50},
		{components.SideSouth, true, 0, -50},
		{components.SideWest, false, -50, 0},
		{components.SideEast, false, 50, 0},
	}

	cfg := config.DefaultGameConfig()
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewWallEntity(em, cfg, tt.side)
			if err != nil {
				t.Fatalf("NewWallEntity error: %v", err)
			}
			wall, _ := ecs.GetComponent[*components.WallComponent](em, id)
			if wall.Health != 100 || wall.MaxHealth != 100 {
				t.Errorf("wall health = %d/%d, want 100/100", wall.Health, wall.MaxHealth)
			}
			if wall.Horizontal != tt.horizontal {
				t.Errorf("Horizontal = %v, want %v", wall.Horizontal, tt.horizontal)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != tt.x || pos.Y != tt.y {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.x, tt.y)
			}
			col, _ := ecs.GetComponent[*components.ColliderComponent](em, id)
			w, h := col.Extents()
			if tt.horizontal && (w != 50 || h != 5) {
				t.Errorf("horizontal extents = (%v, %v), want (50, 5)", w, h)
			}
			if !tt.horizontal && (w != 5 || h != 50) {
				t.Errorf("vertical extents = (%v, %v), want (5, 50)", w, h)
			}
			side, _ := ecs.GetComponent[*components.SideComponent](em, id)
			if side.Side != tt.side {
				t.Errorf("side = %v, want %v", side.Side, tt.side)
			}
		})
	}
}

// TestNewSpawnerEntity 测试刷怪点默认值
func TestNewSpawnerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewSpawnerEntity(em, config.DefaultGameConfig(), components.SideEast)
	if err != nil {
		t.Fatalf("NewSpawnerEntity error: %v", err)
	}
	sp, _ := ecs.GetComponent[*components.SpawnerComponent](em, id)
	if sp.NumberPerWave != 1 || sp.Radius != 200 || sp.Timer.Duration != 5 || sp.Timer.Elapsed != 0 {
		t.Errorf("spawner = %+v", *sp)
	}
	if sp.Buffs != components.DefaultEnemySpawnBuffs() {
		t.Errorf("buffs = %+v, want defaults", sp.Buffs)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 500 || pos.Y != 0 {
		t.Errorf("position = (%v, %v), want (500, 0)", pos.X, pos.Y)
	}

	if _, err := NewSpawnerEntity(em, config.DefaultGameConfig(), components.Side(9)); err == nil {
		t.Error("invalid side should be rejected")
	}
}

// TestBuffedEnemyStats 整数属性截断
func TestBuffedEnemyStats(t *testing.T) {
	base := config.EnemyStats{Size: 16, Health: 100, Speed: 10, Exp: 10, Damage: 5, AttackSpeed: 1.0, LinearDamping: 5}

	tests := []struct {
		name   string
		buffs  components.EnemySpawnBuffs
		health int
		exp    uint32
		damage int
		speed  float64
	}{
		{"no buffs", components.DefaultEnemySpawnBuffs(), 100, 10, 5, 10},
		{"truncates", components.EnemySpawnBuffs{Health: 1.109, Speed: 1.5, Exp: 1.19, Damage: 1.39, AttackSpeed: 1}, 110, 11, 6, 15},
		{"shrinks", components.EnemySpawnBuffs{Health: 0.5, Speed: 0.5, Exp: 0.05, Damage: 0.1, AttackSpeed: 1}, 50, 0, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuffedEnemyStats(base, tt.buffs)
			if got.Health != tt.health || got.Exp != tt.exp || got.Damage != tt.damage || got.Speed != tt.speed {
				t.Errorf("BuffedEnemyStats = %+v", got)
			}
			if got.Size != base.Size || got.LinearDamping != base.LinearDamping {
				t.Error("unbuffed fields must be kept")
			}
		})
	}
}

// TestNewEnemyEntity 测试敌人组件组合
func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	id, err := NewEnemyEntity(em, cfg, components.EnemySpearGoblin, components.SideWest, -300, 20, components.DefaultEnemySpawnBuffs())
	if err != nil {
		t.Fatalf("NewEnemyEntity error: %v", err)
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if enemy.Kind != components.EnemySpearGoblin || enemy.Health != 80 || enemy.Damage != 7 || enemy.Resolved {
		t.Errorf("enemy = %+v", *enemy)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.X != 0 || vel.Y != 0 || vel.LinearDamping != 5 {
		t.Errorf("velocity = %+v", *vel)
	}
	if !ecs.HasComponent[*components.ColliderComponent](em, id) {
		t.Error("collider missing")
	}
	side, _ := ecs.GetComponent[*components.SideComponent](em, id)
	if side.Side != components.SideWest {
		t.Errorf("side = %v", side.Side)
	}

	delete(cfg.Enemies, components.EnemyGoblin.String())
	if _, err := NewEnemyEntity(em, cfg, components.EnemyGoblin, components.SideWest, 0, 0, components.DefaultEnemySpawnBuffs()); err == nil {
		t.Error("missing kind stats should fail")
	}
}
