package systems

import (
	"math"
	"testing"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/ecs"
)

const epsilon = 1e-9

// TestSpawnSystemWaveOfFour 4 个敌人间隔 90° 分布在刷怪点周围
func TestSpawnSystemWaveOfFour(t *testing.T) {
	em, cfg := newTestWorld(t)
	_, spawner := MustFindSpawner(em, components.SideNorth)
	spawner.NumberPerWave = 4

	sys := NewSpawnSystem(components.SideNorth, em, cfg, &seqRand{values: []int{0, 1, 1, 0}})

	if n := sys.Update(4.9); n != 0 {
		t.Fatalf("spawned %d before period elapsed", n)
	}
	if n := sys.Update(0.2); n != 4 {
		t.Fatalf("spawned %d, want 4", n)
	}

	// 刷怪点 (0, 500)，半径 200，从 +Y 轴开始逆时针
	want := [][2]float64{{0, 700}, {-200, 500}, {0, 300}, {200, 500}}
	wantKinds := []components.EnemyKind{components.EnemyGoblin, components.EnemySpearGoblin, components.EnemySpearGoblin, components.EnemyGoblin}

	ids := sideEnemies(em, components.SideNorth)
	if len(ids) != 4 {
		t.Fatalf("found %d north enemies, want 4", len(ids))
	}
	for i, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if math.Abs(pos.X-want[i][0]) > epsilon || math.Abs(pos.Y-want[i][1]) > epsilon {
			t.Errorf("enemy %d at (%v, %v), want (%v, %v)", i, pos.X, pos.Y, want[i][0], want[i][1])
		}
		dist := math.Hypot(pos.X-0, pos.Y-500)
		if math.Abs(dist-200) > epsilon {
			t.Errorf("enemy %d distance %v, want 200", i, dist)
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Kind != wantKinds[i] {
			t.Errorf("enemy %d kind %v, want %v", i, enemy.Kind, wantKinds[i])
		}
	}
	if spawner.WavesSpawned != 1 {
		t.Errorf("WavesSpawned = %d, want 1", spawner.WavesSpawned)
	}

	for _, other := range []components.Side{components.SideSouth, components.SideWest, components.SideEast} {
		if n := len(sideEnemies(em, other)); n != 0 {
			t.Errorf("side %s has %d enemies, want 0", other, n)
		}
	}
}

// TestSpawnSystemOneWavePerTick 一次跨越多个周期也只生成一波
func TestSpawnSystemOneWavePerTick(t *testing.T) {
	em, cfg := newTestWorld(t)
	sys := NewSpawnSystem(components.SideEast, em, cfg, &seqRand{})

	if n := sys.Update(16); n != 1 {
		t.Fatalf("spawned %d, want 1", n)
	}
	_, spawner := MustFindSpawner(em, components.SideEast)
	if math.Abs(spawner.Timer.Elapsed-1) > epsilon {
		t.Errorf("Elapsed = %v, want 1", spawner.Timer.Elapsed)
	}
}

// TestSpawnSystemAppliesBuffs 增益倍率作用于新敌人
func TestSpawnSystemAppliesBuffs(t *testing.T) {
	em, cfg := newTestWorld(t)
	_, spawner := MustFindSpawner(em, components.SideWest)
	spawner.Buffs.Health = 1.255
	spawner.Buffs.Exp = 2

	sys := NewSpawnSystem(components.SideWest, em, cfg, &seqRand{values: []int{0}})
	sys.Update(5)

	ids := sideEnemies(em, components.SideWest)
	if len(ids) != 1 {
		t.Fatalf("found %d enemies, want 1", len(ids))
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, ids[0])
	if enemy.Health != 125 || enemy.Exp != 20 {
		t.Errorf("enemy health=%d exp=%d, want 125 and 20", enemy.Health, enemy.Exp)
	}
}

// TestWaveOffsets 测试偏移量
func TestWaveOffsets(t *testing.T) {
	if WaveOffsets(0, 100) != nil {
		t.Error("zero enemies should give nil")
	}
	single := WaveOffsets(1, 100)
	if len(single) != 1 || single[0].X != 0 || single[0].Y != 100 {
		t.Errorf("single offset = %+v, want (0, 100)", single)
	}
	for i, off := range WaveOffsets(6, 50) {
		if d := math.Hypot(off.X, off.Y); math.Abs(d-50) > epsilon {
			t.Errorf("offset %d distance %v, want 50", i, d)
		}
	}
}

// TestMustFindSpawnerPanics 刷怪点数量不对时 panic
func TestMustFindSpawnerPanics(t *testing.T) {
	em := ecs.NewEntityManager()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing spawner")
		}
	}()
	MustFindSpawner(em, components.SideNorth)
}
