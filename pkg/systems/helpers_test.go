package systems

import (
	"testing"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/entities"
	"github.com/gonewx/fourwalls/pkg/game"
)

// seqRand 按顺序返回预设值的随机源
type seqRand struct {
	values []int
	next   int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)] % n
	r.next++
	return v
}

// newTestWorld 创建一座城堡、四面城墙和四个刷怪点
func newTestWorld(t *testing.T) (*ecs.EntityManager, *config.GameConfig) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	if _, err := entities.NewCastleEntity(em, cfg); err != nil {
		t.Fatalf("NewCastleEntity: %v", err)
	}
	for _, side := range components.AllSides {
		if _, err := entities.NewWallEntity(em, cfg, side); err != nil {
			t.Fatalf("NewWallEntity(%s): %v", side, err)
		}
		if _, err := entities.NewSpawnerEntity(em, cfg, side); err != nil {
			t.Fatalf("NewSpawnerEntity(%s): %v", side, err)
		}
	}
	return em, cfg
}

func newEnemy(t *testing.T, em *ecs.EntityManager, cfg *config.GameConfig, side components.Side, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(em, cfg, components.EnemyGoblin, side, x, y, components.DefaultEnemySpawnBuffs())
	if err != nil {
		t.Fatalf("NewEnemyEntity: %v", err)
	}
	return id
}

func inGameStateMachine() *game.StateMachine[game.GameState] {
	sm := game.NewGameStateMachine()
	sm.Reset(game.GameStateInGame)
	return sm
}
