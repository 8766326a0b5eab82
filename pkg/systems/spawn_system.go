package systems

import (
	"math"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/ecs"
	"github.com/gonewx/fourwalls/pkg/entities"
	"github.com/gonewx/fourwalls/pkg/logger"
)

// RandSource 随机数来源，*rand.Rand 满足此接口
type RandSource interface {
	Intn(n int) int
}

// SpawnSystem 单个方位的刷怪系统
// 每个方位各有一个实例，只读写本方位的刷怪点
type SpawnSystem struct {
	side components.Side
	em   *ecs.EntityManager
	cfg  *config.GameConfig
	rng  RandSource
}

// NewSpawnSystem 创建指定方位的刷怪系统
func NewSpawnSystem(side components.Side, em *ecs.EntityManager, cfg *config.GameConfig, rng RandSource) *SpawnSystem {
	return &SpawnSystem{side: side, em: em, cfg: cfg, rng: rng}
}

// Side 返回系统负责的方位
func (s *SpawnSystem) Side() components.Side {
	return s.side
}

// Update 推进刷怪计时器，完成时生成一波敌人
// 返回本次生成的敌人数量
func (s *SpawnSystem) Update(deltaTime float64) int {
	spawnerID, spawner := MustFindSpawner(s.em, s.side)
	if !TickTimer(&spawner.Timer, deltaTime) {
		return 0
	}

	pos := MustPosition(s.em, spawnerID, s.side.String()+" spawner")

	offsets := WaveOffsets(spawner.NumberPerWave, spawner.Radius)
	spawned := 0
	for _, off := range offsets {
		kind := components.EnemyKind(s.rng.Intn(2))
		_, err := entities.NewEnemyEntity(s.em, s.cfg, kind, s.side, pos.X+off.X, pos.Y+off.Y, spawner.Buffs)
		if err != nil {
			logger.Log.Errorf("[SpawnSystem] failed to spawn %s on %s: %v", kind, s.side, err)
			continue
		}
		spawned++
	}
	spawner.WavesSpawned++

	logger.Log.Debugf("[SpawnSystem] %s wave %d: %d enemies", s.side, spawner.WavesSpawned, spawned)
	return spawned
}

// WaveOffsets 计算一波敌人相对刷怪点的偏移
// 第 i 个敌人位于把 (0, radius) 旋转 2π/n·i 后的位置
func WaveOffsets(number uint32, radius float64) []config.Point {
	if number == 0 {
		return nil
	}
	out := make([]config.Point, number)
	step := 2 * math.Pi / float64(number)
	for i := range out {
		angle := step * float64(i)
		out[i] = config.Point{
			X: -radius * math.Sin(angle),
			Y: radius * math.Cos(angle),
		}
	}
	return out
}
