package config

import (
	"fmt"
	"os"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameConfigPath 嵌入的默认配置路径
const DefaultGameConfigPath = "data/game.yaml"

// GameConfig 游戏数值配置
// 一局游戏（Session）开始时读取，运行期间只读
type GameConfig struct {
	Castle      CastleConfig          `yaml:"castle"`
	Wall        WallConfig            `yaml:"wall"`
	Spawner     SpawnerConfig         `yaml:"spawner"`
	Enemies     map[string]EnemyStats `yaml:"enemies"` // 键为 EnemyKind.String()
	Movement    MovementConfig        `yaml:"movement"`
	Layout      LayoutConfig          `yaml:"layout"`
	Progression ProgressionConfig     `yaml:"progression"`
	Player      PlayerConfig          `yaml:"player"`

	Difficulties map[string]DifficultyProfile `yaml:"difficulties"` // 键为 DifficultyEasy 等
}

// CastleConfig 城堡升级配置
type CastleConfig struct {
	NextLevelExp       uint32  `yaml:"nextLevelExp"`
	NextLevelExpGrowth float64 `yaml:"nextLevelExpGrowth"`
}

// WallConfig 城墙配置（四面城墙共用）
type WallConfig struct {
	BaseHealth int     `yaml:"baseHealth"`
	Thickness  float64 `yaml:"thickness"`
	Length     float64 `yaml:"length"`
}

// SpawnerConfig 刷怪点默认配置
type SpawnerConfig struct {
	NumberPerWave uint32  `yaml:"numberPerWave"`
	Radius        float64 `yaml:"radius"`
	Period        float64 `yaml:"period"` // 秒
}

// EnemyStats 单个敌人类型的基础属性
type EnemyStats struct {
	Size          float64 `yaml:"size"` // 碰撞球半径
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	Exp           uint32  `yaml:"exp"`
	Damage        int     `yaml:"damage"`
	AttackSpeed   float64 `yaml:"attackSpeed"` // 每秒攻击次数
	LinearDamping float64 `yaml:"linearDamping"`
}

// MovementConfig 移动配置
type MovementConfig struct {
	ForceMultiplier float64 `yaml:"forceMultiplier"`
}

// Point 世界坐标点
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayoutConfig 场景布局，键为 Side.String()
type LayoutConfig struct {
	WorldHalfExtent float64          `yaml:"worldHalfExtent"`
	Walls           map[string]Point `yaml:"walls"`
	Spawners        map[string]Point `yaml:"spawners"`
}

// BuffGrowth 每级刷怪增益倍率
type BuffGrowth struct {
	Health      float64 `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	Exp         float64 `yaml:"exp"`
	Damage      float64 `yaml:"damage"`
	AttackSpeed float64 `yaml:"attackSpeed"`
}

// RewardConfig 升级奖励数值
type RewardConfig struct {
	ReinforceAmount int `yaml:"reinforceAmount"`
	RepairAmount    int `yaml:"repairAmount"`
	SharpenAmount   int `yaml:"sharpenAmount"`
}

// ProgressionConfig 成长配置
type ProgressionConfig struct {
	BuffGrowth        BuffGrowth   `yaml:"buffGrowth"`
	ExtraEnemiesEvery uint32       `yaml:"extraEnemiesEvery"`
	Rewards           RewardConfig `yaml:"rewards"`
}

// PlayerConfig 玩家打击配置
type PlayerConfig struct {
	StrikeDamage int     `yaml:"strikeDamage"`
	StrikeRadius float64 `yaml:"strikeRadius"`
}

// 难度名称，设置中保存的就是这些字符串
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// DifficultyLevels 按从易到难排列，设置界面按此顺序循环
var DifficultyLevels = []string{DifficultyEasy, DifficultyNormal, DifficultyHard}

// DifficultyProfile 难度倍率
// 对局开始时作用在每个刷怪点上，之后的升级成长在此基础上继续累乘
type DifficultyProfile struct {
	SpawnPeriod float64 `yaml:"spawnPeriod"` // 刷怪周期倍率，小于 1 刷得更快
	Health      float64 `yaml:"health"`      // 敌人生命倍率
	Damage      float64 `yaml:"damage"`      // 敌人攻击倍率
}

// DefaultGameConfig 返回内置默认配置（与 data/game.yaml 一致）
// 配置文件不可用时作为降级方案
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Castle: CastleConfig{
			NextLevelExp:       10,
			NextLevelExpGrowth: 1.2,
		},
		Wall: WallConfig{
			BaseHealth: 100,
			Thickness:  10,
			Length:     100,
		},
		Spawner: SpawnerConfig{
			NumberPerWave: 1,
			Radius:        200,
			Period:        5.0,
		},
		Enemies: map[string]EnemyStats{
			components.EnemyGoblin.String(): {
				Size: 16, Health: 100, Speed: 10, Exp: 10,
				Damage: 5, AttackSpeed: 1.0, LinearDamping: 5.0,
			},
			components.EnemySpearGoblin.String(): {
				Size: 16, Health: 80, Speed: 12, Exp: 10,
				Damage: 7, AttackSpeed: 0.8, LinearDamping: 5.0,
			},
		},
		Movement: MovementConfig{
			ForceMultiplier: 1000,
		},
		Layout: LayoutConfig{
			WorldHalfExtent: 1024,
			Walls: map[string]Point{
				components.SideNorth.String(): {X: 0, Y: 50},
				components.SideSouth.String(): {X: 0, Y: -50},
				components.SideWest.String():  {X: -50, Y: 0},
				components.SideEast.String():  {X: 50, Y: 0},
			},
			Spawners: map[string]Point{
				components.SideNorth.String(): {X: 0, Y: 500},
				components.SideSouth.String(): {X: 0, Y: -500},
				components.SideWest.String():  {X: -500, Y: 0},
				components.SideEast.String():  {X: 500, Y: 0},
			},
		},
		Progression: ProgressionConfig{
			BuffGrowth: BuffGrowth{
				Health: 1.1, Speed: 1.02, Exp: 1.05, Damage: 1.08, AttackSpeed: 1.02,
			},
			ExtraEnemiesEvery: 3,
			Rewards: RewardConfig{
				ReinforceAmount: 25,
				RepairAmount:    50,
				SharpenAmount:   10,
			},
		},
		Player: PlayerConfig{
			StrikeDamage: 40,
			StrikeRadius: 20,
		},
		Difficulties: map[string]DifficultyProfile{
			DifficultyEasy:   {SpawnPeriod: 1.3, Health: 0.8, Damage: 0.8},
			DifficultyNormal: {SpawnPeriod: 1.0, Health: 1.0, Damage: 1.0},
			DifficultyHard:   {SpawnPeriod: 0.75, Health: 1.25, Damage: 1.25},
		},
	}
}

// LoadGameConfig 从嵌入资源加载游戏配置
// 参数：
//
//	filepath - 嵌入资源路径（如 "data/game.yaml"）
//
// 返回：
//
//	*GameConfig - 解析并校验后的配置
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadGameConfig(filepath string) (*GameConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", filepath, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// LoadGameConfigFile 从磁盘加载游戏配置（用于 -config 参数覆盖嵌入配置）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// validateGameConfig 验证配置的完整性和合法性
func validateGameConfig(cfg *GameConfig) error {
	if cfg.Castle.NextLevelExp == 0 {
		return fmt.Errorf("castle: nextLevelExp must be positive")
	}
	if cfg.Castle.NextLevelExpGrowth <= 1.0 {
		return fmt.Errorf("castle: nextLevelExpGrowth must be > 1.0, got %v", cfg.Castle.NextLevelExpGrowth)
	}

	if cfg.Wall.BaseHealth <= 0 {
		return fmt.Errorf("wall: baseHealth must be positive, got %d", cfg.Wall.BaseHealth)
	}
	if cfg.Wall.Thickness <= 0 || cfg.Wall.Length <= 0 {
		return fmt.Errorf("wall: thickness and length must be positive")
	}

	if cfg.Spawner.NumberPerWave == 0 {
		return fmt.Errorf("spawner: numberPerWave must be at least 1")
	}
	if cfg.Spawner.Period <= 0 {
		return fmt.Errorf("spawner: period must be positive, got %v", cfg.Spawner.Period)
	}
	if cfg.Spawner.Radius < 0 {
		return fmt.Errorf("spawner: radius cannot be negative, got %v", cfg.Spawner.Radius)
	}

	for _, kind := range []components.EnemyKind{components.EnemyGoblin, components.EnemySpearGoblin} {
		stats, ok := cfg.Enemies[kind.String()]
		if !ok {
			return fmt.Errorf("enemies: missing stats for %s", kind)
		}
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", kind, stats.Health)
		}
		if stats.Speed < 0 || stats.Size <= 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative and size must be positive", kind)
		}
		if stats.Damage < 0 || stats.AttackSpeed < 0 {
			return fmt.Errorf("enemy %s: damage and attackSpeed cannot be negative", kind)
		}
	}

	if cfg.Movement.ForceMultiplier <= 0 {
		return fmt.Errorf("movement: forceMultiplier must be positive")
	}

	if cfg.Layout.WorldHalfExtent <= 0 {
		return fmt.Errorf("layout: worldHalfExtent must be positive")
	}
	for _, side := range components.AllSides {
		if _, ok := cfg.Layout.Walls[side.String()]; !ok {
			return fmt.Errorf("layout: missing wall position for %s", side)
		}
		if _, ok := cfg.Layout.Spawners[side.String()]; !ok {
			return fmt.Errorf("layout: missing spawner position for %s", side)
		}
	}

	g := cfg.Progression.BuffGrowth
	if g.Health <= 0 || g.Speed <= 0 || g.Exp <= 0 || g.Damage <= 0 || g.AttackSpeed <= 0 {
		return fmt.Errorf("progression: buffGrowth factors must be positive")
	}

	if cfg.Player.StrikeDamage < 0 || cfg.Player.StrikeRadius < 0 {
		return fmt.Errorf("player: strikeDamage and strikeRadius cannot be negative")
	}

	for _, name := range DifficultyLevels {
		p, ok := cfg.Difficulties[name]
		if !ok {
			return fmt.Errorf("difficulties: missing profile %q", name)
		}
		if p.SpawnPeriod <= 0 || p.Health <= 0 || p.Damage <= 0 {
			return fmt.Errorf("difficulty %s: factors must be positive", name)
		}
	}

	return nil
}

// EnemyStatsFor 获取指定敌人类型的基础属性
// 配置已校验过两种敌人都存在，找不到说明配置未经校验，直接 panic
func (c *GameConfig) EnemyStatsFor(kind components.EnemyKind) EnemyStats {
	stats, ok := c.Enemies[kind.String()]
	if !ok {
		panic(fmt.Sprintf("config: no stats for enemy kind %s", kind))
	}
	return stats
}

// WallPosition 获取指定方位城墙的位置
func (c *GameConfig) WallPosition(side components.Side) Point {
	p, ok := c.Layout.Walls[side.String()]
	if !ok {
		panic(fmt.Sprintf("config: no wall position for side %s", side))
	}
	return p
}

// SpawnerPosition 获取指定方位刷怪点的位置
func (c *GameConfig) SpawnerPosition(side components.Side) Point {
	p, ok := c.Layout.Spawners[side.String()]
	if !ok {
		panic(fmt.Sprintf("config: no spawner position for side %s", side))
	}
	return p
}

// IsDifficulty 检查难度名称是否合法
func IsDifficulty(name string) bool {
	for _, d := range DifficultyLevels {
		if d == name {
			return true
		}
	}
	return false
}

// DifficultyFor 获取难度倍率
// 名称来自用户设置，未知名称按 normal 处理
func (c *GameConfig) DifficultyFor(name string) DifficultyProfile {
	if p, ok := c.Difficulties[name]; ok {
		return p
	}
	if p, ok := c.Difficulties[DifficultyNormal]; ok {
		return p
	}
	return DifficultyProfile{SpawnPeriod: 1, Health: 1, Damage: 1}
}
