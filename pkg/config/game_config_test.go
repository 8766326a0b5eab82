package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/embedded"
)

// TestDefaultGameConfigValid 默认配置必须通过校验
func TestDefaultGameConfigValid(t *testing.T) {
	if err := validateGameConfig(DefaultGameConfig()); err != nil {
		t.Fatalf("DefaultGameConfig() is invalid: %v", err)
	}
}

// TestDataFileMatchesDefaults data/game.yaml 与内置默认配置保持一致
func TestDataFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfigFile(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("LoadGameConfigFile() error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("data/game.yaml differs from DefaultGameConfig():\n got  %+v\n want %+v", cfg, DefaultGameConfig())
	}
}

// TestLoadGameConfigEmbedded 通过 embedded 包加载
func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("spawner:\n  numberPerWave: 4\n  radius: 120\n  period: 2\n")},
	})

	cfg, err := LoadGameConfig(DefaultGameConfigPath)
	if err != nil {
		t.Fatalf("LoadGameConfig() error: %v", err)
	}
	if cfg.Spawner.NumberPerWave != 4 || cfg.Spawner.Radius != 120 || cfg.Spawner.Period != 2 {
		t.Errorf("Spawner config not applied: %+v", cfg.Spawner)
	}
	// 未覆盖的字段保留默认值
	if cfg.Wall.BaseHealth != 100 {
		t.Errorf("Wall.BaseHealth: got %d, want 100", cfg.Wall.BaseHealth)
	}

	if _, err := LoadGameConfig("data/missing.yaml"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

func TestParseGameConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"增长倍率必须大于1", "castle:\n  nextLevelExpGrowth: 1.0\n", "nextLevelExpGrowth"},
		{"升级阈值不能为0", "castle:\n  nextLevelExp: 0\n", "nextLevelExp"},
		{"城墙生命必须为正", "wall:\n  baseHealth: 0\n", "baseHealth"},
		{"每波至少一个敌人", "spawner:\n  numberPerWave: 0\n", "numberPerWave"},
		{"刷怪周期必须为正", "spawner:\n  period: -1\n", "period"},
		{"敌人生命必须为正", "enemies:\n  goblin:\n    size: 16\n    health: 0\n", "health"},
		{"力倍率必须为正", "movement:\n  forceMultiplier: 0\n", "forceMultiplier"},
		{"难度倍率必须为正", "difficulties:\n  hard:\n    spawnPeriod: 0.5\n    health: 0\n    damage: 1\n", "difficulty hard"},
		{"YAML 语法错误", "castle: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadGameConfigFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := "wall:\n  baseHealth: 250\n  thickness: 10\n  length: 100\nplayer:\n  strikeDamage: 99\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := LoadGameConfigFile(path)
	if err != nil {
		t.Fatalf("LoadGameConfigFile() error: %v", err)
	}
	if cfg.Wall.BaseHealth != 250 {
		t.Errorf("Wall.BaseHealth: got %d, want 250", cfg.Wall.BaseHealth)
	}
	if cfg.Player.StrikeDamage != 99 {
		t.Errorf("Player.StrikeDamage: got %d, want 99", cfg.Player.StrikeDamage)
	}

	if _, err := LoadGameConfigFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLayoutLookups(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		side    components.Side
		wall    Point
		spawner Point
	}{
		{components.SideNorth, Point{0, 50}, Point{0, 500}},
		{components.SideSouth, Point{0, -50}, Point{0, -500}},
		{components.SideWest, Point{-50, 0}, Point{-500, 0}},
		{components.SideEast, Point{50, 0}, Point{500, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			if got := cfg.WallPosition(tt.side); got != tt.wall {
				t.Errorf("WallPosition: got %+v, want %+v", got, tt.wall)
			}
			if got := cfg.SpawnerPosition(tt.side); got != tt.spawner {
				t.Errorf("SpawnerPosition: got %+v, want %+v", got, tt.spawner)
			}
		})
	}
}

func TestEnemyStatsFor(t *testing.T) {
	cfg := DefaultGameConfig()

	goblin := cfg.EnemyStatsFor(components.EnemyGoblin)
	if goblin.Health != 100 || goblin.Speed != 10 || goblin.Exp != 10 {
		t.Errorf("Goblin stats mismatch: %+v", goblin)
	}
	spear := cfg.EnemyStatsFor(components.EnemySpearGoblin)
	if spear.Health != 80 || spear.Speed != 12 || spear.Exp != 10 {
		t.Errorf("SpearGoblin stats mismatch: %+v", spear)
	}

	delete(cfg.Enemies, components.EnemyGoblin.String())
	defer func() {
		if recover() == nil {
			t.Error("EnemyStatsFor should panic for missing kind")
		}
	}()
	cfg.EnemyStatsFor(components.EnemyGoblin)
}

func TestDifficultyFor(t *testing.T) {
	cfg := DefaultGameConfig()
	tests := []struct {
		name string
		want DifficultyProfile
	}{
		{DifficultyEasy, DifficultyProfile{SpawnPeriod: 1.3, Health: 0.8, Damage: 0.8}},
		{DifficultyNormal, DifficultyProfile{SpawnPeriod: 1.0, Health: 1.0, Damage: 1.0}},
		{DifficultyHard, DifficultyProfile{SpawnPeriod: 0.75, Health: 1.25, Damage: 1.25}},
		{"nightmare", DifficultyProfile{SpawnPeriod: 1.0, Health: 1.0, Damage: 1.0}},
		{"", DifficultyProfile{SpawnPeriod: 1.0, Health: 1.0, Damage: 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.DifficultyFor(tt.name); got != tt.want {
				t.Errorf("DifficultyFor(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
			if got := IsDifficulty(tt.name); got != (tt.name == DifficultyEasy || tt.name == DifficultyNormal || tt.name == DifficultyHard) {
				t.Errorf("IsDifficulty(%q) = %v", tt.name, got)
			}
		})
	}
}
