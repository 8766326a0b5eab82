package game

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/config"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
type GameSettings struct {
	// 显示设置
	Fullscreen     bool `yaml:"fullscreen"`     // 启动时是否全屏
	ShowFPS        bool `yaml:"showFPS"`        // 是否显示帧率
	ShowHealthBars bool `yaml:"showHealthBars"` // 是否显示敌人血条
	ShowHints      bool `yaml:"showHints"`      // HUD 上是否显示按键提示

	// 游戏速度倍率 0.5 ~ 2.0，作用于每帧的 deltaTime
	GameSpeed float64 `yaml:"gameSpeed"`

	// 难度名称（config.DifficultyEasy 等），下一局开始时生效
	Difficulty string `yaml:"difficulty"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:     false,
		ShowFPS:        false,
		ShowHealthBars: true,
		ShowHints:      true,
		GameSpeed:      1.0,
		Difficulty:     config.DifficultyNormal,
	}
}

// SettingsManager 设置管理器
// 负责游戏设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// 游戏速度范围
const (
	MinGameSpeed = 0.5
	MaxGameSpeed = 2.0
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 保留给调用方，加载失败不影响创建
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		logger.Log.Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.GameSpeed = clampGameSpeed(loaded.GameSpeed)
	if !config.IsDifficulty(loaded.Difficulty) {
		logger.Log.Warnf("[SettingsManager] unknown difficulty %q, using %s", loaded.Difficulty, config.DifficultyNormal)
		loaded.Difficulty = config.DifficultyNormal
	}

	sm.settings = loaded
	logger.Log.Infof("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logger.Log.Infof("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowFPS 设置是否显示帧率
func (sm *SettingsManager) SetShowFPS(enabled bool) {
	sm.settings.ShowFPS = enabled
}

// SetShowHealthBars 设置是否显示敌人血条
func (sm *SettingsManager) SetShowHealthBars(enabled bool) {
	sm.settings.ShowHealthBars = enabled
}

// SetShowHints 设置是否显示按键提示
func (sm *SettingsManager) SetShowHints(enabled bool) {
	sm.settings.ShowHints = enabled
}

// SetDifficulty 设置难度，未知名称返回错误且不修改设置
func (sm *SettingsManager) SetDifficulty(name string) error {
	if !config.IsDifficulty(name) {
		return fmt.Errorf("unknown difficulty %q", name)
	}
	sm.settings.Difficulty = name
	return nil
}

// CycleDifficulty 切换到下一个难度（hard 之后回到 easy），返回新难度
func (sm *SettingsManager) CycleDifficulty() string {
	next := config.DifficultyLevels[0]
	for i, d := range config.DifficultyLevels {
		if d == sm.settings.Difficulty {
			next = config.DifficultyLevels[(i+1)%len(config.DifficultyLevels)]
			break
		}
	}
	sm.settings.Difficulty = next
	return next
}

// SetGameSpeed 设置游戏速度，限制在 MinGameSpeed ~ MaxGameSpeed
func (sm *SettingsManager) SetGameSpeed(speed float64) {
	sm.settings.GameSpeed = clampGameSpeed(speed)
}

// clampGameSpeed 将速度限制在合法范围内，0 视为默认值
func clampGameSpeed(speed float64) float64 {
	if speed == 0 {
		return 1.0
	}
	if speed < MinGameSpeed {
		return MinGameSpeed
	}
	if speed > MaxGameSpeed {
		return MaxGameSpeed
	}
	return speed
}
