package game

import (
	"fmt"

	"github.com/gonewx/fourwalls/pkg/components"
	"github.com/gonewx/fourwalls/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LifetimeStats 跨对局累计统计
type LifetimeStats struct {
	GamesPlayed int                  `yaml:"gamesPlayed"`
	BestLevel   uint32               `yaml:"bestLevel"`
	LongestRun  float64              `yaml:"longestRun"` // 秒
	Sides       map[string]SideStats `yaml:"sides"`      // 键为 Side.String()，Destroyed 不累计
	Breaches    map[string]int       `yaml:"breaches"`   // 各方位城墙被摧毁次数
}

func newLifetimeStats() *LifetimeStats {
	return &LifetimeStats{
		Sides:    make(map[string]SideStats),
		Breaches: make(map[string]int),
	}
}

// StatsManager 统计管理器
// 负责把每局报告累加到 LifetimeStats 并持久化
type StatsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存统计）
	stats        *LifetimeStats
}

const (
	statsObject   = "stats"
	statsProperty = "lifetime"
)

// NewStatsManager 创建统计管理器并尝试加载已保存的统计
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	sm := &StatsManager{
		gdataManager: gdataManager,
		stats:        newLifetimeStats(),
	}
	if err := sm.Load(); err != nil {
		logger.Log.Warnf("[StatsManager] Failed to load stats: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载统计
func (sm *StatsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		sm.stats = newLifetimeStats()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		sm.stats = newLifetimeStats()
		return fmt.Errorf("failed to load stats: %w", err)
	}

	loaded := newLifetimeStats()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.stats = newLifetimeStats()
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	if loaded.Sides == nil {
		loaded.Sides = make(map[string]SideStats)
	}
	if loaded.Breaches == nil {
		loaded.Breaches = make(map[string]int)
	}
	sm.stats = loaded
	return nil
}

// Save 保存统计到 gdata
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Record 累加一局的报告并保存
// 返回 true 表示刷新了最高等级
func (sm *StatsManager) Record(r SessionReport) (bool, error) {
	s := sm.stats
	s.GamesPlayed++
	newBest := r.Level > s.BestLevel
	if newBest {
		s.BestLevel = r.Level
	}
	if r.Duration > s.LongestRun {
		s.LongestRun = r.Duration
	}
	for _, side := range components.AllSides {
		cur := r.Sides[side]
		key := side.String()
		total := s.Sides[key]
		total.Spawned += cur.Spawned
		total.Killed += cur.Killed
		total.ExpEarned += cur.ExpEarned
		total.DamageTaken += cur.DamageTaken
		s.Sides[key] = total
		if cur.Destroyed {
			s.Breaches[key]++
		}
	}

	logger.Log.Infof("[StatsManager] Recorded game #%d (level %d, best %d)", s.GamesPlayed, r.Level, s.BestLevel)
	return newBest, sm.Save()
}

// GetStats 获取累计统计
func (sm *StatsManager) GetStats() *LifetimeStats {
	return sm.stats
}
