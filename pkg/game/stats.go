package game

import (
	"fmt"
	"strings"

	"github.com/gonewx/fourwalls/pkg/components"
)

// SideStats 单个方位在一局中的统计
type SideStats struct {
	Spawned     int    `yaml:"spawned"`     // 生成的敌人数
	Killed      int    `yaml:"killed"`      // 击杀的敌人数
	ExpEarned   uint64 `yaml:"expEarned"`   // 该方位击杀获得的经验
	DamageTaken int    `yaml:"damageTaken"` // 城墙承受的伤害
	Destroyed   bool   `yaml:"destroyed"`   // 城墙是否被摧毁
}

// SessionReport 一局结束时的汇总
type SessionReport struct {
	Level    uint32                          // 城堡最终等级
	Duration float64                         // 对局时长（秒，仅计入 InGame 时间）
	Sides    [components.SideCount]SideStats // 按 components.AllSides 顺序
}

// TotalKilled 所有方位击杀总数
func (r *SessionReport) TotalKilled() int {
	total := 0
	for _, s := range r.Sides {
		total += s.Killed
	}
	return total
}

// FormatReport 生成可读的对局报告（用于统计界面复制与 headless 输出）
func FormatReport(r SessionReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Castle level: %d\n", r.Level)
	fmt.Fprintf(&b, "Time survived: %.1fs\n", r.Duration)
	fmt.Fprintf(&b, "Enemies killed: %d\n", r.TotalKilled())
	fmt.Fprintf(&b, "%-6s %8s %7s %6s %7s %s\n", "side", "spawned", "killed", "exp", "damage", "wall")
	for _, side := range components.AllSides {
		s := r.Sides[side]
		wall := "standing"
		if s.Destroyed {
			wall = "destroyed"
		}
		fmt.Fprintf(&b, "%-6s %8d %7d %6d %7d %s\n", side, s.Spawned, s.Killed, s.ExpEarned, s.DamageTaken, wall)
	}
	return b.String()
}
