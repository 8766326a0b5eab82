package components

import "fmt"

// Side 城堡的四个方位
// 每个方位拥有独立的城墙、刷怪点和敌人集合
type Side uint8

const (
	SideNorth Side = iota
	SideSouth
	SideWest
	SideEast
)

// SideCount 方位数量
const SideCount = 4

// AllSides 所有方位，顺序固定（北、南、西、东）
// 系统按此顺序为每个方位各实例化一次
var AllSides = [SideCount]Side{SideNorth, SideSouth, SideWest, SideEast}

// String 返回方位名称（同时用作配置文件中的键）
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	case SideWest:
		return "west"
	case SideEast:
		return "east"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Valid 检查方位值是否合法
func (s Side) Valid() bool {
	return s < SideCount
}

// ParseSide 从名称解析方位
func ParseSide(name string) (Side, error) {
	for _, s := range AllSides {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown side %q", name)
}

// SideComponent 方位标签组件
// 城墙、刷怪点、敌人都携带此组件，系统通过它按方位过滤实体
type SideComponent struct {
	Side Side
}
