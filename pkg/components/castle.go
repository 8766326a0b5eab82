package components

// CastleComponent 城堡组件（全局唯一）
// 记录城堡等级与经验，敌人死亡时累积经验，达到阈值后升级
type CastleComponent struct {
	Level              uint32  // 当前等级，从 0 开始
	Exp                uint32  // 当前经验
	NextLevelExp       uint32  // 升到下一级所需经验
	NextLevelExpGrowth float64 // 每次升级后阈值的增长倍率，必须 > 1.0
}
