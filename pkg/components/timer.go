package components

// RepeatingTimer 循环倒计时
// 由系统推进（见 systems.TickTimer），组件本身只存数据
type RepeatingTimer struct {
	Duration float64 // 周期（秒）
	Elapsed  float64 // 当前周期内已过时间（秒）
	Finished bool    // 最近一次推进是否完成了至少一个周期
}
