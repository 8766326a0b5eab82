package components

// PositionComponent 世界坐标（原点为城堡中心，Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 线速度（世界单位/秒）
// MovementSystem 每帧覆盖写入，PhysicsSystem 负责积分
type VelocityComponent struct {
	X             float64
	Y             float64
	LinearDamping float64 // 线性阻尼系数
}
