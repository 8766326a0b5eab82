package components

// ColliderShape 碰撞体形状
type ColliderShape uint8

const (
	ColliderBall ColliderShape = iota
	ColliderBox
)

// ColliderComponent 定义实体的碰撞体
// 中心与 PositionComponent 对齐
type ColliderComponent struct {
	Shape      ColliderShape
	Radius     float64 // 球形半径（ColliderBall）
	HalfWidth  float64 // 盒子半宽（ColliderBox）
	HalfHeight float64 // 盒子半高（ColliderBox）
}

// Extents 返回碰撞体的半宽与半高
func (c *ColliderComponent) Extents() (float64, float64) {
	if c.Shape == ColliderBall {
		return c.Radius, c.Radius
	}
	return c.HalfWidth, c.HalfHeight
}
