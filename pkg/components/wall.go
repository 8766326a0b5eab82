package components

// WallComponent 城墙组件（每个方位一面）
//
// 生命值允许降到负数：Health <= 0 即为"城墙被摧毁"信号，
// 由 WallDestroyedSystem 检测，实体本身不会被立即删除。
type WallComponent struct {
	Health        int     // 当前生命值
	MaxHealth     int     // 最大生命值
	HalfThickness float64 // 城墙半厚度（世界单位）
	HalfLength    float64 // 城墙半长度（世界单位）
	Horizontal    bool    // 水平城墙（北/南）为 true，竖直城墙（西/东）为 false
}

// Extents 返回城墙矩形的半宽和半高（世界单位）
func (w *WallComponent) Extents() (halfWidth, halfHeight float64) {
	if w.Horizontal {
		return w.HalfLength, w.HalfThickness
	}
	return w.HalfThickness, w.HalfLength
}
