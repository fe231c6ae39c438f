package components

// ProjectionComponent 存储标签最近一帧的投影结果
// 由 OrbitBindingSystem 每帧写入，渲染与悬停系统只读
//
// 坐标相对场中心（像素），不做透视除法：
// 最终屏幕位置 = 场中心 + (X, Y)
type ProjectionComponent struct {
	X, Y float64
	// Z 旋转后的深度，值越大越靠前，用于绘制排序
	Z float64

	// Opacity 透明度（0.0 - 1.0），由前向因子推导
	Opacity float64
	// Scale 缩放因子（0.92 - 1.04）
	Scale float64
	// Blur 模糊半径（0 - 2 像素）
	Blur float64

	// Interactive 是否响应指针（Opacity > 0.6）
	Interactive bool
}
