package components

// CursorGlowComponent 跟随指针的柔光
// 每帧以 Follow 系数向指针位置插值，而不是直接跳到指针处；初始位于窗口中心
type CursorGlowComponent struct {
	X, Y    float64 // 当前光斑中心（屏幕坐标）
	TargetX float64
	TargetY float64
	Follow  float64 // 每帧插值系数（0.15）
	Radius  float64 // 光斑半径（像素）
	Alpha   float64 // 最大不透明度
	Visible bool    // 指针是否在窗口内
}
