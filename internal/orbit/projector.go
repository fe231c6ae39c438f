package orbit

import (
	"math"

	"github.com/decker502/skillsplanet/internal/mathutil"
)

// 深度推导的视觉参数
const (
	OpacityGamma       = 1.2  // 透明度伽马，轮廓附近的标签比线性更快淡出
	BaseScale          = 0.92 // 完全不可见时的缩放
	ScaleRange         = 0.12 // 完全可见时额外增加的缩放
	MaxBlur            = 2.0  // 最大模糊半径（像素）
	InteractiveOpacity = 0.6  // 透明度高于该值的标签接受指针交互
)

// ProjectedLabel 单个标签在某一帧的渲染输出（派生、临时，不持久化）
type ProjectedLabel struct {
	Index int // 对应 Label 的下标

	X, Y float64 // 相对场中心的二维偏移
	Z    float64 // 旋转后的深度，正值朝向观察者

	Opacity     float64 // [0, 1]
	Scale       float64 // [0.92, 1.04]
	Blur        float64 // [0, 2]
	Interactive bool    // 是否接受指针事件
}

// Rotate 先绕 X 轴旋转 pitch，再绕 Y 轴旋转 yaw
// 总是作用于静态基础布局点，不累积已旋转的状态，避免漂移
func Rotate(p mathutil.Vec3, pitch, yaw float64) mathutil.Vec3 {
	return mathutil.RotY(yaw).MulVec3(mathutil.RotX(pitch).MulVec3(p))
}

// FrontFactor 归一化的"朝前"系数
// z 超过半径 1/3（朝观察者方向）的点完全可见，背面远处的点为 0
func FrontFactor(z, radius float64) float64 {
	third := radius / 3
	if third <= 0 || math.IsNaN(third) {
		return 0
	}
	return mathutil.Clamp((z+third)/third, 0, 1)
}

// Project 计算单个布局点在当前朝向下的投影结果
func Project(index int, p mathutil.Vec3, st OrientationState, radius float64) ProjectedLabel {
	r := Rotate(p, st.Pitch, st.Yaw)
	return styleFor(index, r, radius)
}

// ProjectAll 投影全部布局点，输出与输入一一对应、顺序相同
// dst 的容量会被复用，每帧不重新分配
func ProjectAll(points []mathutil.Vec3, st OrientationState, radius float64, dst []ProjectedLabel) []ProjectedLabel {
	dst = dst[:0]
	rx := mathutil.RotX(st.Pitch)
	ry := mathutil.RotY(st.Yaw)
	for i, p := range points {
		r := ry.MulVec3(rx.MulVec3(p))
		dst = append(dst, styleFor(i, r, radius))
	}
	return dst
}

func styleFor(index int, r mathutil.Vec3, radius float64) ProjectedLabel {
	front := FrontFactor(r.Z(), radius)
	opacity := math.Pow(front, OpacityGamma)
	return ProjectedLabel{
		Index:       index,
		X:           r.X(),
		Y:           r.Y(),
		Z:           r.Z(),
		Opacity:     opacity,
		Scale:       BaseScale + ScaleRange*opacity,
		Blur:        MaxBlur * (1 - opacity),
		Interactive: opacity > InteractiveOpacity,
	}
}
