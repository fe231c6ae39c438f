package orbit

import "github.com/decker502/skillsplanet/internal/mathutil"

// Mode 旋转控制器的两种模式
type Mode int

const (
	// ModeIdle 指针不在场内：目标速度为空闲自转默认值
	ModeIdle Mode = iota
	// ModeHovering 指针在场内移动：目标速度由指针相对中心的偏移决定
	ModeHovering
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeHovering:
		return "hovering"
	}
	return "unknown"
}

// Tuning 旋转控制器参数（角速度单位：弧度/帧）
type Tuning struct {
	IdleYaw           float64 // 空闲时的偏航目标速度 v0
	Smoothing         float64 // 指数平滑系数 α
	Sensitivity       float64 // 指针灵敏度 k
	NarrowSensitivity float64 // 窄屏（移动端）灵敏度
	NarrowWidth       float64 // 视口宽度小于该值视为窄屏（像素）
}

// DefaultTuning 返回默认参数
func DefaultTuning() Tuning {
	return Tuning{
		IdleYaw:           0.004,
		Smoothing:         0.05,
		Sensitivity:       0.06,
		NarrowSensitivity: 0.03,
		NarrowWidth:       768,
	}
}

// SensitivityFor 根据视口宽度选择灵敏度
func (t Tuning) SensitivityFor(width float64) float64 {
	if width > 0 && width < t.NarrowWidth {
		return t.NarrowSensitivity
	}
	return t.Sensitivity
}

// OrientationState 场的朝向状态
//
// 角度无界（周期函数可安全消费），速度总是向目标做阻尼逼近，从不瞬间跳变。
// 每个更新方法都接收值并返回新值，便于在没有动画循环的情况下单元测试。
type OrientationState struct {
	Pitch    float64 // 绕 X 轴累计角（弧度）
	Yaw      float64 // 绕 Y 轴累计角（弧度）
	VelPitch float64 // 当前俯仰角速度
	VelYaw   float64 // 当前偏航角速度

	TargetPitch float64
	TargetYaw   float64

	Mode Mode
}

// NewOrientation 创建初始朝向：空闲模式，慢速偏航自转，无俯仰速度
func NewOrientation(pitchDeg, yawDeg float64, t Tuning) OrientationState {
	return OrientationState{
		Pitch:     mathutil.Deg2Rad(pitchDeg),
		Yaw:       mathutil.Deg2Rad(yawDeg),
		VelYaw:    t.IdleYaw,
		TargetYaw: t.IdleYaw,
		Mode:      ModeIdle,
	}
}

// Enter 指针进入场区域
func (s OrientationState) Enter() OrientationState {
	s.Mode = ModeHovering
	return s
}

// Move 指针在场内移动
//
// dxNorm/dyNorm 是指针相对场中心的归一化偏移，范围 [-0.5, 0.5]（超出部分被钳制）。
// 空闲模式下收到 Move 视为隐式进入（宿主可能丢失 enter 事件）。
func (s OrientationState) Move(dxNorm, dyNorm, k float64) OrientationState {
	dx := mathutil.Clamp(dxNorm, -0.5, 0.5)
	dy := mathutil.Clamp(dyNorm, -0.5, 0.5)
	s.Mode = ModeHovering
	s.TargetYaw = dx * k
	s.TargetPitch = -dy * k
	return s
}

// Leave 指针离开场区域：目标速度精确恢复为空闲默认值
func (s OrientationState) Leave(t Tuning) OrientationState {
	s.Mode = ModeIdle
	s.TargetPitch = 0
	s.TargetYaw = t.IdleYaw
	return s
}

// Step 推进一帧
//
//	v     <- v + (target - v) * alpha
//	angle <- angle + v
//
// 按帧计数积分而非按墙钟时间，感知速度与宿主刷新率相关。
func (s OrientationState) Step(alpha float64) OrientationState {
	s.VelPitch += (s.TargetPitch - s.VelPitch) * alpha
	s.VelYaw += (s.TargetYaw - s.VelYaw) * alpha
	s.Pitch += s.VelPitch
	s.Yaw += s.VelYaw
	return s
}
