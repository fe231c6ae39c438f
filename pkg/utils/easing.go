package utils

import (
	"math"
	"time"
)

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// 回弹缓动的默认过冲系数
const backOvershoot = 1.70158

// EaseOutBack 回弹缓出
// 特点：越过终点后回落，f(1) = 1，中途最大值约 1.1
// 公式：f(t) = 1 + (c+1)(t-1)³ + c(t-1)²，c = 1.70158
func EaseOutBack(t float64) float64 {
	c3 := backOvershoot + 1
	x := t - 1
	return 1 + c3*x*x*x + backOvershoot*x*x
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把值限制到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 || math.IsNaN(t) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ScrollTween 带过冲的滚动补间
//
// 位置 = Start + (End-Start)·ease(p) + Overshoot·(1-p)，p = 已用时间 / Duration。
// Overshoot 是额外的像素偏移，随进度线性衰减为 0；结束时位置恰好为 End。
type ScrollTween struct {
	Start     float64
	End       float64
	Overshoot float64
	Duration  time.Duration
	Ease      func(float64) float64 // nil 时使用 EaseOutBack

	elapsed time.Duration
}

// 补间时长的合法范围
const (
	MinTweenDuration     = 200 * time.Millisecond
	MaxTweenDuration     = 3000 * time.Millisecond
	DefaultTweenDuration = 900 * time.Millisecond
)

// NewScrollTween 创建补间，时长钳制到 [200ms, 3s]，非正值使用 900ms
func NewScrollTween(start, end, overshoot float64, d time.Duration) *ScrollTween {
	switch {
	case d <= 0:
		d = DefaultTweenDuration
	case d < MinTweenDuration:
		d = MinTweenDuration
	case d > MaxTweenDuration:
		d = MaxTweenDuration
	}
	return &ScrollTween{Start: start, End: end, Overshoot: overshoot, Duration: d}
}

// Update 推进补间并返回当前位置
func (s *ScrollTween) Update(dt time.Duration) float64 {
	if dt > 0 {
		s.elapsed += dt
	}
	return s.Value()
}

// Progress 返回当前进度 [0, 1]
func (s *ScrollTween) Progress() float64 {
	if s.Duration <= 0 {
		return 1
	}
	return Clamp01(float64(s.elapsed) / float64(s.Duration))
}

// Value 返回当前位置
func (s *ScrollTween) Value() float64 {
	p := s.Progress()
	ease := s.Ease
	if ease == nil {
		ease = EaseOutBack
	}
	return s.Start + (s.End-s.Start)*ease(p) + s.Overshoot*(1-p)
}

// Done 补间是否结束
func (s *ScrollTween) Done() bool {
	return s.Progress() >= 1
}
