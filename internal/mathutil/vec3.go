// Package mathutil 提供球面布局与投影所需的小型向量/矩阵工具
//
// 所有类型都是值类型（栈上分配），每帧计算不产生堆分配。
package mathutil

import "math"

// Vec3 三维向量 (x, y, z)
type Vec3 [3]float64

// X 返回 x 分量
func (v Vec3) X() float64 { return v[0] }

// Y 返回 y 分量
func (v Vec3) Y() float64 { return v[1] }

// Z 返回 z 分量
func (v Vec3) Z() float64 { return v[2] }

// Scale 返回按 s 缩放后的向量
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// LenSq 返回长度的平方（球面不变量检查用，避免开方）
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}
