package mathutil

import "math"

// Mat3 3×3 行主序矩阵: [r0c0, r0c1, r0c2, r1c0, ...]
type Mat3 [9]float64

// MulVec3 返回 M × v
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// RotX 返回绕 X 轴（俯仰）的旋转矩阵，角度为弧度
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY 返回绕 Y 轴（偏航）的旋转矩阵
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Deg2Rad 角度转弧度
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Clamp 将 v 限制在 [lo, hi] 区间内
// NaN 输入返回 lo，保证下游计算不被 NaN 污染
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
