package orbit

import (
	"math"

	"github.com/decker502/skillsplanet/internal/mathutil"
)

// RadiusBounds 由视口推导半径的参数
type RadiusBounds struct {
	Factor float64 // 半径 = Factor * min(宽, 高)
	Min    float64 // 下限，零尺寸视口时使用
	Max    float64 // 上限
}

// DefaultRadiusBounds 返回默认半径参数 clamp(0.42*min(w,h), 90, 260)
func DefaultRadiusBounds() RadiusBounds {
	return RadiusBounds{Factor: 0.42, Min: 90, Max: 260}
}

// RadiusForViewport 根据视口尺寸选择球半径
//
// 零尺寸、负尺寸或 NaN 视口（例如窗口最小化时的瞬时尺寸）返回下限，
// 无限大的视口返回上限，保证投影计算永远拿到正的有限半径。
func RadiusForViewport(width, height float64, b RadiusBounds) float64 {
	floor := b.Min
	if floor <= 0 || math.IsNaN(floor) {
		floor = MinLayoutRadius
	}
	ceil := b.Max
	if ceil < floor || math.IsNaN(ceil) || math.IsInf(ceil, 1) {
		ceil = floor
	}
	short := math.Min(width, height)
	if math.IsNaN(short) || short <= 0 {
		return floor
	}
	if math.IsInf(short, 1) {
		return ceil
	}
	return mathutil.Clamp(b.Factor*short, floor, ceil)
}

// Rect 场在宿主坐标系中的包围盒
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// NormalizePointer 把宿主坐标转换为相对场中心的归一化偏移
// 返回的 dx/dy 在指针位于矩形内时落在 [-0.5, 0.5]
func NormalizePointer(px, py float64, r Rect) (dx, dy float64, inside bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, 0, false
	}
	cx, cy := r.Center()
	dx = (px - cx) / r.Width
	dy = (py - cy) / r.Height
	return dx, dy, r.Contains(px, py)
}
