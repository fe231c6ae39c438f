package orbit

import (
	"math"

	"github.com/decker502/skillsplanet/internal/mathutil"
)

// MinLayoutRadius 布局半径下限
// 非正数或 NaN 的半径会被钳制到该值，避免投影阶段除零
const MinLayoutRadius = 1.0

// GoldenAngle 黄金角 π(3−√5)，用于避免点的周期性聚集
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// FibonacciSphere 使用黄金角（斐波那契球）方法在半径为 radius 的球面上均匀放置 count 个点
//
// 参数：
//   - count: 点的数量，<= 0 时返回空切片
//   - radius: 球半径，<= 0 或 NaN 时钳制到 MinLayoutRadius
//
// 返回：
//   - []mathutil.Vec3: 与输入顺序一一对应的静态布局点，相同输入总是得到相同输出
//
// count == 1 时返回位于原点的单个点（退化情况，避免 count-1 为零的除法）。
func FibonacciSphere(count int, radius float64) []mathutil.Vec3 {
	if count <= 0 {
		return []mathutil.Vec3{}
	}
	if count == 1 {
		return []mathutil.Vec3{{0, 0, 0}}
	}
	if math.IsNaN(radius) || radius <= 0 {
		radius = MinLayoutRadius
	}

	points := make([]mathutil.Vec3, count)
	for i := 0; i < count; i++ {
		yNorm := 1 - (float64(i)/float64(count-1))*2 // +1 -> -1
		ring := math.Sqrt(math.Max(0, 1-yNorm*yNorm))
		theta := float64(i) * GoldenAngle
		points[i] = mathutil.Vec3{math.Cos(theta) * ring, yNorm, math.Sin(theta) * ring}.Scale(radius)
	}
	return points
}
