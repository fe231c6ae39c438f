// Package orbit 实现"技能星球"的核心：球面文字标签场 (Orbit Label Field)
//
// 由三个协作部分组成：
//   - 球面布局生成器：FibonacciSphere，按数量与半径把 N 个标签均匀分布到球面上
//   - 旋转/输入控制器：OrientationState，把指针位置转换为平滑的两轴角速度
//   - 投影器：Project/ProjectAll，每帧旋转静态布局并由深度推导透明度、缩放、模糊与可交互性
//
// Field 把三者组合起来，并通过 Scheduler / Surface 接口与宿主（ebiten 窗口、终端、离线渲染器）对接。
package orbit

import "fmt"

// Kind 标签类别，仅用于宿主的视觉样式，对核心不透明
type Kind string

const (
	KindHard     Kind = "hard"
	KindSoft     Kind = "soft"
	KindActivity Kind = "activity"
	KindTrait    Kind = "trait"
)

// ParseKind 解析类别字符串
// 兼容旧配置中的 "sport"（等同于 activity）
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hard":
		return KindHard, nil
	case "soft":
		return KindSoft, nil
	case "activity", "sport":
		return KindActivity, nil
	case "trait":
		return KindTrait, nil
	}
	return "", fmt.Errorf("unknown label kind %q", s)
}

// Label 一个要显示的词/标签
// 创建后不可变；调整大小时整体重新生成布局，而不是增删单个标签
type Label struct {
	Text string
	Kind Kind
}
