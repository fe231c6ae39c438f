package components

// HoverHighlightComponent 悬停高亮组件
// 用于标签被指针悬停时的持续高亮效果（不闪烁）
//
// 只有可交互的标签（位于球的前半部分）才会被激活
type HoverHighlightComponent struct {
	// Intensity 高亮强度（0.0 - 1.0）
	// 1.0 = 最亮，0.0 = 无效果
	Intensity float64

	// IsActive 是否激活
	IsActive bool
}
