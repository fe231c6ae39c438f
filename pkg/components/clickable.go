package components

// ClickableComponent 标记实体可以被指针命中
// 定义了命中区域的尺寸和是否启用
//
// 标签的命中区域随文字尺寸与投影缩放变化，IsEnabled 跟随投影的可交互性
type ClickableComponent struct {
	Width     float64 // 命中区域的宽度(像素，未缩放)
	Height    float64 // 命中区域的高度(像素，未缩放)
	IsEnabled bool    // 是否可以被命中(背面的标签被禁用)
}
