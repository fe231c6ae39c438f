package systems

import (
	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/utils"
)

// PointerHost 桌面宿主的指针区域（实现 orbit.Surface）
//
// ebiten 只提供轮询式的指针位置，PointerHost 每个 tick 采样一次，
// 由内嵌的 orbit.PointerTracker 合成 enter / move / leave 事件。
type PointerHost struct {
	*orbit.PointerTracker
}

// NewPointerHost 创建指针区域
func NewPointerHost(bounds orbit.Rect) *PointerHost {
	return &PointerHost{PointerTracker: orbit.NewPointerTracker(bounds)}
}

// Update 处理一帧的指针采样
// 指针不可用（鼠标移出窗口、触摸结束）时视为离开
func (h *PointerHost) Update(sample utils.PointerSample) {
	if !sample.Present {
		h.Gone()
		return
	}
	h.PointerTracker.Update(float64(sample.X), float64(sample.Y))
}
