package systems

import (
	"github.com/decker502/skillsplanet/internal/orbit"
)

// FrameHost 桌面宿主的逐帧调度器（实现 orbit.Scheduler）
//
// 等价于浏览器的 requestAnimationFrame：RequestFrame 排队的回调在下一次
// ebiten Update 时执行一次；在执行过程中再次请求的回调留到下一个 tick。
type FrameHost struct {
	queue  *orbit.ManualScheduler
	frames uint64
}

// NewFrameHost 创建逐帧调度器
func NewFrameHost() *FrameHost {
	return &FrameHost{queue: orbit.NewManualScheduler()}
}

// RequestFrame 请求在下一个 tick 运行回调
func (h *FrameHost) RequestFrame(fn func()) orbit.FrameID {
	return h.queue.RequestFrame(fn)
}

// CancelFrame 取消尚未执行的回调
func (h *FrameHost) CancelFrame(id orbit.FrameID) {
	h.queue.CancelFrame(id)
}

// Update 刷新一次回调队列（每个 ebiten tick 调用一次）
func (h *FrameHost) Update(deltaTime float64) {
	if h.queue.RunFrame() > 0 {
		h.frames++
	}
}

// Pending 返回等待执行的回调数量
func (h *FrameHost) Pending() int {
	return h.queue.Pending()
}

// Frames 返回执行过回调的 tick 数
func (h *FrameHost) Frames() uint64 {
	return h.frames
}
