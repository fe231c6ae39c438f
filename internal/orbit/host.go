package orbit

// FrameID 宿主分配的帧回调标识，0 为无效值
type FrameID uint64

// Scheduler 宿主的逐帧调度原语（"在下一次重绘前运行此回调"）
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// PointerEvent 宿主坐标系中的指针事件
type PointerEvent struct {
	X, Y float64
}

// Handle 已注册的指针监听器句柄
type Handle interface {
	// Remove 注销监听器，重复调用无副作用
	Remove()
}

// Surface 宿主提供的可视区域
// 指针事件只在场的包围盒范围内派发
type Surface interface {
	Bounds() Rect
	OnPointerEnter(fn func(PointerEvent)) Handle
	OnPointerMove(fn func(PointerEvent)) Handle
	OnPointerLeave(fn func(PointerEvent)) Handle
}

// Sink 宿主绑定步骤：把每帧的投影结果应用到对应的可视元素上
// frame 在下一帧会被复用，宿主需要时应自行拷贝
type Sink func(frame []ProjectedLabel)

// ManualScheduler 手动驱动的调度器
// 用于离线渲染与测试：RunFrame 执行当前排队的所有回调
type ManualScheduler struct {
	nextID   FrameID
	queue    map[FrameID]func()
	order    []FrameID
	requests int
}

// NewManualScheduler 创建手动调度器
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{queue: make(map[FrameID]func())}
}

// RequestFrame 排队一个回调
func (m *ManualScheduler) RequestFrame(fn func()) FrameID {
	m.nextID++
	m.requests++
	m.queue[m.nextID] = fn
	m.order = append(m.order, m.nextID)
	return m.nextID
}

// CancelFrame 取消尚未执行的回调
func (m *ManualScheduler) CancelFrame(id FrameID) {
	delete(m.queue, id)
}

// RunFrame 执行一帧：运行此刻已排队的回调，期间新请求的回调留到下一帧
// 返回实际执行的回调数量
func (m *ManualScheduler) RunFrame() int {
	batch := m.order
	m.order = nil
	ran := 0
	for _, id := range batch {
		fn, ok := m.queue[id]
		if !ok {
			continue
		}
		delete(m.queue, id)
		fn()
		ran++
	}
	return ran
}

// Pending 返回尚未执行的回调数量
func (m *ManualScheduler) Pending() int {
	return len(m.queue)
}

// Requests 返回累计的 RequestFrame 调用次数
func (m *ManualScheduler) Requests() int {
	return m.requests
}
