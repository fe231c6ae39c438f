package orbit

// pointerHandler 带 ID 的监听器，便于按句柄移除
type pointerHandler struct {
	id uint32
	fn func(PointerEvent)
}

type pointerEvent int

const (
	pointerEnter pointerEvent = iota
	pointerMove
	pointerLeave
)

// PointerTracker 通用的 Surface 实现
//
// 宿主每帧（或每个输入事件）用 Update 报告指针位置，
// PointerTracker 与上一次位置比较，合成 enter / move / leave 事件并派发给已注册的监听器。
// 桌面窗口与终端宿主都基于它实现自己的 Surface。
type PointerTracker struct {
	bounds Rect

	enter  []pointerHandler
	move   []pointerHandler
	leave  []pointerHandler
	nextID uint32

	inside       bool
	lastX, lastY float64
}

// NewPointerTracker 创建指针追踪器
func NewPointerTracker(bounds Rect) *PointerTracker {
	return &PointerTracker{bounds: bounds}
}

// Bounds 返回场的包围盒
func (p *PointerTracker) Bounds() Rect { return p.bounds }

// SetBounds 更新包围盒（视口变化时调用）
// 不立即派发事件，下一次 Update 按新包围盒判断
func (p *PointerTracker) SetBounds(r Rect) { p.bounds = r }

// OnPointerEnter 注册指针进入监听器
func (p *PointerTracker) OnPointerEnter(fn func(PointerEvent)) Handle {
	return p.register(pointerEnter, fn)
}

// OnPointerMove 注册指针移动监听器
func (p *PointerTracker) OnPointerMove(fn func(PointerEvent)) Handle {
	return p.register(pointerMove, fn)
}

// OnPointerLeave 注册指针离开监听器
func (p *PointerTracker) OnPointerLeave(fn func(PointerEvent)) Handle {
	return p.register(pointerLeave, fn)
}

func (p *PointerTracker) register(ev pointerEvent, fn func(PointerEvent)) Handle {
	p.nextID++
	h := pointerHandler{id: p.nextID, fn: fn}
	switch ev {
	case pointerEnter:
		p.enter = append(p.enter, h)
	case pointerMove:
		p.move = append(p.move, h)
	case pointerLeave:
		p.leave = append(p.leave, h)
	}
	return trackerHandle{id: h.id, tracker: p, event: ev}
}

// HandlerCount 返回当前注册的监听器总数
func (p *PointerTracker) HandlerCount() int {
	return len(p.enter) + len(p.move) + len(p.leave)
}

// Inside 指针当前是否在包围盒内
func (p *PointerTracker) Inside() bool { return p.inside }

// Update 报告指针的最新位置
//
// 从外到内派发 enter 后紧接一次 move；在内部且位置变化时派发 move；
// 从内到外派发 leave。位置不变时不派发任何事件。
func (p *PointerTracker) Update(x, y float64) {
	ev := PointerEvent{X: x, Y: y}
	in := p.bounds.Width > 0 && p.bounds.Height > 0 && p.bounds.Contains(x, y)

	switch {
	case in && !p.inside:
		p.inside = true
		p.dispatch(p.enter, ev)
		p.dispatch(p.move, ev)
	case in && (x != p.lastX || y != p.lastY):
		p.dispatch(p.move, ev)
	case !in && p.inside:
		p.inside = false
		p.dispatch(p.leave, ev)
	}
	p.lastX, p.lastY = x, y
}

// Gone 指针离开宿主（窗口失焦、鼠标移出终端等）
// 指针在场内时派发 leave
func (p *PointerTracker) Gone() {
	if !p.inside {
		return
	}
	p.inside = false
	p.dispatch(p.leave, PointerEvent{X: p.lastX, Y: p.lastY})
}

func (p *PointerTracker) dispatch(hs []pointerHandler, ev PointerEvent) {
	// 回调中可能移除监听器，遍历快照
	for _, h := range append([]pointerHandler(nil), hs...) {
		h.fn(ev)
	}
}

func (p *PointerTracker) remove(ev pointerEvent, id uint32) {
	switch ev {
	case pointerEnter:
		p.enter = removePointerHandler(p.enter, id)
	case pointerMove:
		p.move = removePointerHandler(p.move, id)
	case pointerLeave:
		p.leave = removePointerHandler(p.leave, id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// trackerHandle PointerTracker 返回的句柄
type trackerHandle struct {
	id      uint32
	tracker *PointerTracker
	event   pointerEvent
}

// Remove 注销监听器，重复调用无副作用
func (h trackerHandle) Remove() {
	if h.tracker == nil {
		return
	}
	h.tracker.remove(h.event, h.id)
}
