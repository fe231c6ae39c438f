package orbit

import (
	"errors"
	"log"

	"github.com/decker502/skillsplanet/internal/mathutil"
)

var (
	// ErrNoSurface 启动时缺少调度器或可视区域，循环不会启动
	ErrNoSurface = errors.New("orbit: host surface not available")
	// ErrAlreadyRunning 重复启动
	ErrAlreadyRunning = errors.New("orbit: field already running")
)

// Options 场的构造参数
type Options struct {
	Tuning          Tuning
	InitialPitchDeg float64
	InitialYawDeg   float64
	Radius          RadiusBounds

	// ViewportWidth/ViewportHeight 初始视口尺寸，用于选择半径与灵敏度
	ViewportWidth  float64
	ViewportHeight float64
}

// DefaultOptions 返回默认构造参数（俯仰 -8°，偏航 16°）
func DefaultOptions() Options {
	return Options{
		Tuning:          DefaultTuning(),
		InitialPitchDeg: -8,
		InitialYawDeg:   16,
		Radius:          DefaultRadiusBounds(),
	}
}

// Field 轨道标签场
//
// 所有方法都必须在宿主的帧线程上调用：指针回调只修改目标速度，
// 累计角度只由帧回调 Tick 写入。
type Field struct {
	labels []Label
	opts   Options

	radius      float64
	sensitivity float64
	layout      []mathutil.Vec3
	state       OrientationState
	frame       []ProjectedLabel

	sched   Scheduler
	surface Surface
	sink    Sink
	handles []Handle
	frameID FrameID
	running bool
}

// NewField 创建场并生成初始布局
// labels 在场的整个生命周期内不可变（内部保存副本）
func NewField(labels []Label, opts Options) *Field {
	f := &Field{
		labels: append([]Label(nil), labels...),
		opts:   opts,
		state:  NewOrientation(opts.InitialPitchDeg, opts.InitialYawDeg, opts.Tuning),
	}
	f.applyViewport(opts.ViewportWidth, opts.ViewportHeight)
	f.frame = ProjectAll(f.layout, f.state, f.radius, make([]ProjectedLabel, 0, len(f.layout)))
	return f
}

// Start 注册指针监听并开始逐帧循环
//
// sched 或 surface 为 nil 时返回 ErrNoSurface，不启动循环也不 panic。
func (f *Field) Start(sched Scheduler, surface Surface, sink Sink) error {
	if f.running {
		return ErrAlreadyRunning
	}
	if sched == nil || surface == nil {
		log.Printf("[Field] Warning: host surface missing, field not rendered")
		return ErrNoSurface
	}

	f.sched = sched
	f.surface = surface
	f.sink = sink
	f.handles = append(f.handles[:0],
		surface.OnPointerEnter(f.onPointerEnter),
		surface.OnPointerMove(f.onPointerMove),
		surface.OnPointerLeave(f.onPointerLeave),
	)
	f.running = true
	f.schedule()

	log.Printf("[Field] Started: %d labels, radius %.1f", len(f.labels), f.radius)
	return nil
}

// Stop 拆除场：取消待执行的帧回调并注销所有指针监听器
// 可重复调用；之后即使有已出队的回调执行，也不会再调度新的帧
func (f *Field) Stop() {
	if !f.running {
		return
	}
	f.running = false
	if f.frameID != 0 && f.sched != nil {
		f.sched.CancelFrame(f.frameID)
	}
	f.frameID = 0
	for _, h := range f.handles {
		if h != nil {
			h.Remove()
		}
	}
	f.handles = f.handles[:0]
	f.sched = nil
	f.surface = nil
	f.sink = nil
	log.Printf("[Field] Stopped")
}

// Tick 执行一帧：平滑速度、积分角度、投影、交给宿主，然后调度下一帧
func (f *Field) Tick() {
	f.frameID = 0
	if !f.running {
		return
	}

	f.state = f.state.Step(f.opts.Tuning.Smoothing)
	f.frame = ProjectAll(f.layout, f.state, f.radius, f.frame)

	if f.sink != nil {
		f.sink(f.frame)
	}
	// sink 可能在回调中调用了 Stop
	if f.running {
		f.schedule()
	}
}

func (f *Field) schedule() {
	f.frameID = f.sched.RequestFrame(f.Tick)
}

// Resize 视口尺寸变化：重新选择半径并整体重新生成布局
func (f *Field) Resize(width, height float64) {
	before := f.radius
	f.applyViewport(width, height)
	if f.radius != before {
		log.Printf("[Field] Resized to %.0fx%.0f, radius %.1f -> %.1f", width, height, before, f.radius)
	}
	f.frame = ProjectAll(f.layout, f.state, f.radius, f.frame)
}

func (f *Field) applyViewport(width, height float64) {
	radius := RadiusForViewport(width, height, f.opts.Radius)
	if radius != f.radius || len(f.layout) != len(f.labels) {
		f.radius = radius
		f.layout = FibonacciSphere(len(f.labels), radius)
	}
	f.sensitivity = f.opts.Tuning.SensitivityFor(width)
}

func (f *Field) onPointerEnter(PointerEvent) {
	f.state = f.state.Enter()
}

func (f *Field) onPointerMove(ev PointerEvent) {
	if f.surface == nil {
		return
	}
	dx, dy, _ := NormalizePointer(ev.X, ev.Y, f.surface.Bounds())
	f.state = f.state.Move(dx, dy, f.sensitivity)
}

func (f *Field) onPointerLeave(PointerEvent) {
	f.state = f.state.Leave(f.opts.Tuning)
}

// Labels 返回标签列表（只读）
func (f *Field) Labels() []Label { return f.labels }

// Layout 返回当前静态布局（只读）
func (f *Field) Layout() []mathutil.Vec3 { return f.layout }

// Frame 返回最近一帧的投影结果（只读，下一帧会被覆盖）
func (f *Field) Frame() []ProjectedLabel { return f.frame }

// State 返回当前朝向状态
func (f *Field) State() OrientationState { return f.state }

// Radius 返回当前球半径
func (f *Field) Radius() float64 { return f.radius }

// Sensitivity 返回当前指针灵敏度
func (f *Field) Sensitivity() float64 { return f.sensitivity }

// Running 场是否处于逐帧循环中
func (f *Field) Running() bool { return f.running }
