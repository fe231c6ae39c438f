package main

import (
	"math"
	"sort"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// 终端单元格的近似像素尺寸，把场的像素坐标映射到行列
const (
	defaultCellWidth  = 8.0
	defaultCellHeight = 16.0
	// minVisibleOpacity 低于该透明度的标签不绘制
	minVisibleOpacity = 0.15
)

// termHost 终端宿主
//
// 帧回调由 tick 驱动的 ManualScheduler 执行，鼠标事件经 PointerTracker 合成为进入/移动/离开。
// 所有方法都在主循环 goroutine 上调用。
type termHost struct {
	screen  tcell.Screen
	sched   *orbit.ManualScheduler
	tracker *orbit.PointerTracker
	field   *orbit.Field

	cfg    *config.FieldConfig
	words  *config.WordList
	lang   string
	labels []orbit.Label
	frame  []orbit.ProjectedLabel
	styles map[orbit.Kind]tcell.Style

	cellW, cellH float64
	hint         string
}

// newTermHost 创建宿主并启动标签场
func newTermHost(screen tcell.Screen, cfg *config.FieldConfig, words *config.WordList, lang string) (*termHost, error) {
	h := &termHost{
		screen:  screen,
		sched:   orbit.NewManualScheduler(),
		tracker: orbit.NewPointerTracker(orbit.Rect{}),
		cfg:     cfg,
		words:   words,
		lang:    lang,
		styles:  make(map[orbit.Kind]tcell.Style),
		cellW:   defaultCellWidth,
		cellH:   defaultCellHeight,
		hint:    "hover: spin  l: language  q/esc: quit",
	}
	for _, k := range []orbit.Kind{orbit.KindHard, orbit.KindSoft, orbit.KindActivity, orbit.KindTrait} {
		c := cfg.Palette.ColorFor(k)
		h.styles[k] = tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	if err := h.startField(); err != nil {
		return nil, err
	}
	return h, nil
}

// viewport 返回以像素计的视口尺寸
func (h *termHost) viewport() (float64, float64) {
	cols, rows := h.screen.Size()
	return float64(cols) * h.cellW, float64(rows-1) * h.cellH
}

func (h *termHost) startField() error {
	w, vh := h.viewport()
	h.labels = h.words.Labels(h.lang)
	h.tracker.SetBounds(orbit.Rect{Width: w, Height: vh})

	opts := h.cfg.Options(w, vh)
	h.field = orbit.NewField(h.labels, opts)
	h.frame = h.field.Frame()
	return h.field.Start(h.sched, h.tracker, h.sink)
}

func (h *termHost) sink(frame []orbit.ProjectedLabel) {
	h.frame = frame
}

// stop 拆除标签场
func (h *termHost) stop() {
	h.field.Stop()
}

// switchLanguage 用下一个语言重建标签场
func (h *termHost) switchLanguage() error {
	h.field.Stop()
	h.lang = h.words.NextLanguage(h.lang)
	return h.startField()
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (h *termHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
		if ev.Rune() == 'l' {
			if err := h.switchLanguage(); err != nil {
				return false
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x := (float64(col) + 0.5) * h.cellW
		y := (float64(row) + 0.5) * h.cellH
		h.tracker.Update(x, y)

	case *tcell.EventFocus:
		if !ev.Focused {
			h.tracker.Gone()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		w, vh := h.viewport()
		h.tracker.SetBounds(orbit.Rect{Width: w, Height: vh})
		h.field.Resize(w, vh)
	}
	return true
}

// tick 执行一帧并重绘
func (h *termHost) tick() {
	h.sched.RunFrame()
	h.draw()
}

// draw 按深度从后往前绘制标签，最后一行为提示
func (h *termHost) draw() {
	h.screen.Clear()
	cols, rows := h.screen.Size()
	centerCol := float64(cols) / 2
	centerRow := float64(rows-1) / 2

	order := make([]orbit.ProjectedLabel, len(h.frame))
	copy(order, h.frame)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Z < order[j].Z })

	for _, p := range order {
		if p.Index < 0 || p.Index >= len(h.labels) || p.Opacity < minVisibleOpacity {
			continue
		}
		label := h.labels[p.Index]
		runes := []rune(label.Text)
		row := int(math.Round(centerRow + p.Y/h.cellH))
		col := int(math.Round(centerCol+p.X/h.cellW)) - len(runes)/2
		h.drawText(col, row, runes, h.styleFor(label.Kind, p))
	}

	h.drawText(0, rows-1, []rune(h.hint), tcell.StyleDefault.Dim(true))
	h.screen.Show()
}

// styleFor 可交互的标签正常显示，其余变暗
func (h *termHost) styleFor(kind orbit.Kind, p orbit.ProjectedLabel) tcell.Style {
	st, ok := h.styles[kind]
	if !ok {
		st = tcell.StyleDefault
	}
	if !p.Interactive {
		return st.Dim(true)
	}
	if p.Opacity > 0.9 {
		return st.Bold(true)
	}
	return st
}

func (h *termHost) drawText(col, row int, runes []rune, style tcell.Style) {
	cols, rows := h.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= cols {
			continue
		}
		h.screen.SetContent(x, row, r, nil, style)
	}
}
