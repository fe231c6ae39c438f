package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/decker502/skillsplanet/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// hoverScaleBoost 完全高亮时的额外缩放
	hoverScaleBoost = 0.08
	// blurThreshold 模糊半径低于该值时只绘制一次
	blurThreshold   = 0.25
	starCount       = 48
)

// 球体外的两圈装饰环（相对半径）
var ringFactors = [...]float64{1.12, 0.78}

// LegendEntry 图例中的一项
type LegendEntry struct {
	Kind  orbit.Kind
	Label string
}

// LabelRenderSystem 标签渲染系统
//
// 职责：
//   - 绘制背景装饰（星点、装饰环）
//   - 按深度从后往前绘制标签，应用类别颜色、透明度、缩放与模糊近似
//   - 悬停标签向高亮色过渡并放大
//   - 绘制类别图例
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
	palette       config.PaletteConfig
	colors        map[orbit.Kind]color.RGBA
	highlight     color.RGBA
	ring          color.RGBA

	order []ecs.EntityID
	stars [][2]float64
}

// NewLabelRenderSystem 创建标签渲染系统
func NewLabelRenderSystem(em *ecs.EntityManager, face text.Face, palette config.PaletteConfig) *LabelRenderSystem {
	s := &LabelRenderSystem{
		entityManager: em,
		face:          face,
		palette:       palette,
		colors:        make(map[orbit.Kind]color.RGBA),
		highlight:     config.MustHexColor(palette.Highlight),
		ring:          config.MustHexColor(palette.Ring),
		stars:         starField(starCount),
	}
	for _, k := range []orbit.Kind{orbit.KindHard, orbit.KindSoft, orbit.KindActivity, orbit.KindTrait} {
		s.colors[k] = palette.ColorFor(k)
	}
	return s
}

// SetFace 替换字体（语言切换或字号变化时）
func (s *LabelRenderSystem) SetFace(face text.Face) {
	s.face = face
}

// DrawOrder 返回按深度从后往前排列的标签实体
// 深度相同的标签保持创建顺序
func (s *LabelRenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.LabelComponent, *components.ProjectionComponent](s.entityManager)
	s.order = append(s.order[:0], ids...)
	z := make(map[ecs.EntityID]float64, len(ids))
	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectionComponent](s.entityManager, id)
		z[id] = proj.Z
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return z[s.order[i]] < z[s.order[j]]
	})
	return s.order
}

// DrawBackdrop 绘制星点与装饰环
func (s *LabelRenderSystem) DrawBackdrop(screen *ebiten.Image, cx, cy, radius float64) {
	size := radius * 2.6
	for i, st := range s.stars {
		x := cx + (st[0]-0.5)*size
		y := cy + (st[1]-0.5)*size
		r := 0.6 + float64(i%3)*0.4
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), premultiply(s.ring), true)
	}
	for _, f := range ringFactors {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius*f), 1, premultiply(s.ring), true)
	}
}

// Draw 绘制所有标签
// cx, cy 为场中心的屏幕坐标
func (s *LabelRenderSystem) Draw(screen *ebiten.Image, cx, cy float64) {
	if s.face == nil {
		return
	}
	for _, id := range s.DrawOrder() {
		s.drawLabel(screen, id, cx, cy)
	}
}

func (s *LabelRenderSystem) drawLabel(screen *ebiten.Image, id ecs.EntityID, cx, cy float64) {
	label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
	proj, _ := ecs.GetComponent[*components.ProjectionComponent](s.entityManager, id)
	if proj.Opacity <= 0 {
		return
	}

	intensity := 0.0
	if hl, ok := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id); ok && hl.IsActive {
		intensity = hl.Intensity
	}

	base, ok := s.colors[label.Kind]
	if !ok {
		base = config.MustHexColor(s.palette.Caption)
	}
	clr := BlendColor(base, s.highlight, intensity)
	scale := proj.Scale * (1 + hoverScaleBoost*intensity)
	x, y := cx+proj.X, cy+proj.Y

	if proj.Blur > blurThreshold && intensity == 0 {
		// 模糊近似：四个方向偏移的淡副本
		d := proj.Blur / 2
		for _, off := range [4][2]float64{{-d, 0}, {d, 0}, {0, -d}, {0, d}} {
			s.drawText(screen, label.Text, x+off[0], y+off[1], scale, clr, proj.Opacity*0.3)
		}
		s.drawText(screen, label.Text, x, y, scale, clr, proj.Opacity*(1-proj.Blur/4))
		return
	}
	s.drawText(screen, label.Text, x, y, scale, clr, proj.Opacity)
}

func (s *LabelRenderSystem) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.RGBA, alpha float64) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, s.face, op)
}

// DrawLegend 在 (x, y) 处绘制类别图例（每项一行）
func (s *LabelRenderSystem) DrawLegend(screen *ebiten.Image, x, y float64, entries []LegendEntry) {
	if s.face == nil {
		return
	}
	_, lineH := text.Measure("Mg", s.face, 0)
	for i, e := range entries {
		ly := y + float64(i)*(lineH+4)
		clr := s.colors[e.Kind]
		vector.DrawFilledCircle(screen, float32(x+5), float32(ly+lineH/2), 5, clr, true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+16, ly)
		op.ColorScale.ScaleWithColor(config.MustHexColor(s.palette.Caption))
		text.Draw(screen, e.Label, s.face, op)
	}
}

// BlendColor 在两种颜色之间线性插值，t 被限制到 [0, 1]
func BlendColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// starField 生成确定性的星点位置（单位正方形内的低差异序列）
func starField(n int) [][2]float64 {
	const g1, g2 = 0.7548776662466927, 0.5698402909980532 // R2 序列系数
	pts := make([][2]float64, n)
	for i := range pts {
		fi := float64(i + 1)
		pts[i] = [2]float64{
			math.Mod(0.5+g1*fi, 1),
			math.Mod(0.5+g2*fi, 1),
		}
	}
	return pts
}
