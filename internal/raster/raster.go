// Package raster 把一帧投影结果离线渲染为图片
//
// 以 Supersample 倍分辨率绘制（Go Regular 字体，无 hinting），
// 再用 CatmullRom 缩小到目标尺寸，得到平滑的文字边缘。
// 不依赖 ebiten，可在无显示环境中运行。
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/decker502/skillsplanet/internal/orbit"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// MaxSupersample 超采样倍数上限
const MaxSupersample = 4

// 模糊近似：四个方向的偏移副本
var blurOffsets = [...][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ErrEmptyCanvas 目标尺寸非正
var ErrEmptyCanvas = errors.New("raster: canvas size must be positive")

// Options 渲染参数
type Options struct {
	Width, Height int
	Supersample   int     // 1..4，越界时钳制
	FontSize      float64 // 缩放为 1 时的字号（像素）

	Background      color.RGBA
	BackgroundImage image.Image // 可选，等比缩放覆盖画布
	Ring            color.RGBA  // 装饰环颜色，A 为 0 时不绘制
	Colors          map[orbit.Kind]color.RGBA
}

// Renderer 离线渲染器
// 按字号缓存字体，不是并发安全的
type Renderer struct {
	opts  Options
	font  *opentype.Font
	faces map[int]font.Face
}

// NewRenderer 创建渲染器
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrEmptyCanvas
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.Supersample > MaxSupersample {
		opts.Supersample = MaxSupersample
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 18
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	return &Renderer{opts: opts, font: fnt, faces: make(map[int]font.Face)}, nil
}

// Options 返回钳制后的渲染参数
func (r *Renderer) Options() Options {
	return r.opts
}

// face 返回指定字号的字体，字号按 0.5 像素量化以复用缓存
func (r *Renderer) face(size float64) (font.Face, error) {
	key := int(math.Round(size * 2))
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(key) / 2,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face at %.1fpx: %w", size, err)
	}
	r.faces[key] = f
	return f, nil
}

// Render 渲染一帧
// labels 与 frame 的 Index 对应；越界的下标被忽略。radius 用于装饰环。
func (r *Renderer) Render(labels []orbit.Label, frame []orbit.ProjectedLabel, radius float64) (*image.RGBA, error) {
	s := r.opts.Supersample
	w, h := r.opts.Width*s, r.opts.Height*s
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)
	if r.opts.BackgroundImage != nil {
		drawCover(canvas, r.opts.BackgroundImage)
	}

	cx, cy := float64(w)/2, float64(h)/2
	if r.opts.Ring.A > 0 {
		for _, f := range []float64{1.12, 0.78} {
			drawRing(canvas, cx, cy, radius*f*float64(s), float64(s), r.opts.Ring)
		}
	}

	order := make([]orbit.ProjectedLabel, len(frame))
	copy(order, frame)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Z < order[j].Z })

	for _, p := range order {
		if p.Index < 0 || p.Index >= len(labels) || p.Opacity <= 0 {
			continue
		}
		face, err := r.face(r.opts.FontSize * p.Scale * float64(s))
		if err != nil {
			return nil, err
		}
		clr := r.opts.Colors[labels[p.Index].Kind]
		if clr.A == 0 {
			clr = color.RGBA{255, 255, 255, 255}
		}
		x, y := cx+p.X*float64(s), cy+p.Y*float64(s)
		text := labels[p.Index].Text

		if p.Blur > 0.25 {
			d := p.Blur * float64(s)
			for _, off := range blurOffsets {
				drawCentered(canvas, face, text, x+off[0]*d, y+off[1]*d, clr, p.Opacity*0.3)
			}
			drawCentered(canvas, face, text, x, y, clr, p.Opacity*(1-p.Blur/4))
			continue
		}
		drawCentered(canvas, face, text, x, y, clr, p.Opacity)
	}

	return Downsample(canvas, r.opts.Width, r.opts.Height), nil
}

// drawCentered 以 (x, y) 为中心绘制文字
func drawCentered(dst *image.RGBA, face font.Face, s string, x, y float64, clr color.RGBA, alpha float64) {
	a := math.Max(0, math.Min(1, alpha))
	src := image.NewUniform(color.NRGBA{clr.R, clr.G, clr.B, uint8(float64(clr.A)*a + 0.5)})

	width := font.MeasureString(face, s)
	m := face.Metrics()
	// 基线 = 中心 + (上升 - 下降) / 2
	baseline := fixed.Int26_6(math.Round(y*64)) + (m.Ascent-m.Descent)/2
	dot := fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x*64)) - width/2,
		Y: baseline,
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// drawRing 绘制抗锯齿圆环
func drawRing(dst *image.RGBA, cx, cy, radius, width float64, clr color.RGBA) {
	if radius <= 0 || width <= 0 {
		return
	}
	b := dst.Bounds()
	x0 := max(b.Min.X, int(cx-radius-width-1))
	x1 := min(b.Max.X, int(cx+radius+width+2))
	y0 := max(b.Min.Y, int(cy-radius-width-1))
	y1 := min(b.Max.Y, int(cy+radius+width+2))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dist := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			cover := 1 - math.Abs(dist-radius)/width
			if cover <= 0 {
				continue
			}
			blend(dst, px, py, clr, math.Min(1, cover))
		}
	}
}

// blend 把非预乘颜色按 alpha 混合到目标像素
func blend(dst *image.RGBA, x, y int, clr color.RGBA, alpha float64) {
	i := dst.PixOffset(x, y)
	a := float64(clr.A) / 255 * alpha
	for c, v := range [3]uint8{clr.R, clr.G, clr.B} {
		dst.Pix[i+c] = uint8(float64(v)*a + float64(dst.Pix[i+c])*(1-a) + 0.5)
	}
	dst.Pix[i+3] = uint8(255*a + float64(dst.Pix[i+3])*(1-a) + 0.5)
}

// drawCover 等比缩放 src 使其覆盖 dst
func drawCover(dst *image.RGBA, src image.Image) {
	sb, db := src.Bounds(), dst.Bounds()
	if sb.Empty() {
		return
	}
	scale := math.Max(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	w, h := int(math.Ceil(float64(sb.Dx())*scale)), int(math.Ceil(float64(sb.Dy())*scale))
	x, y := (db.Dx()-w)/2, (db.Dy()-h)/2
	draw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, draw.Over, nil)
}

// Downsample 用 CatmullRom 把预乘画布缩小到目标尺寸
// 尺寸相同时直接返回原图
func Downsample(src *image.RGBA, width, height int) *image.RGBA {
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
