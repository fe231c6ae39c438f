package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/internal/raster"
	"github.com/decker502/skillsplanet/pkg/config"
	_ "github.com/ftrvxmtrx/tga" // Register TGA decoder
	"gopkg.in/yaml.v3"
)

// Request 一次离线渲染的参数
type Request struct {
	ConfigPath  string
	WordsPath   string
	Language    string
	Frames      int
	Width       int
	Height      int
	Supersample int
	Background  string
	Hover       *[2]float64 // 模拟指针位置，nil 表示无指针
}

// Snapshot 渲染结果
type Snapshot struct {
	Image    *image.RGBA
	Language string
	Labels   []orbit.Label
	Frame    []orbit.ProjectedLabel
	Radius   float64
	Frames   int
	State    orbit.OrientationState
}

// Take 加载配置与词表，推进标签场并渲染最后一帧
func Take(req Request) (*Snapshot, error) {
	cfg, err := config.LoadFieldConfig(req.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	words, err := config.LoadWords(req.WordsPath)
	if err != nil {
		return nil, err
	}
	lang := req.Language
	if lang == "" {
		lang = cfg.Window.Language
	}
	labels := words.Labels(lang)

	field := orbit.NewField(labels, cfg.Options(float64(req.Width), float64(req.Height)))
	sched := orbit.NewManualScheduler()
	tracker := orbit.NewPointerTracker(orbit.Rect{Width: float64(req.Width), Height: float64(req.Height)})
	if err := field.Start(sched, tracker, nil); err != nil {
		return nil, fmt.Errorf("failed to start field: %w", err)
	}
	defer field.Stop()

	if req.Hover != nil {
		tracker.Update(req.Hover[0], req.Hover[1])
	}
	frames := 0
	for i := 0; i < req.Frames; i++ {
		if sched.RunFrame() > 0 {
			frames++
		}
	}
	log.Printf("[Snapshot] Advanced %d frames, radius %.1f", frames, field.Radius())

	opts := raster.Options{
		Width:       req.Width,
		Height:      req.Height,
		Supersample: req.Supersample,
		FontSize:    cfg.Field.FontSize,
		Background:  config.MustHexColor(cfg.Palette.Background),
		Ring:        config.MustHexColor(cfg.Palette.Ring),
		Colors:      make(map[orbit.Kind]color.RGBA),
	}
	for _, k := range []orbit.Kind{orbit.KindHard, orbit.KindSoft, orbit.KindActivity, orbit.KindTrait} {
		opts.Colors[k] = cfg.Palette.ColorFor(k)
	}

	bgPath := req.Background
	if bgPath == "" {
		bgPath = cfg.Window.Background
	}
	if bgPath != "" {
		img, err := decodeImage(bgPath)
		if err != nil {
			return nil, err
		}
		opts.BackgroundImage = img
	}

	r, err := raster.NewRenderer(opts)
	if err != nil {
		return nil, err
	}
	img, err := r.Render(labels, field.Frame(), field.Radius())
	if err != nil {
		return nil, fmt.Errorf("failed to render frame: %w", err)
	}

	return &Snapshot{
		Image:    img,
		Language: lang,
		Labels:   labels,
		Frame:    append([]orbit.ProjectedLabel(nil), field.Frame()...),
		Radius:   field.Radius(),
		Frames:   frames,
		State:    field.State(),
	}, nil
}

// decodeImage 按图片注册表解码（png / jpeg / tga）
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open background %s: %w", path, err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background %s: %w", path, err)
	}
	log.Printf("[Snapshot] Loaded %s background %s", format, path)
	return img, nil
}

// writeImage 按扩展名编码：.webp 使用无损 WebP，.png 使用 PNG
func writeImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".png" {
		return fmt.Errorf("unsupported output format %q (use .webp or .png)", ext)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".webp" {
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("PNG encode: %w", err)
	}
	return nil
}

// frameDump 一帧投影结果的 YAML 表示
type frameDump struct {
	Language string      `yaml:"language"`
	Frames   int         `yaml:"frames"`
	Radius   float64     `yaml:"radius"`
	Pitch    float64     `yaml:"pitch"`
	Yaw      float64     `yaml:"yaw"`
	Mode     string      `yaml:"mode"`
	Labels   []labelDump `yaml:"labels"`
}

type labelDump struct {
	Text        string  `yaml:"text"`
	Kind        string  `yaml:"kind"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Z           float64 `yaml:"z"`
	Opacity     float64 `yaml:"opacity"`
	Scale       float64 `yaml:"scale"`
	Blur        float64 `yaml:"blur"`
	Interactive bool    `yaml:"interactive"`
}

// newFrameDump 把快照转换为 YAML 结构，标签按下标顺序
func newFrameDump(snap *Snapshot) frameDump {
	d := frameDump{
		Language: snap.Language,
		Frames:   snap.Frames,
		Radius:   snap.Radius,
		Pitch:    snap.State.Pitch,
		Yaw:      snap.State.Yaw,
		Mode:     snap.State.Mode.String(),
		Labels:   make([]labelDump, 0, len(snap.Frame)),
	}
	for _, p := range snap.Frame {
		if p.Index < 0 || p.Index >= len(snap.Labels) {
			continue
		}
		l := snap.Labels[p.Index]
		d.Labels = append(d.Labels, labelDump{
			Text:        l.Text,
			Kind:        string(l.Kind),
			X:           p.X,
			Y:           p.Y,
			Z:           p.Z,
			Opacity:     p.Opacity,
			Scale:       p.Scale,
			Blur:        p.Blur,
			Interactive: p.Interactive,
		})
	}
	return d
}

// writeDump 写出 YAML 帧数据
func writeDump(path string, snap *Snapshot) error {
	data, err := yaml.Marshal(newFrameDump(snap))
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// parseSize 解析 "WxH"
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(ws))
	h, err2 := strconv.Atoi(strings.TrimSpace(hs))
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want positive WxH", s)
	}
	return w, h, nil
}

// parsePoint 解析 "x,y"
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("invalid point %q, want x,y", s)
	}
	return x, y, nil
}
