package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultFieldConfigPath 默认的场配置文件路径（嵌入资源）
const DefaultFieldConfigPath = "data/field.yaml"

// 缓动时长的合法范围（毫秒）
const (
	MinIntroDurationMs     = 200
	MaxIntroDurationMs     = 3000
	DefaultIntroDurationMs = 900
)

// MaxSensitivity 指针灵敏度与空闲角速度的上限（弧度/帧）
// 一帧转动超过约 0.5 弧度时标签已无法辨认
const MaxSensitivity = 0.5

// FieldConfig 技能星球的完整配置
// 对应 data/field.yaml
type FieldConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Field   FieldSettings `yaml:"field"`
	Glow    GlowConfig    `yaml:"glow"`
	Intro   IntroConfig   `yaml:"intro"`
	Palette PaletteConfig `yaml:"palette"`
}

// WindowConfig 桌面窗口参数
type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Language string `yaml:"language"` // 默认语言（fr / en）

	// Background 可选的背景图片（png / jpeg / tga），为空时使用纯色
	Background string `yaml:"background"`
}

// FieldSettings 球面标签场参数
type FieldSettings struct {
	InitialPitchDeg   float64 `yaml:"initialPitchDeg"`
	InitialYawDeg     float64 `yaml:"initialYawDeg"`
	IdleYaw           float64 `yaml:"idleYaw"`     // 弧度/帧
	Smoothing         float64 `yaml:"smoothing"`   // 指数平滑系数
	Sensitivity       float64 `yaml:"sensitivity"` // 指针灵敏度
	NarrowSensitivity float64 `yaml:"narrowSensitivity"`
	NarrowWidth       float64 `yaml:"narrowWidth"`
	RadiusFactor      float64 `yaml:"radiusFactor"`
	RadiusMin         float64 `yaml:"radiusMin"`
	RadiusMax         float64 `yaml:"radiusMax"`
	FontSize          float64 `yaml:"fontSize"`
}

// GlowConfig 跟随指针的柔光
type GlowConfig struct {
	Enabled bool    `yaml:"enabled"`
	Follow  float64 `yaml:"follow"` // 每帧插值系数
	Radius  float64 `yaml:"radius"`
	Alpha   float64 `yaml:"alpha"`
}

// IntroConfig 开场滚动缓动
type IntroConfig struct {
	DurationMs int     `yaml:"durationMs"`
	Overshoot  float64 `yaml:"overshoot"` // 额外的像素偏移，随进度衰减
	Offset     float64 `yaml:"offset"`    // 场从下方滑入的距离（像素）
}

// PaletteConfig 颜色（#RRGGBB 或 #RRGGBBAA）
type PaletteConfig struct {
	Background string `yaml:"background"`
	Ring       string `yaml:"ring"`
	Hard       string `yaml:"hard"`
	Soft       string `yaml:"soft"`
	Activity   string `yaml:"activity"`
	Trait      string `yaml:"trait"`
	Highlight  string `yaml:"highlight"`
	Caption    string `yaml:"caption"`
}

// DefaultFieldConfig 返回内置默认配置
func DefaultFieldConfig() *FieldConfig {
	cfg := &FieldConfig{}
	applyFieldDefaults(cfg)
	return cfg
}

// LoadFieldConfig 从 YAML 文件加载场配置
// 读取 → 解析 → 填充默认值 → 校验
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config file %s: %w", path, err)
	}
	cfg, err := ParseFieldConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid field config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseFieldConfig 解析 YAML 数据
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	var cfg FieldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse field config YAML: %w", err)
	}
	applyFieldDefaults(&cfg)
	if err := validateFieldConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyFieldDefaults 为缺失的可选字段设置默认值
// 零值视为未配置（初始角度除外：0° 是合法值，缺省时保持 0）
func applyFieldDefaults(cfg *FieldConfig) {
	w := &cfg.Window
	if w.Title == "" {
		w.Title = "Skills Planet"
	}
	if w.Width == 0 {
		w.Width = 1280
	}
	if w.Height == 0 {
		w.Height = 800
	}
	if w.Language == "" {
		w.Language = DefaultLanguage
	}

	tun := orbit.DefaultTuning()
	rb := orbit.DefaultRadiusBounds()
	f := &cfg.Field
	setDefault(&f.IdleYaw, tun.IdleYaw)
	setDefault(&f.Smoothing, tun.Smoothing)
	setDefault(&f.Sensitivity, tun.Sensitivity)
	setDefault(&f.NarrowSensitivity, tun.NarrowSensitivity)
	setDefault(&f.NarrowWidth, tun.NarrowWidth)
	setDefault(&f.RadiusFactor, rb.Factor)
	setDefault(&f.RadiusMin, rb.Min)
	setDefault(&f.RadiusMax, rb.Max)
	setDefault(&f.FontSize, 18)

	g := &cfg.Glow
	setDefault(&g.Follow, 0.15)
	setDefault(&g.Radius, 180)
	setDefault(&g.Alpha, 0.18)

	in := &cfg.Intro
	if in.DurationMs == 0 {
		in.DurationMs = DefaultIntroDurationMs
	}
	setDefault(&in.Overshoot, 80)
	setDefault(&in.Offset, 120)

	p := &cfg.Palette
	setDefaultString(&p.Background, "#0b0f1a")
	setDefaultString(&p.Ring, "#ffffff14")
	setDefaultString(&p.Hard, "#7dd3fc")
	setDefaultString(&p.Soft, "#c4b5fd")
	setDefaultString(&p.Activity, "#86efac")
	setDefaultString(&p.Trait, "#fcd34d")
	setDefaultString(&p.Highlight, "#ffffff")
	setDefaultString(&p.Caption, "#cbd5e1")
}

func setDefault(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

func setDefaultString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

// validateFieldConfig 校验配置合法性
// 缓动时长越界时钳制而不是报错
func validateFieldConfig(cfg *FieldConfig) error {
	var errs []error

	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height))
	}

	f := cfg.Field
	g := cfg.Glow
	for name, v := range map[string]float64{
		"field.initialPitchDeg":   f.InitialPitchDeg,
		"field.initialYawDeg":     f.InitialYawDeg,
		"field.idleYaw":           f.IdleYaw,
		"field.smoothing":         f.Smoothing,
		"field.sensitivity":       f.Sensitivity,
		"field.narrowSensitivity": f.NarrowSensitivity,
		"field.narrowWidth":       f.NarrowWidth,
		"field.radiusFactor":      f.RadiusFactor,
		"field.radiusMin":         f.RadiusMin,
		"field.radiusMax":         f.RadiusMax,
		"field.fontSize":          f.FontSize,
		"glow.follow":             g.Follow,
		"glow.radius":             g.Radius,
		"glow.alpha":              g.Alpha,
		"intro.overshoot":         cfg.Intro.Overshoot,
		"intro.offset":            cfg.Intro.Offset,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", name, v))
		}
	}

	// 区间检查写成 !(在区间内)，NaN 同样不通过
	if !(f.Smoothing > 0 && f.Smoothing <= 1) {
		errs = append(errs, fmt.Errorf("field.smoothing must be in (0, 1], got %v", f.Smoothing))
	}
	if !(f.Sensitivity >= 0 && f.Sensitivity <= MaxSensitivity) {
		errs = append(errs, fmt.Errorf("field.sensitivity must be in [0, %v], got %v", MaxSensitivity, f.Sensitivity))
	}
	if !(f.NarrowSensitivity >= 0 && f.NarrowSensitivity <= MaxSensitivity) {
		errs = append(errs, fmt.Errorf("field.narrowSensitivity must be in [0, %v], got %v", MaxSensitivity, f.NarrowSensitivity))
	}
	if !(math.Abs(f.IdleYaw) <= MaxSensitivity) {
		errs = append(errs, fmt.Errorf("field.idleYaw must be in [-%v, %v], got %v", MaxSensitivity, MaxSensitivity, f.IdleYaw))
	}
	if !(f.NarrowWidth >= 0) {
		errs = append(errs, fmt.Errorf("field.narrowWidth must not be negative, got %v", f.NarrowWidth))
	}
	if !(f.RadiusFactor > 0) {
		errs = append(errs, fmt.Errorf("field.radiusFactor must be positive, got %v", f.RadiusFactor))
	}
	if !(f.RadiusMin > 0) {
		errs = append(errs, fmt.Errorf("field.radiusMin must be positive, got %v", f.RadiusMin))
	}
	if !(f.RadiusMax >= f.RadiusMin) {
		errs = append(errs, fmt.Errorf("field.radiusMax (%v) must be >= radiusMin (%v)", f.RadiusMax, f.RadiusMin))
	}
	if !(f.FontSize > 0) {
		errs = append(errs, fmt.Errorf("field.fontSize must be positive, got %v", f.FontSize))
	}
	if !(g.Follow > 0 && g.Follow <= 1) {
		errs = append(errs, fmt.Errorf("glow.follow must be in (0, 1], got %v", g.Follow))
	}
	if !(g.Radius >= 0) {
		errs = append(errs, fmt.Errorf("glow.radius must not be negative, got %v", g.Radius))
	}
	if !(g.Alpha >= 0 && g.Alpha <= 1) {
		errs = append(errs, fmt.Errorf("glow.alpha must be in [0, 1], got %v", g.Alpha))
	}

	cfg.Intro.DurationMs = ClampIntroDuration(cfg.Intro.DurationMs)

	p := cfg.Palette
	for name, v := range map[string]string{
		"background": p.Background,
		"ring":       p.Ring,
		"hard":       p.Hard,
		"soft":       p.Soft,
		"activity":   p.Activity,
		"trait":      p.Trait,
		"highlight":  p.Highlight,
		"caption":    p.Caption,
	} {
		if _, err := ParseHexColor(v); err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// ClampIntroDuration 把缓动时长钳制到 [200, 3000] 毫秒，非正值使用默认 900
func ClampIntroDuration(ms int) int {
	if ms <= 0 {
		return DefaultIntroDurationMs
	}
	if ms < MinIntroDurationMs {
		return MinIntroDurationMs
	}
	if ms > MaxIntroDurationMs {
		return MaxIntroDurationMs
	}
	return ms
}

// Options 转换为 orbit.Field 构造参数
func (c *FieldConfig) Options(viewportW, viewportH float64) orbit.Options {
	f := c.Field
	return orbit.Options{
		Tuning: orbit.Tuning{
			IdleYaw:           f.IdleYaw,
			Smoothing:         f.Smoothing,
			Sensitivity:       f.Sensitivity,
			NarrowSensitivity: f.NarrowSensitivity,
			NarrowWidth:       f.NarrowWidth,
		},
		InitialPitchDeg: f.InitialPitchDeg,
		InitialYawDeg:   f.InitialYawDeg,
		Radius: orbit.RadiusBounds{
			Factor: f.RadiusFactor,
			Min:    f.RadiusMin,
			Max:    f.RadiusMax,
		},
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
	}
}

// ColorFor 返回标签类别对应的颜色
// 未知类别使用 Caption 颜色
func (p PaletteConfig) ColorFor(kind orbit.Kind) color.RGBA {
	var hex string
	switch kind {
	case orbit.KindHard:
		hex = p.Hard
	case orbit.KindSoft:
		hex = p.Soft
	case orbit.KindActivity:
		hex = p.Activity
	case orbit.KindTrait:
		hex = p.Trait
	default:
		hex = p.Caption
	}
	return MustHexColor(hex)
}

// ParseHexColor 解析 #RRGGBB / #RRGGBBAA 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHexColor 解析颜色，失败时返回不透明白色
// 配置加载时已经校验过，运行期不会失败
func MustHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}
