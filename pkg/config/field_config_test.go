package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/skillsplanet/internal/orbit"
)

func TestLoadFieldConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "field.yaml")
		yamlData := `window:
  title: "Test Planet"
  width: 900
  height: 600
  language: en
field:
  initialPitchDeg: -8
  initialYawDeg: 16
  sensitivity: 0.08
glow:
  enabled: true
intro:
  durationMs: 5000
palette:
  hard: "#ff0000"
`
		if err := os.WriteFile(path, []byte(yamlData), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		cfg, err := LoadFieldConfig(path)
		if err != nil {
			t.Fatalf("LoadFieldConfig: %v", err)
		}
		if cfg.Window.Title != "Test Planet" || cfg.Window.Width != 900 || cfg.Window.Language != "en" {
			t.Errorf("window = %+v", cfg.Window)
		}
		if cfg.Field.Sensitivity != 0.08 {
			t.Errorf("Sensitivity = %v, want 0.08", cfg.Field.Sensitivity)
		}
		// 未配置的字段使用默认值
		if cfg.Field.Smoothing != 0.05 || cfg.Field.IdleYaw != 0.004 {
			t.Errorf("defaults not applied: %+v", cfg.Field)
		}
		if cfg.Intro.DurationMs != MaxIntroDurationMs {
			t.Errorf("DurationMs = %d, want clamped to %d", cfg.Intro.DurationMs, MaxIntroDurationMs)
		}
		if got := cfg.Palette.ColorFor(orbit.KindHard); got != (color.RGBA{255, 0, 0, 255}) {
			t.Errorf("hard color = %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFieldConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("window: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFieldConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestParseFieldConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"平滑系数越界", "field:\n  smoothing: 1.5\n", "smoothing"},
		{"半径上限小于下限", "field:\n  radiusMin: 200\n  radiusMax: 100\n", "radiusMax"},
		{"负的半径下限", "field:\n  radiusMin: -1\n", "radiusMin"},
		{"非法颜色", "palette:\n  soft: \"blue\"\n", "palette.soft"},
		{"负的窗口尺寸", "window:\n  width: -5\n", "window size"},
		{"跟随系数越界", "glow:\n  follow: 2\n", "glow.follow"},
		{"平滑系数 NaN", "field:\n  smoothing: .nan\n", "field.smoothing"},
		{"平滑系数 Inf", "field:\n  smoothing: .inf\n", "field.smoothing"},
		{"平滑系数为 5", "field:\n  smoothing: 5\n", "field.smoothing"},
		{"灵敏度 NaN", "field:\n  sensitivity: .nan\n", "field.sensitivity"},
		{"灵敏度 Inf", "field:\n  sensitivity: .inf\n", "field.sensitivity"},
		{"灵敏度为 5", "field:\n  sensitivity: 5\n", "field.sensitivity"},
		{"窄屏灵敏度 NaN", "field:\n  narrowSensitivity: .nan\n", "field.narrowSensitivity"},
		{"窄屏宽度 NaN", "field:\n  narrowWidth: .nan\n", "field.narrowWidth"},
		{"初始俯仰角 NaN", "field:\n  initialPitchDeg: .nan\n", "field.initialPitchDeg"},
		{"初始偏航角 Inf", "field:\n  initialYawDeg: -.inf\n", "field.initialYawDeg"},
		{"空闲角速度 NaN", "field:\n  idleYaw: .nan\n", "field.idleYaw"},
		{"柔光半径 NaN", "glow:\n  radius: .nan\n", "glow.radius"},
		{"柔光透明度越界", "glow:\n  alpha: 3\n", "glow.alpha"},
		{"跟随系数 NaN", "glow:\n  follow: .nan\n", "glow.follow"},
		{"开场偏移 Inf", "intro:\n  offset: .inf\n", "intro.offset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseFieldConfig_ValidTuningGivesFiniteFrames(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"默认值", ""},
		{"平滑系数为 1", "field:\n  smoothing: 1\n"},
		{"灵敏度上限", "field:\n  sensitivity: 0.5\n  narrowSensitivity: 0.5\n"},
		{"零俯仰", "field:\n  initialPitchDeg: 0\n  initialYawDeg: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFieldConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseFieldConfig: %v", err)
			}
			assertFiniteFrames(t, cfg)
		})
	}
}

func TestDefaultFieldConfig_MatchesCore(t *testing.T) {
	cfg := DefaultFieldConfig()
	if err := validateFieldConfig(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	opts := cfg.Options(1280, 800)
	if opts.Tuning != orbit.DefaultTuning() {
		t.Errorf("Tuning = %+v, want %+v", opts.Tuning, orbit.DefaultTuning())
	}
	if opts.Radius != orbit.DefaultRadiusBounds() {
		t.Errorf("Radius = %+v, want %+v", opts.Radius, orbit.DefaultRadiusBounds())
	}
	if opts.ViewportWidth != 1280 || opts.ViewportHeight != 800 {
		t.Errorf("viewport = %vx%v", opts.ViewportWidth, opts.ViewportHeight)
	}
	if cfg.Intro.DurationMs != DefaultIntroDurationMs || cfg.Glow.Follow != 0.15 {
		t.Errorf("intro/glow defaults = %+v %+v", cfg.Intro, cfg.Glow)
	}
}

func TestClampIntroDuration(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 900},
		{-10, 900},
		{50, 200},
		{900, 900},
		{3000, 3000},
		{10000, 3000},
	}
	for _, tt := range tests {
		if got := ClampIntroDuration(tt.in); got != tt.want {
			t.Errorf("ClampIntroDuration(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#0b0f1a", color.RGBA{0x0b, 0x0f, 0x1a, 0xff}, false},
		{"ffffff14", color.RGBA{0xff, 0xff, 0xff, 0x14}, false},
		{" #7DD3FC ", color.RGBA{0x7d, 0xd3, 0xfc, 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPaletteColorFor_UnknownKind(t *testing.T) {
	p := DefaultFieldConfig().Palette
	if got, want := p.ColorFor(orbit.Kind("mystery")), MustHexColor(p.Caption); got != want {
		t.Errorf("ColorFor(unknown) = %v, want caption %v", got, want)
	}
}

func TestShippedFieldConfig(t *testing.T) {
	cfg, err := LoadFieldConfig(filepath.Join("..", "..", DefaultFieldConfigPath))
	if err != nil {
		t.Fatalf("LoadFieldConfig: %v", err)
	}
	if cfg.Field.InitialPitchDeg != -8 || cfg.Field.InitialYawDeg != 16 {
		t.Errorf("initial angles = %v, %v", cfg.Field.InitialPitchDeg, cfg.Field.InitialYawDeg)
	}
	if cfg.Intro.Overshoot != 80 || cfg.Intro.DurationMs != DefaultIntroDurationMs {
		t.Errorf("intro = %+v", cfg.Intro)
	}
}
