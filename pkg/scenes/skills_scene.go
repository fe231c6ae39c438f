package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/decker502/skillsplanet/pkg/content"
	"github.com/decker502/skillsplanet/pkg/ecs"
	"github.com/decker502/skillsplanet/pkg/game"
	"github.com/decker502/skillsplanet/pkg/systems"
	"github.com/decker502/skillsplanet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 文字排版
const (
	captionMargin   = 32.0
	captionMaxWidth = 720.0
	titleScale      = 1.6
	lineSpacing     = 1.35
)

// fieldPadding 指针区域在球半径之外留出的边距（标签文字会超出球面）
const fieldPadding = 40.0

// SkillsScene 技能星球场景
//
// 组合球面标签场与桌面宿主：FrameHost 每个 tick 刷新一次帧回调，
// PointerHost 把指针采样转换为进入/移动/离开事件，OrbitBindingSystem 作为场的输出写入标签实体。
// 顶部显示标题与高亮简介，左下角为类别图例。
type SkillsScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.FieldConfig
	words           *config.WordList
	lang            string
	strings         *game.Strings

	entityManager *ecs.EntityManager
	frameHost     *systems.FrameHost
	pointerHost   *systems.PointerHost
	binding       *systems.OrbitBindingSystem
	hover         *systems.LabelHoverSystem
	glow          *systems.CursorGlowSystem
	render        *systems.LabelRenderSystem
	field         *orbit.Field

	labelFace   *text.GoTextFace
	captionFace *text.GoTextFace
	titleFace   *text.GoTextFace
	background  *ebiten.Image
	bgColor     color.RGBA
	captionClr  color.RGBA

	intro   *utils.ScrollTween
	bio     [][]content.Word
	legend  []systems.LegendEntry
	width   int
	height  int
	pointer utils.PointerSample
	quit    bool
}

// NewSkillsScene 创建场景并启动标签场
//
// 参数:
//   - rm: 资源管理器（字体、背景图片）
//   - cfg: 场配置
//   - words: 词表
//   - lang: 初始语言，词表未声明时使用配置中的默认语言
func NewSkillsScene(rm *game.ResourceManager, cfg *config.FieldConfig, words *config.WordList, lang string) (*SkillsScene, error) {
	if !words.HasLanguage(lang) {
		log.Printf("[SkillsScene] Warning: language %q not in word list, using %q", lang, cfg.Window.Language)
		lang = cfg.Window.Language
	}

	s := &SkillsScene{
		resourceManager: rm,
		cfg:             cfg,
		words:           words,
		lang:            lang,
		entityManager:   ecs.NewEntityManager(),
		frameHost:       systems.NewFrameHost(),
		width:           cfg.Window.Width,
		height:          cfg.Window.Height,
		bgColor:         config.MustHexColor(cfg.Palette.Background),
		captionClr:      config.MustHexColor(cfg.Palette.Caption),
	}

	var err error
	size := cfg.Field.FontSize
	if s.labelFace, err = rm.LoadFont("", size); err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	if s.captionFace, err = rm.LoadFont("", size*0.9); err != nil {
		return nil, fmt.Errorf("failed to load caption font: %w", err)
	}
	if s.titleFace, err = rm.LoadFont("", size*titleScale); err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}

	if cfg.Window.Background != "" {
		if img, err := rm.LoadImage(cfg.Window.Background); err != nil {
			log.Printf("[SkillsScene] Warning: %v, using solid background", err)
		} else {
			s.background = img
		}
	}

	s.pointerHost = systems.NewPointerHost(orbit.Rect{})
	s.binding = systems.NewOrbitBindingSystem(s.entityManager)
	s.hover = systems.NewLabelHoverSystem(s.entityManager)
	s.render = systems.NewLabelRenderSystem(s.entityManager, s.labelFace, cfg.Palette)
	s.glow = systems.NewCursorGlowSystem(s.entityManager,
		float64(s.width)/2, float64(s.height)/2,
		cfg.Glow.Follow, cfg.Glow.Radius, cfg.Glow.Alpha,
		config.MustHexColor(cfg.Palette.Highlight))

	s.intro = utils.NewScrollTween(cfg.Intro.Offset, 0, cfg.Intro.Overshoot,
		time.Duration(cfg.Intro.DurationMs)*time.Millisecond)

	if err := s.startField(); err != nil {
		return nil, err
	}
	log.Printf("[SkillsScene] Initialized: %d labels, language %s", len(s.field.Labels()), s.lang)
	return s, nil
}

// startField 按当前语言绑定标签实体并启动新的场
func (s *SkillsScene) startField() error {
	labels := s.words.Labels(s.lang)
	s.binding.Bind(labels, s.measureLabel)

	opts := s.cfg.Options(float64(s.width), float64(s.height))
	if utils.IsMobile() {
		// 触摸设备始终使用窄屏灵敏度
		opts.Tuning.Sensitivity = opts.Tuning.NarrowSensitivity
	}
	s.field = orbit.NewField(labels, opts)
	s.pointerHost.SetBounds(s.fieldBounds())
	s.binding.Apply(s.field.Frame())
	if err := s.field.Start(s.frameHost, s.pointerHost, s.binding.Sink()); err != nil {
		return fmt.Errorf("failed to start orbit field: %w", err)
	}

	s.strings = game.LoadStrings(s.lang)
	s.legend = []systems.LegendEntry{
		{Kind: orbit.KindHard, Label: s.strings.GetString("LEGEND_HARD")},
		{Kind: orbit.KindSoft, Label: s.strings.GetString("LEGEND_SOFT")},
		{Kind: orbit.KindActivity, Label: s.strings.GetString("LEGEND_ACTIVITY")},
		{Kind: orbit.KindTrait, Label: s.strings.GetString("LEGEND_TRAIT")},
	}
	s.layoutCaption()
	return nil
}

// SwitchLanguage 切换语言：拆除当前场，用新语言的标签重建
func (s *SkillsScene) SwitchLanguage(lang string) error {
	if lang == s.lang {
		return nil
	}
	s.field.Stop()
	s.lang = lang
	log.Printf("[SkillsScene] Switching language to %s", lang)
	return s.startField()
}

// Language 返回当前语言
func (s *SkillsScene) Language() string {
	return s.lang
}

// Field 返回当前运行的标签场
func (s *SkillsScene) Field() *orbit.Field {
	return s.field
}

func (s *SkillsScene) measureLabel(str string) (float64, float64) {
	return text.Measure(str, s.labelFace, s.labelFace.Size*lineSpacing)
}

func (s *SkillsScene) measureCaption(str string) float64 {
	return utils.MeasureText(str, s.captionFace)
}

// layoutCaption 高亮并换行简介文字
func (s *SkillsScene) layoutCaption() {
	maxW := math.Min(captionMaxWidth, float64(s.width)-2*captionMargin)
	segs := content.Highlight(s.strings.GetString("BIO"), s.lang)
	s.bio = content.Wrap(segs, s.measureCaption, maxW)
}

func (s *SkillsScene) bounds() orbit.Rect {
	return orbit.Rect{Width: float64(s.width), Height: float64(s.height)}
}

// fieldBounds 返回场的指针区域：以场中心为中心、边长 2R 加边距的正方形
// 标题、简介与图例不在该区域内，指针停在文字上不会驱动旋转
func (s *SkillsScene) fieldBounds() orbit.Rect {
	cx, cy := s.center()
	half := s.field.Radius() + fieldPadding
	return orbit.Rect{X: cx - half, Y: cy - half, Width: 2 * half, Height: 2 * half}
}

// center 返回场中心的屏幕坐标（包含开场滑入偏移）
func (s *SkillsScene) center() (float64, float64) {
	cx, cy := s.bounds().Center()
	return cx, cy + s.intro.Value()
}

// Resize 窗口尺寸变化：更新指针区域、半径、灵敏度与文字排版
func (s *SkillsScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.field.Resize(float64(width), float64(height))
	s.pointerHost.SetBounds(s.fieldBounds())
	s.layoutCaption()
}

// Close 拆除场（取消帧回调、注销指针监听）
func (s *SkillsScene) Close() {
	s.field.Stop()
	s.binding.Clear()
	log.Printf("[SkillsScene] Closed")
}

// QuitRequested 是否按下了 Esc
func (s *SkillsScene) QuitRequested() bool {
	return s.quit
}

// Update 更新场景
func (s *SkillsScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.quit = true
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := s.SwitchLanguage(s.words.NextLanguage(s.lang)); err != nil {
			log.Printf("[SkillsScene] Warning: %v", err)
		}
	}

	s.intro.Update(time.Duration(deltaTime * float64(time.Second)))
	// 开场滑入期间场中心在移动
	s.pointerHost.SetBounds(s.fieldBounds())

	s.pointer = utils.SamplePointer(s.width, s.height)
	s.pointerHost.Update(s.pointer)
	s.frameHost.Update(deltaTime)

	cx, cy := s.center()
	s.hover.Update(deltaTime, float64(s.pointer.X), float64(s.pointer.Y), s.pointer.Present, cx, cy)
	if s.cfg.Glow.Enabled {
		s.glow.Update(s.pointer)
	}
}

// Draw 绘制场景
func (s *SkillsScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.bgColor)
	if s.background != nil {
		drawCover(screen, s.background)
	}
	if s.cfg.Glow.Enabled {
		s.glow.Draw(screen)
	}

	cx, cy := s.center()
	s.render.DrawBackdrop(screen, cx, cy, s.field.Radius())
	s.render.Draw(screen, cx, cy)

	alpha := s.intro.Progress()
	s.drawCaption(screen, alpha)
	s.render.DrawLegend(screen, captionMargin, float64(s.height)-captionMargin-4*(s.labelFace.Size*lineSpacing), s.legend)
	s.drawHint(screen, alpha)
}

// drawCaption 绘制标题与高亮简介
func (s *SkillsScene) drawCaption(screen *ebiten.Image, alpha float64) {
	y := captionMargin
	op := &text.DrawOptions{}
	op.GeoM.Translate(captionMargin, y)
	op.ColorScale.ScaleWithColor(s.captionClr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s.strings.GetString("TITLE"), s.titleFace, op)
	y += s.titleFace.Size * lineSpacing

	lineH := s.captionFace.Size * lineSpacing
	space := s.measureCaption(" ")
	for _, line := range s.bio {
		x := captionMargin
		for _, word := range line {
			for _, seg := range word {
				clr := s.captionClr
				if seg.Highlighted() {
					clr = s.cfg.Palette.ColorFor(seg.Kind)
				}
				op := &text.DrawOptions{}
				op.GeoM.Translate(x, y)
				op.ColorScale.ScaleWithColor(clr)
				op.ColorScale.ScaleAlpha(float32(alpha))
				text.Draw(screen, seg.Text, s.captionFace, op)
				x += s.measureCaption(seg.Text)
			}
			x += space
		}
		y += lineH
	}
}

// drawHint 右下角的操作提示
func (s *SkillsScene) drawHint(screen *ebiten.Image, alpha float64) {
	hint := s.strings.GetString("HINT")
	lines := utils.WrapWords(hint, s.measureCaption, float64(s.width)/2)
	lineH := s.captionFace.Size * lineSpacing
	y := float64(s.height) - captionMargin - float64(len(lines))*lineH
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(float64(s.width)-captionMargin, y)
		op.ColorScale.ScaleWithColor(s.captionClr)
		op.ColorScale.ScaleAlpha(float32(alpha * 0.6))
		text.Draw(screen, line, s.captionFace, op)
		y += lineH
	}
}

// drawCover 等比缩放背景图片使其覆盖整个屏幕
func drawCover(screen, img *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Max(float64(sw)/float64(iw), float64(sh)/float64(ih))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-float64(iw)*scale)/2, (float64(sh)-float64(ih)*scale)/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
