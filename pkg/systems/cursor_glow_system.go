package systems

import (
	"image/color"

	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/ecs"
	"github.com/decker502/skillsplanet/pkg/entities"
	"github.com/decker502/skillsplanet/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowLayers 绘制柔光时叠加的同心圆层数
const glowLayers = 6

// CursorGlowSystem 跟随指针的柔光
// 每帧向指针位置插值 Follow 比例，形成拖尾效果
type CursorGlowSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	tint          color.RGBA
}

// NewCursorGlowSystem 创建柔光实体，初始位于 (x, y)
func NewCursorGlowSystem(em *ecs.EntityManager, x, y, follow, radius, alpha float64, tint color.RGBA) *CursorGlowSystem {
	id := entities.NewCursorGlowEntity(em, x, y, follow, radius, alpha)
	return &CursorGlowSystem{entityManager: em, entity: id, tint: tint}
}

// Glow 返回柔光组件
func (s *CursorGlowSystem) Glow() *components.CursorGlowComponent {
	glow, _ := ecs.GetComponent[*components.CursorGlowComponent](s.entityManager, s.entity)
	return glow
}

// Update 处理一帧指针采样
// 指针不可用时保持最后的目标位置并隐藏
func (s *CursorGlowSystem) Update(sample utils.PointerSample) {
	glow := s.Glow()
	if glow == nil {
		return
	}
	glow.Visible = sample.Present
	if sample.Present {
		glow.TargetX = float64(sample.X)
		glow.TargetY = float64(sample.Y)
	}
	glow.X = utils.Lerp(glow.X, glow.TargetX, glow.Follow)
	glow.Y = utils.Lerp(glow.Y, glow.TargetY, glow.Follow)
}

// Draw 绘制柔光（由外到内叠加半透明圆）
func (s *CursorGlowSystem) Draw(screen *ebiten.Image) {
	glow := s.Glow()
	if glow == nil || !glow.Visible || glow.Radius <= 0 {
		return
	}
	layerAlpha := glow.Alpha / glowLayers
	for i := 0; i < glowLayers; i++ {
		r := glow.Radius * float64(glowLayers-i) / glowLayers
		c := s.tint
		c.A = uint8(255 * utils.Clamp01(layerAlpha))
		vector.DrawFilledCircle(screen, float32(glow.X), float32(glow.Y), float32(r), premultiply(c), true)
	}
}

// premultiply 转换为 ebiten 需要的预乘 alpha 颜色
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
