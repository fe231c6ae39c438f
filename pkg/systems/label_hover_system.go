package systems

import (
	"math"

	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/ecs"
)

// 悬停高亮的渐变速度（强度/秒）
const (
	hoverFadeInRate  = 8.0
	hoverFadeOutRate = 4.0
	// hitPadding 命中区域四周的额外像素
	hitPadding       = 4.0
)

// LabelHoverSystem 标签悬停检测
//
// 只有可交互的标签（ClickableComponent.IsEnabled，即投影透明度 > 0.6）参与命中测试，
// 背面半透明的标签不会拦截指针。多个标签重叠时取最靠前（Z 最大）的一个。
type LabelHoverSystem struct {
	entityManager *ecs.EntityManager
	hovered       ecs.EntityID
}

// NewLabelHoverSystem 创建悬停系统
func NewLabelHoverSystem(em *ecs.EntityManager) *LabelHoverSystem {
	return &LabelHoverSystem{entityManager: em}
}

// Update 根据指针位置更新悬停目标与高亮强度
// 参数:
//   - deltaTime: 时间增量（秒）
//   - px, py: 指针屏幕坐标
//   - present: 指针是否可用
//   - cx, cy: 场中心的屏幕坐标
func (s *LabelHoverSystem) Update(deltaTime, px, py float64, present bool, cx, cy float64) {
	s.hovered = 0
	if present {
		s.hovered = s.HitTest(px, py, cx, cy)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.HoverHighlightComponent](s.entityManager) {
		hl, _ := ecs.GetComponent[*components.HoverHighlightComponent](s.entityManager, id)
		if id == s.hovered {
			hl.Intensity = math.Min(1, hl.Intensity+hoverFadeInRate*deltaTime)
		} else {
			hl.Intensity = math.Max(0, hl.Intensity-hoverFadeOutRate*deltaTime)
		}
		hl.IsActive = hl.Intensity > 0
	}
}

// HitTest 返回指针下方最靠前的可交互标签，没有时返回 0
func (s *LabelHoverSystem) HitTest(px, py, cx, cy float64) ecs.EntityID {
	var best ecs.EntityID
	bestZ := math.Inf(-1)
	for _, id := range ecs.GetEntitiesWith2[*components.ProjectionComponent, *components.ClickableComponent](s.entityManager) {
		click, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !click.IsEnabled {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectionComponent](s.entityManager, id)

		halfW := click.Width*proj.Scale/2 + hitPadding
		halfH := click.Height*proj.Scale/2 + hitPadding
		x, y := cx+proj.X, cy+proj.Y
		if px < x-halfW || px > x+halfW || py < y-halfH || py > y+halfH {
			continue
		}
		if proj.Z > bestZ {
			best, bestZ = id, proj.Z
		}
	}
	return best
}

// Hovered 返回当前悬停的标签实体
func (s *LabelHoverSystem) Hovered() (ecs.EntityID, bool) {
	return s.hovered, s.hovered != 0
}
