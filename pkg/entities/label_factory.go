package entities

import (
	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/ecs"
)

// NewLabelEntity 创建球面标签实体
//
// 参数：
//   - em: 实体管理器
//   - label: 标签文字与类别
//   - index: 标签在场中的下标（对应 ProjectedLabel.Index）
//   - width, height: 未缩放的文字尺寸，用于命中区域
//
// 返回：
//   - 标签实体ID
//
// 实体在投影写入之前不可交互，缩放为 1。
func NewLabelEntity(em *ecs.EntityManager, label orbit.Label, index int, width, height float64) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.LabelComponent{
		Text:  label.Text,
		Kind:  label.Kind,
		Index: index,
	})
	ecs.AddComponent(em, entity, &components.ProjectionComponent{Scale: 1})
	ecs.AddComponent(em, entity, &components.ClickableComponent{
		Width:  width,
		Height: height,
	})
	ecs.AddComponent(em, entity, &components.HoverHighlightComponent{})

	return entity
}

// NewCursorGlowEntity 创建跟随指针的柔光实体
// 初始位置与目标位置相同（通常为窗口中心），指针出现前不可见
func NewCursorGlowEntity(em *ecs.EntityManager, x, y, follow, radius, alpha float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CursorGlowComponent{
		X:       x,
		Y:       y,
		TargetX: x,
		TargetY: y,
		Follow:  follow,
		Radius:  radius,
		Alpha:   alpha,
	})
	return entity
}
