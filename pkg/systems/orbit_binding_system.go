package systems

import (
	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/ecs"
	"github.com/decker502/skillsplanet/pkg/entities"
)

// OrbitBindingSystem 把场的逐帧投影结果绑定到标签实体
//
// 每个标签对应一个稳定的实体（下标 → 实体），实体在场的生命周期内不会被逐帧创建或销毁。
// Sink 作为 orbit.Field 的宿主绑定步骤，只写入 ProjectionComponent 与 ClickableComponent.IsEnabled。
type OrbitBindingSystem struct {
	entityManager *ecs.EntityManager
	entities      []ecs.EntityID
	frames        uint64
}

// NewOrbitBindingSystem 创建绑定系统
func NewOrbitBindingSystem(em *ecs.EntityManager) *OrbitBindingSystem {
	return &OrbitBindingSystem{entityManager: em}
}

// Bind 为每个标签创建实体
// measure 返回标签文字的宽高（未缩放），用于命中区域；已有实体会先被移除
func (s *OrbitBindingSystem) Bind(labels []orbit.Label, measure func(string) (float64, float64)) []ecs.EntityID {
	s.Clear()
	s.entities = make([]ecs.EntityID, len(labels))
	for i, l := range labels {
		w, h := 0.0, 0.0
		if measure != nil {
			w, h = measure(l.Text)
		}
		s.entities[i] = entities.NewLabelEntity(s.entityManager, l, i, w, h)
	}
	return s.entities
}

// Clear 移除所有标签实体
func (s *OrbitBindingSystem) Clear() {
	for _, id := range s.entities {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	s.entities = nil
}

// Entities 返回按标签下标排列的实体
func (s *OrbitBindingSystem) Entities() []ecs.EntityID {
	return s.entities
}

// Frames 返回已应用的帧数
func (s *OrbitBindingSystem) Frames() uint64 {
	return s.frames
}

// Sink 返回场的宿主绑定函数
func (s *OrbitBindingSystem) Sink() orbit.Sink {
	return s.Apply
}

// Apply 把一帧投影结果写入实体
// 下标越界的结果被忽略（场与实体数量不一致时不会 panic）
func (s *OrbitBindingSystem) Apply(frame []orbit.ProjectedLabel) {
	for _, p := range frame {
		if p.Index < 0 || p.Index >= len(s.entities) {
			continue
		}
		id := s.entities[p.Index]
		proj, ok := ecs.GetComponent[*components.ProjectionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		proj.X, proj.Y, proj.Z = p.X, p.Y, p.Z
		proj.Opacity = p.Opacity
		proj.Scale = p.Scale
		proj.Blur = p.Blur
		proj.Interactive = p.Interactive

		if click, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
			click.IsEnabled = p.Interactive
		}
	}
	s.frames++
}
