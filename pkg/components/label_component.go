package components

import "github.com/decker502/skillsplanet/internal/orbit"

// LabelComponent 球面文字标签
// Index 对应 orbit.Field 布局与投影结果中的下标，实体在场的生命周期内保持不变
type LabelComponent struct {
	Text  string
	Kind  orbit.Kind
	Index int
}
