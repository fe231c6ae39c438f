package systems

import (
	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/components"
	"github.com/decker502/skillsplanet/pkg/ecs"
)

// testLabels 创建测试用的标签列表
func testLabels(texts ...string) []orbit.Label {
	kinds := []orbit.Kind{orbit.KindHard, orbit.KindSoft, orbit.KindActivity, orbit.KindTrait}
	labels := make([]orbit.Label, len(texts))
	for i, t := range texts {
		labels[i] = orbit.Label{Text: t, Kind: kinds[i%len(kinds)]}
	}
	return labels
}

// fixedMeasure 每个字节 10 像素宽、20 像素高
func fixedMeasure(s string) (float64, float64) {
	return float64(len(s)) * 10, 20
}

// projectionOf 读取实体的投影组件
func projectionOf(em *ecs.EntityManager, id ecs.EntityID) *components.ProjectionComponent {
	proj, _ := ecs.GetComponent[*components.ProjectionComponent](em, id)
	return proj
}
