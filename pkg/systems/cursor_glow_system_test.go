package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/skillsplanet/pkg/ecs"
	"github.com/decker502/skillsplanet/pkg/utils"
)

func TestCursorGlowSystem_Follows(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCursorGlowSystem(em, 640, 400, 0.15, 180, 0.2, color.RGBA{255, 255, 255, 255})

	s.Update(utils.PointerSample{X: 740, Y: 400, Present: true})
	glow := s.Glow()
	if math.Abs(glow.X-655) > 1e-9 || glow.Y != 400 {
		t.Errorf("after one tick = (%v, %v), want (655, 400)", glow.X, glow.Y)
	}
	if !glow.Visible {
		t.Error("glow hidden while pointer present")
	}

	for i := 0; i < 120; i++ {
		s.Update(utils.PointerSample{X: 740, Y: 400, Present: true})
	}
	if math.Abs(glow.X-740) > 0.01 {
		t.Errorf("glow did not converge: x = %v", glow.X)
	}

	// 指针离开：隐藏并保持目标
	s.Update(utils.PointerSample{Present: false})
	if glow.Visible || glow.TargetX != 740 {
		t.Errorf("after leave: %+v", glow)
	}
}

func TestPremultiply(t *testing.T) {
	got := premultiply(color.RGBA{200, 100, 50, 128})
	want := color.RGBA{100, 50, 25, 128}
	if got != want {
		t.Errorf("premultiply = %v, want %v", got, want)
	}
}
