package systems

import (
	"testing"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/utils"
)

func TestPointerHost_Update(t *testing.T) {
	h := NewPointerHost(orbit.Rect{X: 100, Y: 100, Width: 200, Height: 200})
	var events []string
	h.OnPointerEnter(func(orbit.PointerEvent) { events = append(events, "enter") })
	h.OnPointerMove(func(orbit.PointerEvent) { events = append(events, "move") })
	h.OnPointerLeave(func(orbit.PointerEvent) { events = append(events, "leave") })

	samples := []utils.PointerSample{
		{X: 150, Y: 150, Present: true},
		{X: 160, Y: 150, Present: true},
		{X: 160, Y: 150, Present: false}, // 鼠标移出窗口
		{X: 10, Y: 10, Present: true},
	}
	for _, s := range samples {
		h.Update(s)
	}

	want := []string{"enter", "move", "move", "leave"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events = %v, want %v", events, want)
			break
		}
	}
}
