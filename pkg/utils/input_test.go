package utils

import "testing"

func TestPointInViewport(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"左上角", 0, 0, true},
		{"内部", 640, 400, true},
		{"右边界之外", 1280, 400, false},
		{"负坐标", -1, 10, false},
		{"下边界之外", 10, 800, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInViewport(tt.x, tt.y, 1280, 800); got != tt.want {
				t.Errorf("PointInViewport(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
