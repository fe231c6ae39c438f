package mathutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestRotX_QuarterTurn(t *testing.T) {
	// 绕 X 轴旋转 90°：+Y -> +Z
	got := RotX(math.Pi / 2).MulVec3(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if !vecNear(got, want) {
		t.Errorf("RotX(90°)·(0,1,0) = %v, want %v", got, want)
	}
}

func TestRotY_QuarterTurn(t *testing.T) {
	// 绕 Y 轴旋转 90°：+Z -> +X
	got := RotY(math.Pi / 2).MulVec3(Vec3{0, 0, 1})
	want := Vec3{1, 0, 0}
	if !vecNear(got, want) {
		t.Errorf("RotY(90°)·(0,0,1) = %v, want %v", got, want)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{3, -4, 12}
	for _, a := range []float64{-2.5, -0.3, 0, 0.7, 4.1} {
		if l := RotX(a).MulVec3(v).Len(); math.Abs(l-13) > eps {
			t.Errorf("|RotX(%v)·v| = %v, want 13", a, l)
		}
		if l := RotY(a).MulVec3(v).Len(); math.Abs(l-13) > eps {
			t.Errorf("|RotY(%v)·v| = %v, want 13", a, l)
		}
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("Deg2Rad(180) = %v, want π", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"区间内", 0.5, 0, 1, 0.5},
		{"低于下限", -3, 0, 1, 0},
		{"高于上限", 7, 0, 1, 1},
		{"NaN 取下限", math.NaN(), 90, 260, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
