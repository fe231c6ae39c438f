package orbit

import (
	"math"
	"testing"
)

func TestNewOrientation_IdleDefaults(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(-8, 16, tun)

	if st.Mode != ModeIdle {
		t.Errorf("Mode = %v, want idle", st.Mode)
	}
	if st.VelYaw != tun.IdleYaw || st.TargetYaw != tun.IdleYaw {
		t.Errorf("yaw velocity/target = %v/%v, want %v", st.VelYaw, st.TargetYaw, tun.IdleYaw)
	}
	if st.VelPitch != 0 || st.TargetPitch != 0 {
		t.Errorf("pitch velocity/target = %v/%v, want 0", st.VelPitch, st.TargetPitch)
	}
	if math.Abs(st.Pitch-(-8*math.Pi/180)) > 1e-12 {
		t.Errorf("Pitch = %v, want -8°", st.Pitch)
	}
}

func TestStep_IdleConvergence(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(0, 0, tun)
	st.VelYaw = 0 // 从静止开始

	prevYaw := st.Yaw
	for i := 0; i < 200; i++ {
		st = st.Step(tun.Smoothing)
		if st.Yaw <= prevYaw {
			t.Fatalf("frame %d: yaw did not increase (%v -> %v)", i, prevYaw, st.Yaw)
		}
		prevYaw = st.Yaw
	}
	if math.Abs(st.VelPitch) >= 0.0001 {
		t.Errorf("|pitch velocity| after 200 frames = %v, want < 0.0001", math.Abs(st.VelPitch))
	}
	if math.Abs(st.VelYaw-tun.IdleYaw) > tun.IdleYaw*0.001 {
		t.Errorf("yaw velocity after 200 frames = %v, want ≈ %v", st.VelYaw, tun.IdleYaw)
	}
}

func TestStep_PitchDecaysFromHover(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(0, 0, tun).Enter().Move(0.5, -0.5, tun.Sensitivity)
	for i := 0; i < 60; i++ {
		st = st.Step(tun.Smoothing)
	}
	st = st.Leave(tun)
	for i := 0; i < 200; i++ {
		st = st.Step(tun.Smoothing)
	}
	if math.Abs(st.VelPitch) >= 0.0001 {
		t.Errorf("|pitch velocity| = %v, want < 0.0001 after leave", math.Abs(st.VelPitch))
	}
}

func TestStep_DampedNotInstant(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(0, 0, tun).Move(0.5, 0, tun.Sensitivity)
	next := st.Step(tun.Smoothing)

	want := tun.IdleYaw + (0.5*tun.Sensitivity-tun.IdleYaw)*tun.Smoothing
	if math.Abs(next.VelYaw-want) > 1e-15 {
		t.Errorf("VelYaw after one step = %v, want %v", next.VelYaw, want)
	}
	if next.VelYaw == next.TargetYaw {
		t.Error("velocity jumped straight to target")
	}
	if math.Abs(next.Yaw-want) > 1e-15 {
		t.Errorf("Yaw = %v, want %v (integrated after smoothing)", next.Yaw, want)
	}
}

func TestHoverLeaveRoundTrip(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(-8, 16, tun)

	st = st.Enter()
	if st.Mode != ModeHovering {
		t.Fatalf("Mode after Enter = %v, want hovering", st.Mode)
	}

	moves := [][2]float64{{0.1, 0.2}, {-0.4, 0.3}, {0.45, -0.25}}
	for _, m := range moves {
		st = st.Move(m[0], m[1], tun.Sensitivity)
		st = st.Step(tun.Smoothing)
		if st.TargetYaw == 0 && st.TargetPitch == 0 {
			t.Fatalf("Move(%v, %v) produced zero targets", m[0], m[1])
		}
	}
	if got, want := st.TargetYaw, 0.45*tun.Sensitivity; got != want {
		t.Errorf("TargetYaw = %v, want %v", got, want)
	}
	if got, want := st.TargetPitch, 0.25*tun.Sensitivity; got != want {
		t.Errorf("TargetPitch = %v, want %v", got, want)
	}

	st = st.Leave(tun)
	if st.Mode != ModeIdle {
		t.Errorf("Mode after Leave = %v, want idle", st.Mode)
	}
	if st.TargetPitch != 0 {
		t.Errorf("TargetPitch after Leave = %v, want exactly 0", st.TargetPitch)
	}
	if st.TargetYaw != tun.IdleYaw {
		t.Errorf("TargetYaw after Leave = %v, want exactly %v", st.TargetYaw, tun.IdleYaw)
	}
	// 当前速度只会渐近收敛
	if st.VelYaw == tun.IdleYaw {
		t.Error("VelYaw snapped to idle default on leave, want asymptotic convergence")
	}
}

func TestMove_ClampsAndImplicitEnter(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(0, 0, tun).Move(3, -7, 0.06)

	if st.Mode != ModeHovering {
		t.Errorf("Move in idle: Mode = %v, want hovering", st.Mode)
	}
	if st.TargetYaw != 0.5*0.06 {
		t.Errorf("TargetYaw = %v, want %v (dx clamped to 0.5)", st.TargetYaw, 0.5*0.06)
	}
	if st.TargetPitch != 0.5*0.06 {
		t.Errorf("TargetPitch = %v, want %v (dy clamped to -0.5)", st.TargetPitch, 0.5*0.06)
	}
}

func TestPointerHandlersNeverTouchAngles(t *testing.T) {
	tun := DefaultTuning()
	st := NewOrientation(-8, 16, tun)
	pitch, yaw := st.Pitch, st.Yaw

	st = st.Enter().Move(0.3, 0.3, tun.Sensitivity).Leave(tun)
	if st.Pitch != pitch || st.Yaw != yaw {
		t.Errorf("angles changed by pointer handlers: (%v, %v) -> (%v, %v)", pitch, yaw, st.Pitch, st.Yaw)
	}
}

func TestSensitivityFor(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{"桌面", 1280, tun.Sensitivity},
		{"窄屏", 390, tun.NarrowSensitivity},
		{"临界值", 768, tun.Sensitivity},
		{"未知宽度", 0, tun.Sensitivity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tun.SensitivityFor(tt.width); got != tt.want {
				t.Errorf("SensitivityFor(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeIdle.String() != "idle" || ModeHovering.String() != "hovering" {
		t.Errorf("unexpected mode names: %q %q", ModeIdle, ModeHovering)
	}
}
