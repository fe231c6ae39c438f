package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64

	closed  int
	resizes [][2]int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Resize(w, h int) {
	m.resizes = append(m.resizes, [2]int{w, h})
}

func (m *MockScene) Close() {
	m.closed++
}

// plainScene 不实现任何可选接口
type plainScene struct{}

func (plainScene) Update(float64) {}
func (plainScene) Draw(*ebiten.Image) {}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // 没有场景时不应 panic

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %.3f", mockScene.deltaTime)
	}
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1) // 切换到同一场景不拆除
	if scene1.closed != 0 {
		t.Errorf("scene1 closed %d times before switching away", scene1.closed)
	}

	sm.SwitchTo(scene2)
	if scene1.closed != 1 {
		t.Errorf("scene1 closed %d times, want 1", scene1.closed)
	}
	if sm.GetCurrentScene() != scene2 {
		t.Error("current scene is not scene2")
	}

	sm.Close()
	if scene2.closed != 1 || sm.GetCurrentScene() != nil {
		t.Errorf("Close: scene2.closed = %d, current = %v", scene2.closed, sm.GetCurrentScene())
	}
}

func TestSceneManagerResize(t *testing.T) {
	sm := NewSceneManager()
	sm.SwitchTo(plainScene{})
	sm.Resize(1280, 800) // 未实现 Resizable 时只记录尺寸

	scene := &MockScene{}
	sm.SwitchTo(scene)
	if len(scene.resizes) != 1 || scene.resizes[0] != [2]int{1280, 800} {
		t.Fatalf("new scene resizes = %v, want [[1280 800]]", scene.resizes)
	}

	sm.Resize(1280, 800)
	if len(scene.resizes) != 1 {
		t.Error("unchanged size notified the scene again")
	}
	sm.Resize(390, 844)
	if len(scene.resizes) != 2 || scene.resizes[1] != [2]int{390, 844} {
		t.Errorf("resizes = %v", scene.resizes)
	}
}
