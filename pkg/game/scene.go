package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口逻辑尺寸变化时收到通知
type Resizable interface {
	Resize(width, height int)
}

// Closer 是一个可选接口，场景被替换或程序退出时调用
// 用于拆除逐帧循环与指针监听器
type Closer interface {
	Close()
}

// Quitter 是一个可选接口，场景请求结束程序时返回 true
type Quitter interface {
	QuitRequested() bool
}
