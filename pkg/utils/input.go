// Package utils 提供通用工具函数
package utils

import "github.com/hajimehoshi/ebiten/v2"

// PointerSample 一帧的指针采样
type PointerSample struct {
	X, Y int
	// Present 指针是否可用：有活动触摸，或鼠标位于窗口内
	Present bool
	// IsTouch 是否来自触摸
	IsTouch bool
}

// SamplePointer 获取当前帧的指针采样
// 优先使用第一个活动触摸；没有触摸时使用鼠标位置，
// 鼠标位于 [0, w)×[0, h) 之外时 Present 为 false
func SamplePointer(w, h int) PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Present: true, IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{X: x, Y: y, Present: PointInViewport(x, y, w, h)}
}

// PointInViewport 判断坐标是否在视口内
func PointInViewport(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}
