//go:build !mobile

// Package mobile 为 ebitenmobile bind 提供入口
//
// 桌面构建只编译本文件；真正的绑定在 mobile.go / embed.go，需要 -tags mobile。
package mobile

// Dummy 让 go vet ./... 在桌面构建下也能看到这个包
func Dummy() {}
