// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的 data/ 目录。
//
// 未初始化、或路径不在 data/ 下、或嵌入文件系统中不存在该文件时，
// 回退到操作系统文件系统（命令行工具与测试使用磁盘上的文件）。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// Reset 清除初始化状态（测试使用）
func Reset() {
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// embeddedPath 判断路径是否应从嵌入文件系统读取
func embeddedPath(path string) (string, bool) {
	if !initialized {
		return "", false
	}
	p := normalize(path)
	if !strings.HasPrefix(p, "data/") {
		return "", false
	}
	return p, true
}

// ReadFile 读取文件内容
// 优先从嵌入的 data/ 读取，找不到时回退到磁盘
func ReadFile(path string) ([]byte, error) {
	if p, ok := embeddedPath(path); ok {
		data, err := fs.ReadFile(dataFS, p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read embedded %s: %w", p, err)
		}
	}
	return os.ReadFile(path)
}

// Exists 检查文件是否存在（嵌入或磁盘）
func Exists(path string) bool {
	if p, ok := embeddedPath(path); ok {
		if _, err := fs.Stat(dataFS, p); err == nil {
			return true
		}
	}
	_, err := os.Stat(path)
	return err == nil
}

// Glob 匹配文件
// 嵌入文件系统有匹配时返回嵌入结果，否则匹配磁盘
func Glob(pattern string) ([]string, error) {
	if p, ok := embeddedPath(pattern); ok {
		matches, err := fs.Glob(dataFS, p)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches, nil
		}
	}
	return filepath.Glob(pattern)
}
