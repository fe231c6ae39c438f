package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/decker502/skillsplanet/pkg/embedded"
	_ "github.com/ftrvxmtrx/tga" // Register TGA decoder
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName 内置回退字体的缓存名
const DefaultFontName = "goregular"

// ResourceManager is responsible for loading and caching fonts and images.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is used from the ebiten game loop only.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image
	fontSourceCache map[string]*text.GoTextFaceSource
	fontFaceCache   map[string]*text.GoTextFace
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// LoadFont loads a TrueType/OpenType font at the given size and caches the face.
// path 为空或加载失败时回退到内置的 Go Regular 字体（记录警告），因此总能返回可用字体。
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	name := path
	if name == "" {
		name = DefaultFontName
	}
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if face, ok := rm.fontFaceCache[cacheKey]; ok {
		return face, nil
	}

	source, err := rm.loadFontSource(name)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v, using %s", err, DefaultFontName)
		source, err = rm.loadFontSource(DefaultFontName)
		if err != nil {
			return nil, err
		}
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// GetFont retrieves a previously loaded font face, or nil if not loaded.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	if path == "" {
		path = DefaultFontName
	}
	return rm.fontFaceCache[fmt.Sprintf("%s:%.1f", path, size)]
}

func (rm *ResourceManager) loadFontSource(name string) (*text.GoTextFaceSource, error) {
	if src, ok := rm.fontSourceCache[name]; ok {
		return src, nil
	}

	var data []byte
	if name == DefaultFontName {
		data = goregular.TTF
	} else {
		var err error
		data, err = embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", name, err)
		}
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
	}
	rm.fontSourceCache[name] = src
	return src, nil
}

// DecodeImage 解码图片文件（PNG / JPEG / TGA）
// 不依赖图形上下文，离线工具也可使用
func DecodeImage(path string) (image.Image, string, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image %s: %w", path, err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// LoadImage loads an image file and caches it as an ebiten.Image.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok {
		return img, nil
	}
	src, format, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	rm.imageCache[path] = img
	log.Printf("[ResourceManager] Loaded %s image %s (%dx%d)", format, path, src.Bounds().Dx(), src.Bounds().Dy())
	return img, nil
}
