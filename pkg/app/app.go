// Package app 提供技能星球应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/decker502/skillsplanet/pkg/game"
	"github.com/decker502/skillsplanet/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场配置文件，为空时使用 data/field.yaml
	ConfigPath string
	// WordsPath 词表文件，为空时使用 data/words.yaml
	WordsPath string
	// Language 初始语言，为空时使用配置中的默认语言
	Language string
	// Field 已加载的配置，非 nil 时忽略 ConfigPath
	Field *config.FieldConfig
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	cfg                      *config.FieldConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fieldCfg := cfg.Field
	if fieldCfg == nil {
		path := cfg.ConfigPath
		if path == "" {
			path = config.DefaultFieldConfigPath
		}
		var err error
		if fieldCfg, err = config.LoadFieldConfig(path); err != nil {
			return nil, fmt.Errorf("场配置加载失败: %w", err)
		}
		if err := fieldCfg.ApplyEnv(); err != nil {
			return nil, fmt.Errorf("场配置加载失败: %w", err)
		}
	}

	wordsPath := cfg.WordsPath
	if wordsPath == "" {
		wordsPath = config.DefaultWordsPath
	}
	words, err := config.LoadWords(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("词表加载失败: %w", err)
	}

	lang := cfg.Language
	if lang == "" {
		lang = fieldCfg.Window.Language
	}

	resourceManager := game.NewResourceManager()
	sceneManager := game.NewSceneManager()
	scene, err := scenes.NewSkillsScene(resourceManager, fieldCfg, words, lang)
	if err != nil {
		return nil, fmt.Errorf("场景初始化失败: %w", err)
	}
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Started with language %s", scene.Language())

	return &App{
		sceneManager: sceneManager,
		cfg:          fieldCfg,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)

	if q, ok := a.sceneManager.GetCurrentScene().(game.Quitter); ok && q.QuitRequested() {
		a.sceneManager.Close()
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放时的 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，变化时通知场景重新选择球半径
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.cfg.Window.Width, a.cfg.Window.Height
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时拆除场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
