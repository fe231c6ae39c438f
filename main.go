// Skills Planet 桌面入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>    场配置文件（默认 data/field.yaml）
//	--words <path>     词表文件（默认 data/words.yaml）
//	--lang <code>      初始语言 fr / en
//	--env <path>       .env 文件（默认 .env，不存在时忽略）
//	--fullscreen       全屏启动
//	--verbose          输出详细日志
//
// Controls:
//
//	L    - 切换语言
//	F11  - 切换全屏
//	Esc  - 退出
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/decker502/skillsplanet/pkg/app"
	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/decker502/skillsplanet/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag     = flag.String("config", config.DefaultFieldConfigPath, "Field config YAML file")
	wordsFlag      = flag.String("words", config.DefaultWordsPath, "Word list YAML file")
	langFlag       = flag.String("lang", "", "Initial language (fr, en)")
	envFlag        = flag.String("env", ".env", "Environment file with SKILLS_PLANET_* overrides")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	if err := config.LoadEnvFile(*envFlag); err != nil {
		log.Printf("[Main] Warning: failed to load %s: %v", *envFlag, err)
	}

	cfg, err := config.LoadFieldConfig(*configFlag)
	if err != nil {
		failf("配置加载失败: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		failf("环境变量覆盖无效: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		WordsPath: *wordsFlag,
		Language:  *langFlag,
		Field:     cfg,
	})
	if err != nil {
		failf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreenFlag)

	if err := ebiten.RunGame(gameApp); err != nil {
		failf("运行失败: %v", err)
	}
	// 窗口直接关闭时也拆除场景
	gameApp.GetSceneManager().Close()
}

// failf 输出错误并退出（日志可能已被静默，直接写 stderr）
func failf(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
