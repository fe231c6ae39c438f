// Package main 在终端中运行技能星球
//
// 鼠标在终端内移动时球体随指针旋转，移出或失去焦点时恢复空闲自转。
//
// Usage:
//
//	go run ./cmd/orbit-term [flags]
//
// Flags:
//
//	-config <path>   场配置文件（默认 data/field.yaml）
//	-words <path>    词表文件（默认 data/words.yaml）
//	-lang <code>     语言（默认取配置）
//	-fps <n>         帧率（默认 60）
//	-log <path>      日志文件（默认不输出日志）
//
// Controls:
//
//	l        - 切换语言
//	q / Esc  - 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultFieldConfigPath, "Field config YAML file")
	wordsPath := flag.String("words", config.DefaultWordsPath, "Word list YAML file")
	lang := flag.String("lang", "", "Label language (default: config window.language)")
	fps := flag.Int("fps", 60, "Frames per second")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	// 屏幕占用终端，日志只能写到文件
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	if err := config.LoadEnvFile(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	cfg, err := config.LoadFieldConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	words, err := config.LoadWords(*wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *lang == "" {
		*lang = cfg.Window.Language
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	defer screen.Fini()

	host, err := newTermHost(screen, cfg, words, *lang)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer host.stop()

	run(host, *fps)
}

// run 主循环：事件与 tick 在同一个 goroutine 上处理
func run(h *termHost, fps int) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.tick()
		}
	}
}
