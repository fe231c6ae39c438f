// Package main 离线渲染技能星球的一帧
//
// 使用手动调度器确定性地推进标签场 N 帧，然后把最后一帧渲染为图片。
// 不需要窗口或显卡，适合生成预览图与回归对比。
//
// Usage:
//
//	go run ./cmd/orbit-snapshot [flags]
//
// Flags:
//
//	-config <path>       场配置文件（默认 data/field.yaml）
//	-words <path>        词表文件（默认 data/words.yaml）
//	-lang <code>         语言（默认取配置）
//	-frames <n>          推进的帧数（默认 120）
//	-size <WxH>          输出尺寸（默认 800x600）
//	-supersample <n>     超采样倍数 1-4（默认 2）
//	-hover <x,y>         模拟指针停留位置（可选）
//	-background <path>   背景图片 png / jpeg / tga（可选）
//	-out <path>          输出文件，.webp 或 .png（默认 skills-planet.webp）
//	-dump <path>         把最后一帧的投影结果写为 YAML（可选）
//	-verbose             输出详细日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	configPath := flag.String("config", "data/field.yaml", "Field config YAML file")
	wordsPath := flag.String("words", "data/words.yaml", "Word list YAML file")
	lang := flag.String("lang", "", "Label language (default: config window.language)")
	frames := flag.Int("frames", 120, "Number of frames to advance before rendering")
	size := flag.String("size", "800x600", "Output size WxH")
	supersample := flag.Int("supersample", 2, "Supersampling factor 1-4")
	hover := flag.String("hover", "", "Simulated pointer position x,y")
	background := flag.String("background", "", "Background image (png, jpeg, tga)")
	out := flag.String("out", "skills-planet.webp", "Output image (.webp or .png)")
	dump := flag.String("dump", "", "Write the projected frame as YAML")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	} else {
		log.SetOutput(io.Discard)
	}

	w, h, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	req := Request{
		ConfigPath:  *configPath,
		WordsPath:   *wordsPath,
		Language:    *lang,
		Frames:      *frames,
		Width:       w,
		Height:      h,
		Supersample: *supersample,
		Background:  *background,
	}
	if *hover != "" {
		x, y, err := parsePoint(*hover)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		req.Hover = &[2]float64{x, y}
	}

	snap, err := Take(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeImage(*out, snap.Image); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d labels, %d frames)\n", *out, w, h, len(snap.Labels), snap.Frames)

	if *dump != "" {
		if err := writeDump(*dump, snap); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *dump)
	}
}
