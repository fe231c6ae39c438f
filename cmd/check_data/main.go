// Package main 校验 data/ 目录下的配置与文本
//
// 检查项：
//   - field.yaml 可以解析且通过校验
//   - words.yaml 可以解析，声明的每种语言都有对应的字符串文件
//   - 每个字符串文件包含界面需要的全部键
//   - 缺少译文的词（回退到法语）只提示不报错
//
// Usage:
//
//	go run ./cmd/check_data [-data data]
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dir := flag.String("data", "data", "Data directory")
	flag.Parse()

	report := checkData(*dir)
	for _, w := range report.Warnings {
		fmt.Printf("⚠️  %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("❌ %s\n", e)
	}
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
	fmt.Printf("✅ %d words, languages %v, all strings present\n", report.Words, report.Languages)
}
