package game

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/skillsplanet/pkg/embedded"
)

// Strings 文本字符串表
// 从 data/strings/strings_<lang>.txt 加载界面文本，通过键查询
type Strings struct {
	lang    string
	strings map[string]string // 键 -> 文本映射
}

// StringsPath 返回指定语言的字符串文件路径
func StringsPath(lang string) string {
	return fmt.Sprintf("data/strings/strings_%s.txt", lang)
}

// LoadStrings 加载指定语言的字符串表
//
// 文件格式：
//
//	[KEY]
//	文本内容
//
// 文件不存在时返回空表并记录警告，查询时回退为 "[KEY]"
func LoadStrings(lang string) *Strings {
	path := StringsPath(lang)
	s, err := NewStrings(path)
	if err != nil {
		log.Printf("[Strings] Warning: %v, captions fall back to keys", err)
		return &Strings{lang: lang, strings: map[string]string{}}
	}
	s.lang = lang
	return s
}

// NewStrings 从文件加载字符串表
func NewStrings(filePath string) (*Strings, error) {
	data, err := embedded.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open strings file %s: %w", filePath, err)
	}

	s := &Strings{strings: make(map[string]string)}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var currentKey string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		// 以 # 开头的行为注释
		if currentKey == "" && strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentKey = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if currentKey != "" {
			s.strings[currentKey] = line
			currentKey = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read strings file %s: %w", filePath, err)
	}
	return s, nil
}

// Lang 返回字符串表的语言
func (s *Strings) Lang() string { return s.lang }

// Len 返回已加载的键数量
func (s *Strings) Len() int { return len(s.strings) }

// GetString 根据键获取文本
// 键不存在时返回带方括号的键名（调试用）
func (s *Strings) GetString(key string) string {
	if text, ok := s.strings[key]; ok {
		return text
	}
	return "[" + key + "]"
}

// Has 字符串表是否包含该键
func (s *Strings) Has(key string) bool {
	_, ok := s.strings[key]
	return ok
}
