package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/skillsplanet/internal/orbit"
	"github.com/decker502/skillsplanet/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultWordsPath 默认的词表路径（嵌入资源）
const DefaultWordsPath = "data/words.yaml"

// DefaultLanguage 默认语言
const DefaultLanguage = "fr"

// ErrNoWords 词表为空
var ErrNoWords = errors.New("config: word list is empty")

// WordEntry 词表中的一个词
// Text 按语言代码存放译文，缺失的语言回退到默认语言
type WordEntry struct {
	Kind string            `yaml:"kind"`
	Text map[string]string `yaml:"text"`
}

// WordList 对应 data/words.yaml
type WordList struct {
	Languages []string    `yaml:"languages"`
	Words     []WordEntry `yaml:"words"`
}

// LoadWords 从 YAML 文件加载词表
func LoadWords(path string) (*WordList, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	list, err := ParseWords(data)
	if err != nil {
		return nil, fmt.Errorf("invalid word list in %s: %w", path, err)
	}
	log.Printf("[Config] Loaded %d words from %s", len(list.Words), path)
	return list, nil
}

// ParseWords 解析并校验词表
func ParseWords(data []byte) (*WordList, error) {
	var list WordList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse word list YAML: %w", err)
	}
	if len(list.Words) == 0 {
		return nil, ErrNoWords
	}
	if len(list.Languages) == 0 {
		list.Languages = []string{DefaultLanguage}
	}
	for i, w := range list.Words {
		if _, err := orbit.ParseKind(w.Kind); err != nil {
			return nil, fmt.Errorf("word %d: %w", i, err)
		}
		if strings.TrimSpace(w.Text[DefaultLanguage]) == "" {
			return nil, fmt.Errorf("word %d: missing %q text", i, DefaultLanguage)
		}
	}
	return &list, nil
}

// HasLanguage 词表是否声明了该语言
func (l *WordList) HasLanguage(lang string) bool {
	for _, s := range l.Languages {
		if s == lang {
			return true
		}
	}
	return false
}

// Labels 生成指定语言的标签列表，顺序与词表一致
func (l *WordList) Labels(lang string) []orbit.Label {
	labels := make([]orbit.Label, 0, len(l.Words))
	for _, w := range l.Words {
		kind, _ := orbit.ParseKind(w.Kind)
		text := w.Text[lang]
		if text == "" {
			text = w.Text[DefaultLanguage]
		}
		labels = append(labels, orbit.Label{Text: text, Kind: kind})
	}
	return labels
}

// NextLanguage 返回声明顺序中的下一个语言（循环）
func (l *WordList) NextLanguage(lang string) string {
	for i, s := range l.Languages {
		if s == lang {
			return l.Languages[(i+1)%len(l.Languages)]
		}
	}
	return l.Languages[0]
}
