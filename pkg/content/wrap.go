package content

import (
	"strings"
	"unicode"
)

// Word 换行的最小单位：之间没有空白的相邻片段
// 例如 "React," 由高亮的 "React" 与普通的 "," 组成
type Word []Segment

// Text 返回单词的完整文字
func (w Word) Text() string {
	var b strings.Builder
	for _, s := range w {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Words 按空白把片段切分为单词，保留每一段的类别
func Words(segs []Segment) []Word {
	var words []Word
	var cur Word
	for _, s := range segs {
		text := s.Text
		for text != "" {
			i := strings.IndexFunc(text, unicode.IsSpace)
			switch {
			case i < 0:
				cur = append(cur, Segment{Text: text, Kind: s.Kind})
				text = ""
			case i > 0:
				cur = append(cur, Segment{Text: text[:i], Kind: s.Kind})
				text = text[i:]
			default:
				if len(cur) > 0 {
					words = append(words, cur)
					cur = nil
				}
				text = strings.TrimLeftFunc(text, unicode.IsSpace)
			}
		}
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// Wrap 把高亮后的文字按单词换行
//
// 同一行的单词之间以一个空格分隔。measure 返回文字宽度；
// measure 为 nil 或 maxWidth <= 0 时不换行，单个单词超宽时独占一行。
func Wrap(segs []Segment, measure func(string) float64, maxWidth float64) [][]Word {
	words := Words(segs)
	if len(words) == 0 {
		return nil
	}
	space := 0.0
	if measure != nil {
		space = measure(" ")
	}

	var lines [][]Word
	var line []Word
	width := 0.0
	for _, w := range words {
		ww := 0.0
		if measure != nil {
			ww = measure(w.Text())
		}
		if len(line) > 0 && maxWidth > 0 && width+space+ww > maxWidth {
			lines = append(lines, line)
			line, width = nil, 0
		}
		if len(line) > 0 {
			width += space
		}
		line = append(line, w)
		width += ww
	}
	return append(lines, line)
}
