// Package content 提供简介文字的关键词高亮
package content

import (
	"regexp"
	"strings"

	"github.com/decker502/skillsplanet/internal/orbit"
)

// Segment 一段连续文字
// Kind 为空表示普通文字，否则为命中的关键词类别
type Segment struct {
	Text string
	Kind orbit.Kind
}

// Highlighted 是否为高亮片段
func (s Segment) Highlighted() bool { return s.Kind != "" }

type token struct {
	re   *regexp.Regexp
	kind orbit.Kind
}

// 两种语言共享的技术关键词
var commonTokens = []token{
	{regexp.MustCompile(`(?i)\bfull[-\s]?stack\b`), orbit.KindHard},
	{regexp.MustCompile(`(?i)\bfront[-\s]?end\b`), orbit.KindHard},
	{regexp.MustCompile(`\bAngular\b`), orbit.KindHard},
	{regexp.MustCompile(`\bReact(?:\.?js)?\b`), orbit.KindHard},
	{regexp.MustCompile(`\bVue(?:\.?js)?\b`), orbit.KindHard},
	{regexp.MustCompile(`(?i)\bNestJS\b`), orbit.KindHard},
	{regexp.MustCompile(`(?i)\bJava/?Spring\b`), orbit.KindHard},
	{regexp.MustCompile(`\bJava\b`), orbit.KindHard},
	{regexp.MustCompile(`(?i)\bSpring\s?Boot\b`), orbit.KindHard},
	{regexp.MustCompile(`(?i)\bleadership\b`), orbit.KindSoft},
}

var tokensByLang = map[string][]token{
	"en": append(append([]token(nil), commonTokens...),
		token{regexp.MustCompile(`(?i)\bteam\s?work\b`), orbit.KindSoft},
		token{regexp.MustCompile(`(?i)\bproject management\b`), orbit.KindSoft},
		token{regexp.MustCompile(`(?i)\baccessible\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)\bscalable\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)\brobust\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)\belegant\b`), orbit.KindTrait},
	),
	"fr": append(append([]token(nil), commonTokens...),
		token{regexp.MustCompile(`(?i)\btravail d['’]équipe`), orbit.KindSoft},
		token{regexp.MustCompile(`(?i)\bgestion de projet\b`), orbit.KindSoft},
		token{regexp.MustCompile(`(?i)\baccessibles?\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)(?:^|[^\pL])(évolutives?)\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)\brobustes?\b`), orbit.KindTrait},
		token{regexp.MustCompile(`(?i)(?:^|[^\pL])(élégantes?|élegantes?)\b`), orbit.KindTrait},
	),
}

// Languages 返回支持高亮的语言
func Languages() []string {
	return []string{"fr", "en"}
}

// Highlight 把文字切分为普通片段与关键词片段
//
// 每一步在剩余文字中寻找最靠左的命中；多个关键词在同一位置命中时，
// 表中靠前的优先。未知语言按法语处理，lang 只取前两个字符（"en-US" → "en"）。
// 所有片段按顺序拼接后等于原文。
//
// 关键词总是在完整文字上匹配，\b 与 ^ 看到的是真实的前一个字符，
// 不会因为上一个命中在词中间结束而在词中间命中。
func Highlight(text, lang string) []Segment {
	tokens := tokensFor(lang)
	hits := make([][]span, len(tokens))
	for i, tok := range tokens {
		hits[i] = findAll(tok.re, text)
	}

	var segs []Segment
	pos := 0
	for pos < len(text) {
		start, end := -1, -1
		var kind orbit.Kind
		for i, tok := range tokens {
			for len(hits[i]) > 0 && hits[i][0].start < pos {
				hits[i] = hits[i][1:]
			}
			if len(hits[i]) == 0 {
				continue
			}
			if h := hits[i][0]; start < 0 || h.start < start {
				start, end, kind = h.start, h.end, tok.kind
			}
		}
		if start < 0 {
			segs = append(segs, Segment{Text: text[pos:]})
			break
		}
		if start > pos {
			segs = append(segs, Segment{Text: text[pos:start]})
		}
		segs = append(segs, Segment{Text: text[start:end], Kind: kind})
		pos = end
	}
	return segs
}

// span 命中的字节范围 [start, end)
type span struct {
	start, end int
}

// findAll 返回 re 在 text 中的全部非空命中
// 带捕获组的模式（用于非 ASCII 开头的词）以第一个捕获组为命中范围
func findAll(re *regexp.Regexp, text string) []span {
	var out []span
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		s, e := loc[0], loc[1]
		if len(loc) >= 4 && loc[2] >= 0 {
			s, e = loc[2], loc[3]
		}
		if e > s {
			out = append(out, span{s, e})
		}
	}
	return out
}

func tokensFor(lang string) []token {
	lang = strings.ToLower(lang)
	if len(lang) > 2 {
		lang = lang[:2]
	}
	if toks, ok := tokensByLang[lang]; ok {
		return toks
	}
	return tokensByLang["fr"]
}

// Plain 拼接所有片段的文字
func Plain(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}
