package main

import (
	"fmt"
	"path/filepath"

	"github.com/decker502/skillsplanet/pkg/config"
	"github.com/decker502/skillsplanet/pkg/game"
)

// requiredKeys 场景使用的字符串键
var requiredKeys = []string{
	"TITLE",
	"BIO",
	"LEGEND_HARD",
	"LEGEND_SOFT",
	"LEGEND_ACTIVITY",
	"LEGEND_TRAIT",
	"HINT",
}

// Report 校验结果
type Report struct {
	Words     int
	Languages []string
	Errors    []string
	Warnings  []string
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// checkData 校验 dir 下的 field.yaml、words.yaml 与 strings/*.txt
func checkData(dir string) Report {
	var r Report

	if _, err := config.LoadFieldConfig(filepath.Join(dir, "field.yaml")); err != nil {
		r.errorf("field.yaml: %v", err)
	}

	words, err := config.LoadWords(filepath.Join(dir, "words.yaml"))
	if err != nil {
		r.errorf("words.yaml: %v", err)
		return r
	}
	r.Words = len(words.Words)
	r.Languages = words.Languages

	for _, lang := range words.Languages {
		missing := 0
		for _, w := range words.Words {
			if w.Text[lang] == "" {
				missing++
			}
		}
		if missing > 0 && lang != config.DefaultLanguage {
			r.warnf("%s: %d words fall back to %s", lang, missing, config.DefaultLanguage)
		}

		path := filepath.Join(dir, "strings", fmt.Sprintf("strings_%s.txt", lang))
		s, err := game.NewStrings(path)
		if err != nil {
			r.errorf("%s: %v", lang, err)
			continue
		}
		for _, key := range requiredKeys {
			if !s.Has(key) {
				r.errorf("%s: missing [%s]", path, key)
			}
		}
	}
	return r
}
