package content

import (
	"testing"

	"github.com/decker502/skillsplanet/internal/orbit"
)

func lineTexts(line []Word) []string {
	out := make([]string, len(line))
	for i, w := range line {
		out[i] = w.Text()
	}
	return out
}

func TestWords_GluesPunctuation(t *testing.T) {
	segs := []Segment{
		{Text: "I use "},
		{Text: "React", Kind: orbit.KindHard},
		{Text: ", daily"},
	}
	words := Words(segs)
	if len(words) != 4 {
		t.Fatalf("Words = %d, want 4", len(words))
	}
	react := words[2]
	if react.Text() != "React," || len(react) != 2 {
		t.Fatalf("word 2 = %q (%d parts)", react.Text(), len(react))
	}
	if react[0].Kind != orbit.KindHard || react[1].Highlighted() {
		t.Errorf("kinds lost: %+v", react)
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) * 10 }
	segs := Highlight("Full-stack developer with React and Java/Spring.", "en")

	tests := []struct {
		name     string
		measure  func(string) float64
		maxWidth float64
		want     [][]string
	}{
		{"不换行", nil, 100, [][]string{{"Full-stack", "developer", "with", "React", "and", "Java/Spring."}}},
		{"按宽度换行", measure, 200, [][]string{
			{"Full-stack", "developer"},
			{"with", "React", "and"},
			{"Java/Spring."},
		}},
		{"超宽单词独占一行", measure, 50, [][]string{
			{"Full-stack"}, {"developer"}, {"with"}, {"React"}, {"and"}, {"Java/Spring."},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Wrap(segs, tt.measure, tt.maxWidth)
			if len(lines) != len(tt.want) {
				t.Fatalf("Wrap produced %d lines, want %d", len(lines), len(tt.want))
			}
			for i := range lines {
				got := lineTexts(lines[i])
				if len(got) != len(tt.want[i]) {
					t.Fatalf("line %d = %v, want %v", i, got, tt.want[i])
				}
				for j := range got {
					if got[j] != tt.want[i][j] {
						t.Errorf("line %d = %v, want %v", i, got, tt.want[i])
					}
				}
			}
		})
	}

	if Wrap(nil, measure, 100) != nil {
		t.Error("Wrap(nil) should be nil")
	}
}
