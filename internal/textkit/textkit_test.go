package textkit

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"simple", "A. B! C?", []string{"A.", "B!", "C?"}},
		{"empty", "", nil},
		{"whitespace only", "   \n  ", nil},
		{"no terminator", "hello there", []string{"hello there"}},
		{"internal period not split", "Version 3.5 shipped today. Next up is 4.0", []string{"Version 3.5 shipped today.", "Next up is 4.0"}},
		{"newline separated", "First point.\nSecond point.", []string{"First point.", "Second point."}},
		{"trailing whitespace", "Done. ", []string{"Done."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"hyphen and apostrophe kept", "Co-op isn't easy.", []string{"co-op", "isn't", "easy"}},
		{"digits separate", "room42is ready", []string{"room", "is", "ready"}},
		{"lowercased", "HELLO World", []string{"hello", "world"}},
		{"empty", "", nil},
		{"punctuation only", "?!,. --", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Words(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	text := "Budget review budget planning. The budget meeting covers planning and review."

	got := Keywords(text, 3)
	// budget x3, review x2, planning x2; review appears before planning
	want := []string{"budget", "review", "planning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keywords() = %v, want %v", got, want)
	}
}

func TestKeywordsFilters(t *testing.T) {
	// Stopwords and short tokens never appear
	got := Keywords("the and to of it is we go", 10)
	if len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestKeywordsTruncation(t *testing.T) {
	got := Keywords("alpha beta gamma delta", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
	// All counts equal: first-occurrence order wins
	if got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("got %v, want [alpha beta]", got)
	}
}

func TestKeywordsZeroN(t *testing.T) {
	if got := Keywords("alpha beta", 0); got != nil {
		t.Errorf("Keywords(_, 0) = %v, want nil", got)
	}
}
