// Package analyze derives the text-side outputs of a memo digest:
// extractive summary sentences, action-item candidates, and keyword
// tags. Everything is heuristic and deterministic; no model is
// involved.
package analyze

import (
	"regexp"
	"strings"

	"github.com/tranminhduc4298/memo-digest/internal/textkit"
)

// ActionItem is a transcript clause matching an imperative/intent
// pattern. Due and Owner are left empty here; a downstream consumer of
// the checklist artifact fills them in from (due: ...) / (owner: ...)
// annotations.
type ActionItem struct {
	Description string
	Due         string
	Owner       string
}

// pattern is a named matcher. A non-match is a normal outcome, never an
// error; findAll simply returns nothing.
type pattern struct {
	name string
	re   *regexp.Regexp
}

func (p pattern) findAll(text string) []string {
	var out []string
	for _, m := range p.re.FindAllStringSubmatch(text, -1) {
		if s := strings.TrimSpace(m[1]); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// actionPattern matches a first-person or imperative subject followed
// by a modal/intent phrase; the captured clause runs to the next
// sentence-ending period.
var actionPattern = pattern{
	name: "action-intent",
	re:   regexp.MustCompile(`(?i)\b(?:we|i|let's|please|team)\s+((?:will|need to|should|must|can|to)\s+[^.]*)`),
}

// Summary returns the first k sentences of text verbatim, in order.
// Fewer than k sentences yields all of them; empty text yields none.
func Summary(text string, k int) []string {
	if k <= 0 {
		return nil
	}
	sentences := textkit.Sentences(text)
	if len(sentences) > k {
		sentences = sentences[:k]
	}
	return sentences
}

// ActionItems extracts action-item candidates from text in order of
// appearance.
func ActionItems(text string) []ActionItem {
	var items []ActionItem
	for _, desc := range actionPattern.findAll(text) {
		items = append(items, ActionItem{Description: desc})
	}
	return items
}

// Tags returns up to n keyword tags for text.
func Tags(text string, n int) []string {
	return textkit.Keywords(text, n)
}
