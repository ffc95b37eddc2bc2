// Package textkit provides the tokenization primitives the analysis
// engine is built on: sentence splitting, word extraction, and
// frequency-ranked keyword selection. All functions are pure.
package textkit

import (
	"regexp"
	"sort"
	"strings"
)

// wordRe matches runs of letters, optionally containing an internal
// hyphen or apostrophe ("co-op", "isn't"). Digits and punctuation act
// as separators.
var wordRe = regexp.MustCompile(`[a-zA-Z]+(?:['-][a-zA-Z]+)*`)

// stopwords are excluded from keyword ranking. Tokens of length <= 2
// are filtered separately, so only longer function words appear here.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "this": {}, "with": {},
	"you": {}, "your": {}, "have": {}, "has": {}, "had": {}, "are": {},
	"was": {}, "were": {}, "will": {}, "would": {}, "can": {}, "could": {},
	"should": {}, "not": {}, "but": {}, "they": {}, "them": {}, "their": {},
	"from": {}, "what": {}, "when": {}, "where": {}, "which": {}, "who": {},
	"how": {}, "all": {}, "any": {}, "our": {}, "out": {}, "about": {},
	"into": {}, "then": {}, "than": {}, "there": {}, "here": {}, "also": {},
	"just": {}, "been": {}, "being": {}, "over": {}, "some": {}, "such": {},
	"only": {}, "very": {}, "its": {}, "does": {}, "did": {}, "doing": {},
	"going": {}, "get": {}, "got": {}, "like": {}, "know": {}, "yeah": {},
	"okay": {}, "think": {}, "well": {}, "really": {}, "gonna": {},
}

// Sentences splits text on sentence-ending punctuation (. ! ?) followed
// by whitespace or end of input. The terminator stays attached to its
// sentence; empty results are dropped.
func Sentences(text string) []string {
	var out []string
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 < len(text) && !isSpace(text[i+1]) {
			continue
		}
		if s := strings.TrimSpace(text[start : i+1]); s != "" {
			out = append(out, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}

	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Words extracts lower-cased word tokens from text in order of
// appearance.
func Words(text string) []string {
	matches := wordRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.ToLower(m))
	}
	return out
}

// Keywords returns up to n content words ranked by frequency. Stopwords
// and tokens of length <= 2 are excluded; ties are broken by first
// occurrence in the filtered token sequence.
func Keywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstIdx := make(map[string]int)
	var order []string

	idx := 0
	for _, w := range Words(text) {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			firstIdx[w] = idx
			order = append(order, w)
		}
		counts[w]++
		idx++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstIdx[order[i]] < firstIdx[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
