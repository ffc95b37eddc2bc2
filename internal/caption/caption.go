// Package caption parses SRT-style time-coded caption tracks into
// ordered segments with fractional-second timestamps.
package caption

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Segment is one parsed caption block. Start and End are seconds from
// the beginning of the recording; Start < End always holds.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Regex to match timing lines like "00:01:02,350 --> 00:01:05,000"
var timingRe = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// Parse converts an SRT document into segments ordered by start time.
// A block needs at least an index line and a timing line to be emitted;
// blocks with malformed timing (or start >= end) are skipped without
// failing the parse. Multi-line cue text is joined with single spaces.
func Parse(document string) []Segment {
	var segments []Segment

	scanner := bufio.NewScanner(strings.NewReader(document))
	var block []string

	flush := func() {
		if seg, ok := parseBlock(block); ok {
			segments = append(segments, seg)
		}
		block = block[:0]
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start < segments[j].Start
	})

	return segments
}

// ParseFile reads and parses an SRT file.
func ParseFile(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read caption file: %w", err)
	}
	return Parse(string(data)), nil
}

func parseBlock(lines []string) (Segment, bool) {
	// Need an index line and a timing line at minimum
	if len(lines) < 2 {
		return Segment{}, false
	}

	m := timingRe.FindStringSubmatch(lines[1])
	if m == nil {
		return Segment{}, false
	}

	start := toSeconds(m[1], m[2], m[3], m[4])
	end := toSeconds(m[5], m[6], m[7], m[8])
	if start >= end {
		return Segment{}, false
	}

	return Segment{
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], " "),
	}, true
}

func toSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}
