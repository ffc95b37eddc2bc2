// Package segment groups parsed caption segments into chapters and
// speaker turns using timing heuristics. Silence gaps are the only
// observable proxy for topic boundaries without semantic understanding,
// so both algorithms are deliberately simple and deterministic.
package segment

import (
	"strings"

	"github.com/tranminhduc4298/memo-digest/internal/caption"
)

// DefaultFlushFloor is the minimum span for the trailing chapter to be
// emitted at all, in seconds.
const DefaultFlushFloor = 1.0

// Chapter is a contiguous run of caption segments separated from its
// neighbors by a silence gap.
type Chapter struct {
	Start float64
	End   float64
	Text  string
}

// chapterAccum carries the pending chapter through the fold.
type chapterAccum struct {
	start float64
	end   float64
	parts []string
}

func (a *chapterAccum) chapter() Chapter {
	return Chapter{Start: a.start, End: a.end, Text: strings.Join(a.parts, " ")}
}

// BuildChapters folds segments into chapters. A chapter closes when the
// silence before the next segment exceeds gapThreshold and the pending
// chapter already spans at least minLength seconds. The final pending
// chapter is emitted only if it spans at least flushFloor seconds
// (DefaultFlushFloor when <= 0), which keeps degenerate trailing
// chapters out of the outline.
func BuildChapters(segments []caption.Segment, gapThreshold, minLength, flushFloor float64) []Chapter {
	if len(segments) == 0 {
		return nil
	}
	if flushFloor <= 0 {
		flushFloor = DefaultFlushFloor
	}

	var chapters []Chapter
	acc := chapterAccum{
		start: segments[0].Start,
		end:   segments[0].End,
		parts: []string{segments[0].Text},
	}

	for _, seg := range segments[1:] {
		silence := seg.Start - acc.end
		if silence > gapThreshold && acc.end-acc.start >= minLength {
			chapters = append(chapters, acc.chapter())
			acc = chapterAccum{start: seg.Start, end: seg.End, parts: []string{seg.Text}}
			continue
		}
		acc.parts = append(acc.parts, seg.Text)
		acc.end = seg.End
	}

	if acc.end-acc.start >= flushFloor {
		chapters = append(chapters, acc.chapter())
	}

	return chapters
}
