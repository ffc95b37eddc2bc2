package segment

import (
	"github.com/tranminhduc4298/memo-digest/internal/caption"
	"github.com/tranminhduc4298/memo-digest/internal/textkit"
)

// Speaker labels. The heuristic alternates between exactly these two;
// behavior with more than two actual speakers is undefined.
const (
	SpeakerA = "A"
	SpeakerB = "B"
)

// DefaultTurnRatio is the word-rate ratio above which (or below whose
// inverse) a pause is treated as a speaker change.
const DefaultTurnRatio = 1.6

// turnGapMin is the minimum silence, in seconds, before a pace
// discontinuity counts as a speaker change.
const turnGapMin = 1.2

// Turn is a speaker-labeled time interval.
type Turn struct {
	Start float64
	End   float64
	Label string
}

// turnAccum carries the open turn and the previous segment's timing and
// word count through the fold.
type turnAccum struct {
	label     string
	turnStart float64
	prevEnd   float64
	prevWords int
}

// Diarize assigns alternating speaker labels to caption segments based
// on silence gaps combined with word-rate discontinuities. This is a
// coarse rhythm/pace proxy, not voice identification; false positives
// and negatives are expected. The final open turn is always flushed.
func Diarize(segments []caption.Segment, ratioThreshold float64) []Turn {
	if len(segments) == 0 {
		return nil
	}
	if ratioThreshold <= 0 {
		ratioThreshold = DefaultTurnRatio
	}

	var turns []Turn
	acc := turnAccum{
		label:     SpeakerA,
		turnStart: segments[0].Start,
		prevEnd:   segments[0].End,
		prevWords: wordCount(segments[0].Text),
	}

	for _, seg := range segments[1:] {
		gap := seg.Start - acc.prevEnd
		words := wordCount(seg.Text)
		ratio := float64(words) / float64(acc.prevWords)

		if gap > turnGapMin && (ratio > ratioThreshold || ratio < 1/ratioThreshold) {
			turns = append(turns, Turn{Start: acc.turnStart, End: acc.prevEnd, Label: acc.label})
			acc.label = flip(acc.label)
			acc.turnStart = seg.Start
		}

		acc.prevEnd = seg.End
		acc.prevWords = words
	}

	turns = append(turns, Turn{Start: acc.turnStart, End: acc.prevEnd, Label: acc.label})

	return turns
}

func flip(label string) string {
	if label == SpeakerA {
		return SpeakerB
	}
	return SpeakerA
}

func wordCount(text string) int {
	n := len(textkit.Words(text))
	if n < 1 {
		return 1
	}
	return n
}
