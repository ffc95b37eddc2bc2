package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tranminhduc4298/memo-digest/internal/analyze"
	"github.com/tranminhduc4298/memo-digest/internal/segment"
	"github.com/tranminhduc4298/memo-digest/internal/textkit"
)

// Digest bundles everything the engine derived from one memo.
type Digest struct {
	Chapters    []segment.Chapter
	Turns       []segment.Turn
	Summary     []string
	Highlights  []string
	ActionItems []analyze.ActionItem
	Tags        []string
	HasCaptions bool
}

// Artifact file names within a memo's output directory.
const (
	OutlineFile    = "outline.md"
	SummaryFile    = "summary.md"
	HighlightsFile = "highlights.md"
	ChecklistFile  = "checklist.md"
	TagsFile       = "tags.txt"
	SpeakersFile   = "speakers.srt"
)

// WriteAll renders every artifact into dir. Emission is best-effort: a
// failed artifact is logged and does not block the others; the joined
// error is returned after all writes were attempted.
func (w *implWriter) WriteAll(ctx context.Context, dir string, d Digest) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var errs []error
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			w.logger.Warn(ctx, "Failed to write %s: %v", path, err)
			errs = append(errs, fmt.Errorf("write %s: %w", name, err))
			return
		}
		w.logger.Debug(ctx, "Wrote artifact: %s", path)
	}

	write(OutlineFile, renderOutline(d))
	write(SummaryFile, renderBullets("Summary", d.Summary))
	write(HighlightsFile, renderBullets("Highlights", d.Highlights))
	write(ChecklistFile, renderChecklist(d.ActionItems))
	write(TagsFile, strings.Join(d.Tags, ", ")+"\n")

	// Diarization skipped entirely means no speaker track artifact
	if len(d.Turns) > 0 {
		write(SpeakersFile, renderSpeakerTrack(d.Turns))
	}

	return errors.Join(errs...)
}

func renderOutline(d Digest) string {
	var b strings.Builder
	b.WriteString("# Outline\n\n")

	if !d.HasCaptions {
		b.WriteString("Chaptering requires a time-coded caption track; none was supplied.\n")
		return b.String()
	}

	for _, ch := range d.Chapters {
		fmt.Fprintf(&b, "## %s – %s\n\n", formatClock(ch.Start), formatClock(ch.End))
		if excerpt := chapterExcerpt(ch.Text); excerpt != "" {
			b.WriteString(excerpt)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// chapterExcerpt keeps the first two sentences of a chapter's text.
func chapterExcerpt(text string) string {
	sentences := textkit.Sentences(text)
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return strings.Join(sentences, " ")
}

func renderBullets(title string, lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	for _, line := range lines {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String()
}

// renderChecklist emits one unchecked entry per action item. The line
// syntax is a contract with downstream consumers, which append
// (due: ...) / (owner: ...) annotations to the free-text portion.
func renderChecklist(items []analyze.ActionItem) string {
	var b strings.Builder
	b.WriteString("# Action Items\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- [ ] %s\n", item.Description)
	}
	return b.String()
}

func renderSpeakerTrack(turns []segment.Turn) string {
	var b strings.Builder
	for i, turn := range turns {
		fmt.Fprintf(&b, "%d\n%s --> %s\nSpeaker %s\n\n",
			i+1, formatSRTTime(turn.Start), formatSRTTime(turn.End), turn.Label)
	}
	return b.String()
}

// formatClock renders seconds as mm:ss, or h:mm:ss past an hour.
func formatClock(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// formatSRTTime renders seconds as HH:MM:SS,mmm.
func formatSRTTime(seconds float64) string {
	millis := int(seconds*1000 + 0.5)
	h := millis / 3600000
	m := (millis % 3600000) / 60000
	s := (millis % 60000) / 1000
	ms := millis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
