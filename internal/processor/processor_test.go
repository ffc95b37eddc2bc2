package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tranminhduc4298/memo-digest/internal/artifact"
	"github.com/tranminhduc4298/memo-digest/internal/config"
	"github.com/tranminhduc4298/memo-digest/internal/logger"
	"github.com/tranminhduc4298/memo-digest/pkg/executor"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Inbox:    filepath.Join(root, "inbox"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
			Temp:     filepath.Join(root, "temp"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func testProcessor(cfg *config.Config) Processor {
	log := logger.New("error", "json")
	return New(cfg, executor.New(), artifact.New(log), log)
}

func TestProcessTextMemoWithCaptions(t *testing.T) {
	cfg := testConfig(t)

	memoPath := filepath.Join(cfg.Paths.Inbox, "standup.txt")
	transcript := "We will review the budget. I need to send the report. Thanks everyone."
	if err := os.WriteFile(memoPath, []byte(transcript), 0644); err != nil {
		t.Fatal(err)
	}

	track := `1
00:00:00,000 --> 00:00:05,000
hello there

2
00:00:20,000 --> 00:00:25,000
goodbye now
`
	if err := os.WriteFile(filepath.Join(cfg.Paths.Inbox, "standup.srt"), []byte(track), 0644); err != nil {
		t.Fatal(err)
	}

	if err := testProcessor(cfg).Process(context.Background(), memoPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	outDir := filepath.Join(cfg.Paths.Output, "standup")

	outline, err := os.ReadFile(filepath.Join(outDir, artifact.OutlineFile))
	if err != nil {
		t.Fatalf("read outline: %v", err)
	}
	// Gap 15s exceeds the default 7s threshold but the min-length guard
	// holds the two blocks in a single 0-25s chapter
	if !strings.Contains(string(outline), "## 00:00 – 00:25") {
		t.Errorf("outline:\n%s", outline)
	}

	checklist, err := os.ReadFile(filepath.Join(outDir, artifact.ChecklistFile))
	if err != nil {
		t.Fatalf("read checklist: %v", err)
	}
	for _, want := range []string{"- [ ] will review the budget", "- [ ] need to send the report"} {
		if !strings.Contains(string(checklist), want) {
			t.Errorf("checklist missing %q:\n%s", want, checklist)
		}
	}

	summary, err := os.ReadFile(filepath.Join(outDir, artifact.SummaryFile))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(summary), "- Thanks everyone.") {
		t.Errorf("summary should carry all three sentences:\n%s", summary)
	}

	// Same pace on both sides of the gap: one speaker turn
	speakers, err := os.ReadFile(filepath.Join(outDir, artifact.SpeakersFile))
	if err != nil {
		t.Fatalf("read speaker track: %v", err)
	}
	if !strings.Contains(string(speakers), "Speaker A") {
		t.Errorf("speaker track:\n%s", speakers)
	}

	// Memo and its caption track leave the inbox
	if _, err := os.Stat(memoPath); !os.IsNotExist(err) {
		t.Errorf("memo should be archived out of the inbox")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "standup.srt")); err != nil {
		t.Errorf("caption track should be archived: %v", err)
	}
}

func TestProcessTextMemoWithoutCaptions(t *testing.T) {
	cfg := testConfig(t)

	memoPath := filepath.Join(cfg.Paths.Inbox, "note.txt")
	if err := os.WriteFile(memoPath, []byte("Remember the milk."), 0644); err != nil {
		t.Fatal(err)
	}

	if err := testProcessor(cfg).Process(context.Background(), memoPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	outDir := filepath.Join(cfg.Paths.Output, "note")

	outline, err := os.ReadFile(filepath.Join(outDir, artifact.OutlineFile))
	if err != nil {
		t.Fatalf("read outline: %v", err)
	}
	if !strings.Contains(string(outline), "Chaptering requires a time-coded caption track") {
		t.Errorf("outline missing degraded-mode notice:\n%s", outline)
	}

	if _, err := os.Stat(filepath.Join(outDir, artifact.SpeakersFile)); !os.IsNotExist(err) {
		t.Errorf("speaker track should not exist without captions")
	}
}

func TestProcessEmptyCaptionTrack(t *testing.T) {
	cfg := testConfig(t)

	memoPath := filepath.Join(cfg.Paths.Inbox, "note.txt")
	if err := os.WriteFile(memoPath, []byte("Remember the milk."), 0644); err != nil {
		t.Fatal(err)
	}
	// A supplied-but-empty track degrades the same way as a missing one
	if err := os.WriteFile(filepath.Join(cfg.Paths.Inbox, "note.srt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := testProcessor(cfg).Process(context.Background(), memoPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	outDir := filepath.Join(cfg.Paths.Output, "note")
	outline, err := os.ReadFile(filepath.Join(outDir, artifact.OutlineFile))
	if err != nil {
		t.Fatalf("read outline: %v", err)
	}
	if !strings.Contains(string(outline), "Chaptering requires a time-coded caption track") {
		t.Errorf("outline missing degraded-mode notice:\n%s", outline)
	}
	if _, err := os.Stat(filepath.Join(outDir, artifact.SpeakersFile)); !os.IsNotExist(err) {
		t.Errorf("speaker track should not exist for an empty caption track")
	}
}

func TestProcessEmptyTranscript(t *testing.T) {
	cfg := testConfig(t)

	memoPath := filepath.Join(cfg.Paths.Inbox, "empty.txt")
	if err := os.WriteFile(memoPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// Empty text degrades to empty outputs, not an error
	if err := testProcessor(cfg).Process(context.Background(), memoPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	tags, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "empty", artifact.TagsFile))
	if err != nil {
		t.Fatalf("read tags: %v", err)
	}
	if strings.TrimSpace(string(tags)) != "" {
		t.Errorf("tags = %q, want empty", tags)
	}
}

func TestProcessMissingTranscript(t *testing.T) {
	cfg := testConfig(t)

	err := testProcessor(cfg).Process(context.Background(), filepath.Join(cfg.Paths.Inbox, "ghost.txt"))
	if err == nil {
		t.Error("Process() should fail for a missing transcript")
	}
}

func TestProcessAudioWithoutTranscriber(t *testing.T) {
	cfg := testConfig(t)

	memoPath := filepath.Join(cfg.Paths.Inbox, "memo.wav")
	if err := os.WriteFile(memoPath, []byte("not really audio"), 0644); err != nil {
		t.Fatal(err)
	}

	err := testProcessor(cfg).Process(context.Background(), memoPath)
	if err == nil {
		t.Error("Process() should fail for audio input with no transcriber configured")
	}
}
