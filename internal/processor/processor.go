package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tranminhduc4298/memo-digest/internal/analyze"
	"github.com/tranminhduc4298/memo-digest/internal/artifact"
	"github.com/tranminhduc4298/memo-digest/internal/caption"
	"github.com/tranminhduc4298/memo-digest/internal/segment"
)

// Process runs the full digest pipeline for one memo: resolve the
// transcript (invoking the external transcriber for audio inputs), run
// the analysis engine, write the artifact set, and archive the source.
func (p *implProcessor) Process(ctx context.Context, memoPath string) error {
	startTime := time.Now()
	runID := uuid.NewString()[:8]
	memoName := strings.TrimSuffix(filepath.Base(memoPath), filepath.Ext(memoPath))

	p.logger.Info(ctx, "[%s] Starting memo processing: %s", runID, memoPath)

	transcriptPath := memoPath
	captionPath := siblingCaptionPath(memoPath)
	fromAudio := isAudioFile(memoPath)

	if fromAudio {
		txt, srt, cleanup, err := p.transcribe(ctx, runID, memoPath)
		if cleanup != nil {
			defer cleanup()
		}
		if err != nil {
			return fmt.Errorf("transcribe: %w", err)
		}
		transcriptPath, captionPath = txt, srt
	}

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	text := string(data)

	var segments []caption.Segment
	if captionPath != "" {
		segments, err = caption.ParseFile(captionPath)
		if err != nil {
			// Degrade rather than fail: treat an unreadable track as absent
			p.logger.Warn(ctx, "[%s] Failed to read caption track %s: %v", runID, captionPath, err)
			segments = nil
		}
	}
	if len(segments) == 0 {
		p.logger.Info(ctx, "[%s] No usable caption track; chaptering and diarization skipped", runID)
	}

	a := p.cfg.Analysis
	digest := artifact.Digest{
		Chapters:    segment.BuildChapters(segments, a.GapThreshold, a.MinChapterLength, a.ChapterFlushFloor),
		Turns:       segment.Diarize(segments, a.TurnRatio),
		Summary:     analyze.Summary(text, a.SummarySentences),
		Highlights:  analyze.Summary(text, a.HighlightSentences),
		ActionItems: analyze.ActionItems(text),
		Tags:        analyze.Tags(text, a.KeywordCount),
		HasCaptions: len(segments) > 0,
	}

	outDir := filepath.Join(p.cfg.Paths.Output, memoName)
	if err := p.writer.WriteAll(ctx, outDir, digest); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	// Keep a copy of transcriber output next to the artifacts before the
	// temp dir goes away
	if fromAudio {
		if err := p.copyFile(transcriptPath, filepath.Join(outDir, "transcript.txt")); err != nil {
			p.logger.Warn(ctx, "[%s] Failed to copy transcript to output: %v", runID, err)
		}
		if captionPath != "" {
			if err := p.copyFile(captionPath, filepath.Join(outDir, "captions.srt")); err != nil {
				p.logger.Warn(ctx, "[%s] Failed to copy caption track to output: %v", runID, err)
			}
		}
	}

	if err := p.moveToArchived(ctx, memoPath); err != nil {
		p.logger.Warn(ctx, "[%s] Failed to move memo to archived folder: %v", runID, err)
	}

	p.logger.Info(ctx, "[%s] Processing completed in %s: %s", runID, time.Since(startTime), outDir)
	return nil
}

// siblingCaptionPath returns the .srt file next to a transcript, or ""
// when there is none. Absence is the expected degraded mode.
func siblingCaptionPath(memoPath string) string {
	srtPath := strings.TrimSuffix(memoPath, filepath.Ext(memoPath)) + ".srt"
	if _, err := os.Stat(srtPath); err != nil {
		return ""
	}
	return srtPath
}

func isAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".mp3", ".m4a", ".ogg", ".flac":
		return true
	}
	return false
}
