package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// transcribe invokes the configured speech-to-text command on an audio
// memo. The command is a black box: it is expected to write
// <output>.txt, and optionally <output>.srt with time-coded captions.
// A missing .srt is not an error, just the degraded mode downstream.
func (p *implProcessor) transcribe(ctx context.Context, runID, audioPath string) (string, string, func(), error) {
	if p.cfg.Transcriber.Binary == "" {
		return "", "", nil, fmt.Errorf("audio input %s requires transcriber.binary in config", filepath.Base(audioPath))
	}

	workDir := filepath.Join(p.cfg.Paths.Temp, "stt-"+runID)
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return "", "", nil, fmt.Errorf("create temp dir: %w", err)
	}
	cleanup := func() { p.cleanupTempDir(ctx, workDir) }

	outPrefix := filepath.Join(workDir, strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath)))

	args := make([]string, 0, len(p.cfg.Transcriber.Args))
	for _, a := range p.cfg.Transcriber.Args {
		a = strings.ReplaceAll(a, "{input}", audioPath)
		a = strings.ReplaceAll(a, "{output}", outPrefix)
		args = append(args, a)
	}

	p.logger.Info(ctx, "[%s] Transcribing audio: %s", runID, audioPath)

	if _, err := p.executor.ExecuteInDir(ctx, workDir, p.cfg.Transcriber.Binary, args...); err != nil {
		return "", "", cleanup, fmt.Errorf("run transcriber: %w", err)
	}

	txtPath := outPrefix + ".txt"
	if _, err := os.Stat(txtPath); err != nil {
		return "", "", cleanup, fmt.Errorf("transcriber produced no transcript: %w", err)
	}

	srtPath := outPrefix + ".srt"
	if _, err := os.Stat(srtPath); err != nil {
		srtPath = ""
	}

	p.logger.Info(ctx, "[%s] Transcription completed: %s", runID, txtPath)
	return txtPath, srtPath, cleanup, nil
}
