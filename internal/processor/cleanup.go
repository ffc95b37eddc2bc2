package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed memo (and its sibling caption track,
// if any) out of the inbox so it is not picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, memoPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(memoPath))
	p.logger.Info(ctx, "Archiving memo: %s -> %s", memoPath, destPath)

	if err := os.Rename(memoPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	if srtPath := siblingCaptionPath(memoPath); srtPath != "" {
		srtDest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(srtPath))
		if err := os.Rename(srtPath, srtDest); err != nil {
			p.logger.Warn(ctx, "Failed to archive caption track %s: %v", srtPath, err)
		}
	}

	return nil
}

// cleanupTempDir removes a transcriber working directory, logs warning if fails
func (p *implProcessor) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}

// copyFile copies a file from src to dst
func (p *implProcessor) copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
