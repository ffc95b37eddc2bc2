package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tranminhduc4298/memo-digest/internal/artifact"
	"github.com/tranminhduc4298/memo-digest/internal/config"
	"github.com/tranminhduc4298/memo-digest/internal/logger"
	"github.com/tranminhduc4298/memo-digest/internal/processor"
	"github.com/tranminhduc4298/memo-digest/internal/watcher"
	"github.com/tranminhduc4298/memo-digest/pkg/executor"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "memo-digest",
	Short: "Turn voice-memo transcripts into chaptered, searchable digests",
	Long: `memo-digest post-processes voice-memo transcripts. Given a plain-text
transcript and an optional SRT caption track, it produces a chaptered
outline, a speaker-change map, an extractive summary, keyword tags,
and a checklist of action-item candidates.`,
}

var processCmd = &cobra.Command{
	Use:   "process <memo>",
	Short: "Process a single memo file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return newProcessor(cfg, log).Process(cmd.Context(), args[0])
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox directory and process memos as they arrive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return runWatch(cmd.Context(), cfg, log)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to config file")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, log, nil
}

func newProcessor(cfg *config.Config, log logger.Logger) processor.Processor {
	return processor.New(cfg, executor.New(), artifact.New(log), log)
}

func runWatch(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Voice Memo Digest Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	proc := newProcessor(cfg, log)

	w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
