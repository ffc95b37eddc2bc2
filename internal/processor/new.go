package processor

import (
	"github.com/tranminhduc4298/memo-digest/internal/artifact"
	"github.com/tranminhduc4298/memo-digest/internal/config"
	"github.com/tranminhduc4298/memo-digest/internal/logger"
	"github.com/tranminhduc4298/memo-digest/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	writer   artifact.Writer
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, w artifact.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		writer:   w,
		logger:   log,
	}
}
