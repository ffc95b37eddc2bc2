package processor

import "context"

// Processor defines the interface for memo processing operations
type Processor interface {
	Process(ctx context.Context, memoPath string) error
}
