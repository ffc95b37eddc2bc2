package artifact

import "context"

// Writer renders a digest into its file artifacts.
type Writer interface {
	WriteAll(ctx context.Context, dir string, d Digest) error
}
