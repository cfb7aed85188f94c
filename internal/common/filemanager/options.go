package filemanager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
)

const (
	DefaultMaxReadSize     = 50 * 1024 * 1024
	DefaultBufferSize      = 64 * 1024
	DefaultIOTimeout       = 30 * time.Second
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// FileInfo contains metadata about a file
type FileInfo struct {
	Path        string
	Name        string
	Size        int64
	IsDir       bool
	ModTime     time.Time
	Permissions fs.FileMode
}

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize    int64           // 0 means no limit
	BufferSize int             // 0 reads unbuffered
	Timeout    time.Duration   // 0 means no deadline
	Context    context.Context // nil means context.Background()
}

// FileWriteOptions configures file writing behavior
type FileWriteOptions struct {
	CreateDirs  bool
	Permissions fs.FileMode
	// Timeout bounds the whole write. 0 means no deadline. When it expires
	// the target keeps its previous content.
	Timeout time.Duration
	Context context.Context // nil means context.Background()
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize:    DefaultMaxReadSize,
		BufferSize: DefaultBufferSize,
		Timeout:    DefaultIOTimeout,
		Context:    context.Background(),
	}
}

// DefaultFileWriteOptions returns default file writing options
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{
		CreateDirs:  true,
		Permissions: DefaultFilePermissions,
		Timeout:     DefaultIOTimeout,
		Context:     context.Background(),
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, nil
}

// interruptedError wraps a context error, marking expired deadlines as ErrTimeout
func interruptedError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s cancelled: %w: %w", operation, errorwrapper.ErrTimeout, err)
	}
	return errorwrapper.WrapError(err, operation+" cancelled")
}
