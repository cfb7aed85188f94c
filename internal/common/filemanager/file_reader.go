package filemanager

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileReader handles file reading operations
type FileReader struct {
	logger zerolog.Logger
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	return &FileReader{
		logger: logger.With().Str("component", "FileReader").Logger(),
	}
}

// ReadFile reads the whole file, up to opts.MaxSize bytes
func (fr *FileReader) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	ctx, cancel := withTimeout(opts.Context, opts.Timeout)
	if cancel != nil {
		defer cancel()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fr.logger.Error().Err(err).Str("path", path).Msg("Failed to close file")
		}
	}()

	var reader io.Reader = file
	if opts.BufferSize > 0 {
		reader = bufio.NewReaderSize(file, opts.BufferSize)
	}

	return fr.performFileRead(ctx, path, reader, opts.MaxSize)
}

func (fr *FileReader) performFileRead(ctx context.Context, path string, reader io.Reader, maxSize int64) ([]byte, error) {
	type readResult struct {
		content []byte
		err     error
	}

	done := make(chan readResult, 1)
	go func() {
		if maxSize > 0 {
			reader = io.LimitReader(reader, maxSize)
		}
		content, err := io.ReadAll(reader)
		done <- readResult{content: content, err: err}
	}()

	select {
	case <-ctx.Done():
		fr.logger.Warn().Str("path", path).Msg("File read cancelled due to context timeout")
		return nil, interruptedError(ctx.Err(), "file read operation")
	case res := <-done:
		if res.err != nil {
			return nil, errorwrapper.WrapError(res.err, fmt.Sprintf("failed to read file content: %s", path))
		}
		return res.content, nil
	}
}
