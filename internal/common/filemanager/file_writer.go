package filemanager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/sidediff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileWriter handles file writing operations
type FileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		logger: logger.With().Str("component", "FileWriter").Logger(),
	}
}

// stagedWrite is the outcome of writing data next to its target
type stagedWrite struct {
	tempPath string
	err      error
}

// WriteFile writes data to a file, giving up when the context or timeout
// in opts expires first. Data is staged in a temporary file and only renamed
// over path when the write finished in time, so an expired write never
// touches the target.
func (fw *FileWriter) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	ctx, cancel := withTimeout(opts.Context, opts.Timeout)
	if cancel != nil {
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return interruptedError(err, "file write operation")
	}

	// Unbuffered: exactly one side of the handoff decides the staged file's fate.
	staged := make(chan stagedWrite)
	go fw.stageFile(ctx, path, data, opts, staged)

	select {
	case <-ctx.Done():
		fw.logger.Warn().Str("path", path).Msg("File write cancelled due to context timeout")
		return interruptedError(ctx.Err(), "file write operation")
	case result := <-staged:
		if result.err != nil {
			return errorwrapper.WrapError(result.err, fmt.Sprintf("failed to write file: %s", path))
		}
		if err := os.Rename(result.tempPath, path); err != nil {
			_ = os.Remove(result.tempPath)
			return errorwrapper.WrapError(err, fmt.Sprintf("failed to write file: %s", path))
		}
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}

// stageFile writes data to a temporary file beside path and hands it over.
// If nobody takes the result before ctx ends, the temporary file is removed.
func (fw *FileWriter) stageFile(ctx context.Context, path string, data []byte, opts FileWriteOptions, staged chan<- stagedWrite) {
	tempPath, err := fw.writeTempFile(path, data, opts)
	select {
	case staged <- stagedWrite{tempPath: tempPath, err: err}:
	case <-ctx.Done():
		if tempPath != "" {
			_ = os.Remove(tempPath)
		}
	}
}

func (fw *FileWriter) writeTempFile(path string, data []byte, opts FileWriteOptions) (string, error) {
	perm := opts.Permissions
	if perm == 0 {
		perm = DefaultFilePermissions
	}

	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return "", err
	}
	tempPath := file.Name()

	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tempPath, perm)
	}
	if err != nil {
		_ = os.Remove(tempPath)
		return "", err
	}
	return tempPath, nil
}
