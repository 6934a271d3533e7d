package filestage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rajank18/prograde/internal/pkg/logger"
)

// Stager copies uploaded files into a staging directory so request handlers can
// re-read them as plain files. Every staged file is removed through its release
// function regardless of how request processing ends.
type Stager struct {
	basePath string
}

// NewStager creates a new Stager rooted at basePath.
func NewStager(basePath string) (*Stager, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create staging directory")
		return nil, fmt.Errorf("failed to create staging directory %s: %w", basePath, err)
	}

	return &Stager{basePath: basePath}, nil
}

// Stage writes the uploaded file to the staging directory and returns the
// staged path together with a release function. The release function is safe to
// call more than once and must be invoked on every exit path.
func (s *Stager) Stage(fileHeader *multipart.FileHeader) (string, func(), error) {
	if fileHeader == nil {
		return "", nil, fmt.Errorf("no file to stage")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(s.basePath, uuid.New().String()+ext)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		if removeErr := os.Remove(dstPath); removeErr != nil {
			logger.Warn().Err(removeErr).Str("path", dstPath).Msg("Failed to remove partially staged file")
		}
		return "", nil, fmt.Errorf("failed to copy uploaded file content: %w", err)
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", nil, fmt.Errorf("failed to finalize staged file: %w", err)
	}

	released := false
	release := func() {
		if released {
			return
		}
		released = true
		if err := os.Remove(dstPath); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", dstPath).Msg("Failed to remove staged file")
		}
	}

	return dstPath, release, nil
}
