package aferofs

import (
	"os"
	"path/filepath"

	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs/localfs"
	"github.com/hw-tools/crategen/internal/pkg/filesystem/aferofs/memoryfs"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

// NewLocalFs creates a filesystem rooted in the working directory.
func NewLocalFs(logger log.Logger, workingDir string) (fs filesystem.Fs, err error) {
	if workingDir == "" {
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, errors.Errorf(`cannot get working dir from OS: %w`, err)
		}
	}

	workingDir, err = filepath.Abs(workingDir)
	if err != nil {
		return nil, err
	}

	return New(logger, localfs.New(workingDir), ""), nil
}

// NewMemoryFs creates an in-memory filesystem for tests.
func NewMemoryFs(logger log.Logger, workingDir string) (fs filesystem.Fs, err error) {
	return New(logger, memoryfs.New(), workingDir), nil
}
