// Package aferofs implements the filesystem.Fs interface
// on top of the afero library.
package aferofs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/hw-tools/crategen/internal/pkg/filesystem"
	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

// backend is a filesystem implementation provided by the afero library.
type backend interface {
	afero.Fs
	Name() string
	BasePath() string
	Walk(root string, walkFn filepath.WalkFunc) error
}

// Fs implements the filesystem.Fs interface on top of a backend.
type Fs struct {
	backend    backend
	utils      *afero.Afero
	logger     log.Logger
	workingDir string
}

func New(logger log.Logger, backend backend, workingDir string) *Fs {
	return &Fs{
		backend:    backend,
		utils:      &afero.Afero{Fs: backend},
		logger:     logger,
		workingDir: filesystem.ToSlash(workingDir),
	}
}

// Backend returns the underlying afero filesystem.
func (f *Fs) Backend() afero.Fs {
	return f.backend
}

func (f *Fs) Name() string {
	return f.backend.Name()
}

func (f *Fs) BasePath() string {
	return f.backend.BasePath()
}

func (f *Fs) WorkingDir() string {
	return f.workingDir
}

func (f *Fs) SetLogger(logger log.Logger) {
	f.logger = logger
}

func (f *Fs) Walk(root string, walkFn filepath.WalkFunc) error {
	return f.backend.Walk(filesystem.FromSlash(root), walkFn)
}

// Glob returns matching paths, sorted, so the result is deterministic
// across platforms.
func (f *Fs) Glob(pattern string) (matches []string, err error) {
	matches, err = afero.Glob(f.backend, filesystem.FromSlash(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = filesystem.ToSlash(match)
	}
	sort.Strings(matches)
	return matches, nil
}

func (f *Fs) Stat(path string) (os.FileInfo, error) {
	return f.backend.Stat(filesystem.FromSlash(path))
}

func (f *Fs) ReadDir(path string) ([]os.FileInfo, error) {
	return f.utils.ReadDir(filesystem.FromSlash(path))
}

// Mkdir creates directory and all missing parents.
func (f *Fs) Mkdir(path string) error {
	if err := f.backend.MkdirAll(filesystem.FromSlash(path), 0o755); err != nil {
		return errors.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	return nil
}

func (f *Fs) Exists(path string) bool {
	if _, err := f.backend.Stat(filesystem.FromSlash(path)); err == nil {
		return true
	}
	return false
}

func (f *Fs) IsFile(path string) bool {
	if info, err := f.backend.Stat(filesystem.FromSlash(path)); err == nil {
		return info.Mode().IsRegular()
	}
	return false
}

func (f *Fs) IsDir(path string) bool {
	if info, err := f.backend.Stat(filesystem.FromSlash(path)); err == nil {
		return info.IsDir()
	}
	return false
}

func (f *Fs) ReadFile(path, desc string) (*filesystem.File, error) {
	content, err := f.utils.ReadFile(filesystem.FromSlash(path))
	if err != nil {
		return nil, readError(desc, path, err)
	}
	f.logger.Debugf(`Loaded "%s"`, path)
	return filesystem.NewFile(path, string(content)).SetDescription(desc), nil
}

func (f *Fs) WriteFile(file *filesystem.File) error {
	// Create directory
	if dir := filesystem.Dir(file.Path); !f.IsDir(dir) {
		if err := f.Mkdir(dir); err != nil {
			return err
		}
	}

	if err := f.utils.WriteFile(filesystem.FromSlash(file.Path), []byte(file.Content), 0o644); err != nil {
		return writeError(file.Desc, file.Path, err)
	}
	f.logger.Debugf(`Saved "%s"`, file.Path)
	return nil
}

func (f *Fs) Remove(path string) error {
	if err := f.backend.RemoveAll(filesystem.FromSlash(path)); err != nil {
		return errors.Errorf(`cannot remove "%s": %w`, path, err)
	}
	return nil
}

func readError(desc, path string, err error) error {
	// Remove absolute path from the error
	var pathError *fs.PathError
	if errors.As(err, &pathError) {
		err = pathError.Err
	}
	if desc != "" {
		desc += " "
	}
	return errors.Errorf(`cannot read %s"%s": %w`, desc, path, err)
}

func writeError(desc, path string, err error) error {
	var pathError *fs.PathError
	if errors.As(err, &pathError) {
		err = pathError.Err
	}
	if desc != "" {
		desc += " "
	}
	return errors.Errorf(`cannot write %s"%s": %w`, desc, path, err)
}
