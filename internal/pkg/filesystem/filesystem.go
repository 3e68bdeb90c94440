// Package filesystem provides an abstraction over the local and in-memory filesystem.
// All paths are relative to the basePath and use slashes as separator.
package filesystem

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hw-tools/crategen/internal/pkg/log"
	"github.com/hw-tools/crategen/internal/pkg/utils/errors"
)

type Factory func(logger log.Logger, workingDir string) (fs Fs, err error)

// Fs - filesystem interface.
type Fs interface {
	Name() string // name of the used implementation, for example local, memory
	BasePath() string
	WorkingDir() string
	SetLogger(logger log.Logger)
	Walk(root string, walkFn filepath.WalkFunc) error
	Glob(pattern string) (matches []string, err error)
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Mkdir(path string) error
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	ReadFile(path, desc string) (*File, error)
	WriteFile(file *File) error
	Remove(path string) error
}

// Rel returns relative path.
func Rel(base, path string) string {
	relPath, err := filepath.Rel(base, path)
	if err != nil {
		panic(errors.Errorf(`cannot get relative path, base="%s", path="%s"`, base, path))
	}
	return relPath
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return path.Join(elem...)
}

// Split splits path immediately following the final separator.
func Split(p string) (dir, file string) {
	return path.Split(p)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(p string) string {
	return path.Dir(p)
}

// Base returns the last element of path.
func Base(p string) string {
	return path.Base(p)
}

// Match reports whether name matches the shell file name pattern.
func Match(pattern, name string) (matched bool, err error) {
	return path.Match(pattern, name)
}

// FromSlash returns the result of replacing each slash in path with the OS separator.
func FromSlash(p string) string {
	return filepath.FromSlash(p)
}

// ToSlash returns the result of replacing each OS separator in path with a slash.
func ToSlash(p string) string {
	return filepath.ToSlash(p)
}

// Ext returns the file name extension, including the dot.
func Ext(p string) string {
	return path.Ext(p)
}

// Stem returns the file name without the extension.
func Stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
