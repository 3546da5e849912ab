// SPDX-License-Identifier: MIT

// Package files: paths, folders and whole-file reads and writes.

package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/numflow/stream"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FilePath converts a forward-slash location to the host separator,
// keeping a leading slash.
func FilePath(location string) string {
	joint := filepath.Join(strings.Split(location, "/")...)
	if strings.HasPrefix(location, "/") {
		return string(filepath.Separator) + joint
	}

	return joint
}

// Mkdir creates dir and every missing parent (mkdir -p).
func Mkdir(dir string) error {
	if dir == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(FilePath(dir), dirPerm); err != nil {
		return filesErrorf("mkdir", dir, err)
	}

	return nil
}

// CreateFolder creates every missing folder above location.
func CreateFolder(location string) error {
	if location == "" {
		return ErrEmptyPath
	}

	return Mkdir(filepath.Dir(FilePath(location)))
}

// Exists reports whether location exists.
func Exists(location string) (bool, error) {
	_, err := os.Stat(FilePath(location))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, filesErrorf("stat", location, err)
	}
}

// ReadFile returns the content of location.
func ReadFile(location string) ([]byte, error) {
	data, err := os.ReadFile(FilePath(location))
	if err != nil {
		return nil, filesErrorf("read", location, err)
	}

	return data, nil
}

// WriteFile writes data to location, creating its folder first.
func WriteFile(location string, data []byte) error {
	if err := CreateFolder(location); err != nil {
		return err
	}
	if err := os.WriteFile(FilePath(location), data, filePerm); err != nil {
		return filesErrorf("write", location, err)
	}

	return nil
}

// WriteLines writes lines terminated by '\n'.
func WriteLines(location string, lines []string) error {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	return WriteFile(location, []byte(b.String()))
}

// RemoveAll deletes location recursively (rm -rf). A missing location is not
// an error.
func RemoveAll(location string) error {
	if err := os.RemoveAll(FilePath(location)); err != nil {
		return filesErrorf("remove", location, err)
	}

	return nil
}

// ReadDir lists entry names of dir in lexical order.
func ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(FilePath(dir))
	if err != nil {
		return nil, filesErrorf("readdir", dir, err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names, nil
}

// ReadDirStream streams the entry names of dir.
func ReadDirStream(dir string, opts ...stream.Option) *stream.Stream[string] {
	return stream.Create(func(obs stream.Observer[string]) {
		names, err := ReadDir(dir)
		if err != nil {
			obs.Error(err)
			return
		}
		for _, n := range names {
			obs.Push(n)
		}
		obs.End()
	}, opts...)
}

// Glob returns the sorted paths matching pattern.
func Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(FilePath(pattern))
	if err != nil {
		return nil, filesErrorf("glob", pattern, err)
	}
	sort.Strings(matches)

	return matches, nil
}

// GlobStream streams the paths matching pattern.
func GlobStream(pattern string, opts ...stream.Option) *stream.Stream[string] {
	return stream.Create(func(obs stream.Observer[string]) {
		matches, err := Glob(pattern)
		if err != nil {
			obs.Error(err)
			return
		}
		for _, m := range matches {
			obs.Push(m)
		}
		obs.End()
	}, opts...)
}
