package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/chris-regnier/gitdiary/internal/diary"
)

const defaultPerm fs.FileMode = 0o644

// File is the on-disk diary. Every Save replaces the file in one rename so
// readers never observe a partial document.
type File struct {
	path string
}

// New returns a File for path. The file need not exist yet.
func New(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: diary path is empty", ErrValidation)
	}
	return &File{path: path}, nil
}

// Path returns the diary location.
func (f *File) Path() string { return f.path }

// Exists reports whether the diary file is present.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Read returns the raw file contents.
func (f *File) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorage, f.path, err)
	}
	return data, nil
}

// Load reads and parses the diary. A missing file is ErrNotFound.
func (f *File) Load() (*diary.Document, error) {
	data, err := f.Read()
	if err != nil {
		return nil, err
	}
	return diary.Parse(string(data)), nil
}

// LoadOrEmpty is Load, except that a missing file yields an empty document.
func (f *File) LoadOrEmpty() (*diary.Document, error) {
	doc, err := f.Load()
	if errors.Is(err, ErrNotFound) {
		return &diary.Document{}, nil
	}
	return doc, err
}

// Save renders doc and replaces the file with the result.
func (f *File) Save(doc *diary.Document) error {
	return f.Write([]byte(diary.Render(doc)))
}

// Write replaces the file contents with data, keeping the existing
// permission bits when the file is already present.
func (f *File) Write(data []byte) error {
	perm := defaultPerm
	if info, err := os.Stat(f.path); err == nil {
		perm = info.Mode().Perm()
	}
	return atomicWrite(f.path, data, perm)
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", ErrStorage, err)
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: setting permissions: %v", ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", ErrStorage, err)
	}

	return nil
}
