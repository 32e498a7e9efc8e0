package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileKV stores each key in its own file in a folder.
// Writes are atomic: a value is either the previous one or the new one.
type FileKV struct {
	dir string
}

// NewFileKV returns a FileKV in dir. The folder is created on the first write.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		return nil, fmt.Errorf("file storage requires a folder")
	}
	return &FileKV{dir: dir}, nil
}

// Dir returns the folder containing the values.
func (kv *FileKV) Dir() string { return kv.dir }

func (kv *FileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(kv.dir, key+".json"), nil
}

func (kv *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	p, err := kv.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (kv *FileKV) Set(_ context.Context, key string, value []byte) error {
	p, err := kv.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(kv.dir, 0755); err != nil {
		return fmt.Errorf("could not create storage folder %q: %w", kv.dir, err)
	}

	// Write in a temp file of the same folder, then rename over the target.
	f, err := os.CreateTemp(kv.dir, "."+key+"-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if _, err := f.Write(value); err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("error replacing %q: %w", p, err)
	}
	return nil
}

func (kv *FileKV) Close() error { return nil }
