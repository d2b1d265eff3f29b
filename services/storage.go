package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"rag-analyzer/internal/logger"
)

// UploadStore owns the staging directory for in-flight uploads. Every
// staged file gets a unique name from os.CreateTemp, so concurrent
// uploads of the same document never collide on disk.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if dir == "" {
		return nil, NewError(KindStorage, fmt.Errorf("upload directory not configured"))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, Errorf(KindStorage, "failed to create upload directory: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the staging directory path.
func (u *UploadStore) Dir() string {
	return u.dir
}

// Stage copies src into a fresh temp file and returns its path together
// with a cleanup func. Callers defer the cleanup; it tolerates the file
// already being gone.
func (u *UploadStore) Stage(src io.Reader) (string, func(), error) {
	tmp, err := os.CreateTemp(u.dir, "upload-*.pdf")
	if err != nil {
		return "", nil, Errorf(KindStorage, "could not save file: %w", err)
	}
	path := tmp.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove staged upload", "path", path, "error", err)
		}
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, Errorf(KindStorage, "could not save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, Errorf(KindStorage, "could not save file: %w", err)
	}
	return path, cleanup, nil
}

// Sweep deletes staged files older than ttl. Uploads are removed by their
// request's cleanup in normal operation; this catches files leaked by a
// crashed process.
func (u *UploadStore) Sweep(ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(u.dir)
	if err != nil {
		return 0, Errorf(KindStorage, "failed to read upload directory: %w", err)
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(u.dir, entry.Name())); err != nil {
			logger.Warn("Failed to sweep staged upload", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
