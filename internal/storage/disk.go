// Package storage persists uploaded stall photos. The disk store is
// the only implementation; it writes under a root directory that the
// API serves statically, mirroring a hosted storage bucket's public URLs.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptyKey = errors.New("object key is empty")

type DiskStore struct {
	rootDir       string
	publicBaseURL string
}

func NewDiskStore(rootDir, publicBaseURL string) *DiskStore {
	return &DiskStore{
		rootDir:       rootDir,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Save writes the object under key and returns its public URL.
// Key segments are cleaned so a crafted filename cannot escape the root.
func (s *DiskStore) Save(key string, r io.Reader) (string, error) {
	key = filepath.ToSlash(filepath.Clean("/" + key))[1:]
	if key == "" || key == "." {
		return "", ErrEmptyKey
	}

	path := filepath.Join(s.rootDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *DiskStore) RootDir() string {
	return s.rootDir
}
