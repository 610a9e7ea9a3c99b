package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidKey        = errors.New("invalid file key")
	ErrInvalidRootDir    = errors.New("invalid root directory")
)

type PutResult struct {
	FileKey string
	Path    string
	Bytes   int64
}

type PutOptions struct {
	AllowOverwrite bool
}

// FileStorage writes whole files below a root directory. A Put either publishes the complete
// content under its key or leaves nothing behind.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error)
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

func (s *fileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	finalPath := filepath.Join(s.dir, filepath.Clean(key))
	publish := publishNoOverwrite
	if opts.AllowOverwrite {
		publish = publishOverwrite
	}

	n, err := s.writeTemp(ctx, finalPath, r, publish)
	if err != nil {
		return nil, err
	}
	return &PutResult{FileKey: key, Path: finalPath, Bytes: n}, nil
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == ".." || cleanPath == "." {
		return ErrInvalidKey
	}
	if strings.HasPrefix(cleanPath, "..") {
		return ErrInvalidKey
	}
	// the resolved path must stay within the root directory
	rel, err := filepath.Rel(s.dir, filepath.Join(s.dir, cleanPath))
	if err != nil || strings.HasPrefix(rel, "..") {
		return ErrInvalidKey
	}
	return nil
}

// writeTemp streams r into a temp file next to finalPath and hands it to publish once it is
// fully synced. The temp file never survives the call.
func (s *fileStorage) writeTemp(ctx context.Context, finalPath string, r io.Reader, publish func(tmpPath, finalPath string) error) (int64, error) {
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	n, err := io.Copy(tmp, r)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := publish(tmpPath, finalPath); err != nil {
		return 0, err
	}
	return n, nil
}

// publishOverwrite atomically replaces finalPath (POSIX rename).
func publishOverwrite(tmpPath, finalPath string) error {
	return os.Rename(tmpPath, finalPath)
}

// publishNoOverwrite links the temp file to finalPath only if nothing exists there yet.
func publishNoOverwrite(tmpPath, finalPath string) error {
	if err := os.Link(tmpPath, finalPath); err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrFileAlreadyExists
		}
		return err
	}
	return nil
}
