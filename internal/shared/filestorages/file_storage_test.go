package filestorages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report.csv",
		"reports/alice.csv",
		"nested/deep/path/raw.json",
		"file-with-dashes.csv",
		"file_with_underscores.csv",
		"file.with.dots.csv",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "integration_id,change_type\n"

			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)
			assert.Equal(t, filepath.Join(root, key), result.Path)
			assert.Equal(t, int64(len(data)), result.Bytes)

			content, err := os.ReadFile(result.Path)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "out.csv", strings.NewReader("initial data"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "out.csv", strings.NewReader("new data"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(root, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "initial data", string(content))
	assertNoTempFiles(t, root)
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "out.csv", strings.NewReader("initial data"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	result, err := storage.Put(ctx, "out.csv", strings.NewReader("new data"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, "out.csv", result.FileKey)

	content, err := os.ReadFile(filepath.Join(root, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "new data", string(content))
	assertNoTempFiles(t, root)
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"reports/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: true})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestPut_ReaderFailureLeavesNothing(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)

	_, err := storage.Put(context.Background(), "out.csv", failingReader{}, PutOptions{AllowOverwrite: true})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "out.csv"))
	assert.True(t, os.IsNotExist(statErr))
	assertNoTempFiles(t, root)
}

func TestPut_CancelledContextLeavesNothing(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Put(ctx, "out.csv", strings.NewReader("data"), PutOptions{AllowOverwrite: true})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(root, "out.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func newTestStorage(t *testing.T) (FileStorage, string) {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage, storage.(*fileStorage).dir
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
