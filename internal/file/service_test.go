package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"fileid-inspector/internal/pkg/config"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDownloader struct {
	mu      sync.Mutex
	bodies  map[string]string
	fetched []string
}

func (f *fakeDownloader) DownloadFile(_ context.Context, fileID string, dst io.Writer) error {
	f.mu.Lock()
	f.fetched = append(f.fetched, fileID)
	body, ok := f.bodies[fileID]
	f.mu.Unlock()
	if !ok {
		return errors.New("file not found")
	}
	_, err := io.WriteString(dst, body)
	return err
}

func TestDownloadAndSave(t *testing.T) {
	dir := t.TempDir()
	svc := NewDefaultService(&config.FileServiceCfg{DirPath: dir, Workers: 2})
	downloader := &fakeDownloader{bodies: map[string]string{
		"id-1": "first",
		"id-2": "second",
		"id-3": "third",
	}}

	files := []RequestFile{
		{Name: "First File.TXT", FileID: "id-1"},
		{Name: "second.bin", FileID: "id-2"},
		{Name: "third.bin", FileID: "id-3"},
		{Name: "missing.bin", FileID: "id-4"},
	}

	var results []DownloadResult
	for res := range svc.DownloadAndSave(context.Background(), "chat-1", files, downloader) {
		results = append(results, res)
	}
	svc.Wait()

	require.Len(t, results, len(files))
	indexes := map[int]bool{}
	failed := 0
	for _, res := range results {
		assert.Equal(t, len(files), res.Total)
		indexes[res.Index] = true
		if res.Err != nil {
			failed++
			var downloadErr *ErrDownloadFailed
			assert.True(t, errors.As(res.Err, &downloadErr))
			assert.NoFileExists(t, res.Result.Path)
			continue
		}
		data, err := os.ReadFile(res.Result.Path)
		require.NoError(t, err)
		sum := sha256.Sum256(data)
		assert.Equal(t, hex.EncodeToString(sum[:]), res.Result.Checksum)
	}
	assert.Equal(t, 1, failed)
	assert.Len(t, indexes, len(files))

	data, err := os.ReadFile(filepath.Join(dir, "chat-1", "first-file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestDownloadAndSave_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chat"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat", "a.bin"), []byte("old"), 0644))

	svc := NewDefaultService(&config.FileServiceCfg{DirPath: dir, Workers: 1})
	downloader := &fakeDownloader{bodies: map[string]string{"id": "new"}}

	res := <-svc.DownloadAndSave(context.Background(), "chat", []RequestFile{{Name: "a.bin", FileID: "id"}}, downloader)
	assert.ErrorIs(t, res.Err, ErrFileExists)
	assert.Empty(t, downloader.fetched)
}

func TestFileAndFolderNames(t *testing.T) {
	assert.Equal(t, "photo-agad5amaatoruful", FolderName("photo", "AgAD5AMAAtoruFUL"))
	assert.Equal(t, "my-report.pdf", FileName("My Report.PDF"))
	assert.Equal(t, "file.bin", FileName("!!!.bin"))
	assert.False(t, strings.Contains(FileName("a/b.txt"), "/"))
}
