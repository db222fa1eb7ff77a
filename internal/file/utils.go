package file

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gosimple/slug"
)

func prepareFilepath(filePath string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, err
	}

	out, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return nil, ErrFileExists
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func calculateChecksum(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FolderName turns free-form parts into a single filesystem-safe folder name.
func FolderName(parts ...string) string {
	return slug.Make(strings.Join(parts, " "))
}

// FileName slugs the base name and keeps the extension.
func FileName(name string) string {
	ext := filepath.Ext(name)
	base := slug.Make(strings.TrimSuffix(name, ext))
	if base == "" {
		base = "file"
	}
	return base + strings.ToLower(ext)
}
