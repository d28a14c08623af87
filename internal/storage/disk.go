package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnsupportedType is returned when an upload's filename extension is not
// on the allow-list. No bytes are written in that case.
var ErrUnsupportedType = errors.New("unsupported file type")

// allowedExtensions mirrors the upload filter of the portal frontend:
// images, PDFs and office documents only.
var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".xlsx": {},
	".xls":  {},
}

// Allowed reports whether the filename carries an accepted extension.
func Allowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedExtensions[ext]
	return ok
}

// DiskSink writes uploaded blobs to a directory on local disk. Destination
// names are prefixed with the upload time in epoch milliseconds, which keeps
// names unique under normal use but is not collision-proof for identical
// names uploaded in the same millisecond.
type DiskSink struct {
	dir string
}

func NewDiskSink(dir string) (*DiskSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskSink{dir: dir}, nil
}

// Store validates the filename, then streams the content to disk and returns
// the stored path. Rejected uploads never touch the filesystem.
func (s *DiskSink) Store(originalName string, content io.Reader) (string, error) {
	if !Allowed(originalName) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, originalName)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(originalName))
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, nil
}

// Open returns a reader over a previously stored blob and its size.
func (s *DiskSink) Open(path string) (io.ReadCloser, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open stored file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to stat stored file: %w", err)
	}
	return f, info.Size(), nil
}
