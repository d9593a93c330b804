package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	appcatalog "github.com/techzone/backend/internal/application/catalog"
	"go.uber.org/zap"
)

// LocalStorage writes objects to a directory on disk. It backs
// development and test environments without a bucket.
type LocalStorage struct {
	dir     string
	baseURL string
	log     *zap.Logger
}

// NewLocalStorage creates the storage rooted at dir
func NewLocalStorage(dir, baseURL string, log *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	if baseURL == "" {
		baseURL = "/static"
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		log:     log,
	}, nil
}

var _ appcatalog.ObjectStorage = (*LocalStorage)(nil)

// Upload writes the object under dir, creating parent directories as
// needed, and returns its URL.
func (s *LocalStorage) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("write object %s: %w", key, err)
	}

	s.log.Debug("object stored locally", zap.String("path", path))
	return s.baseURL + "/" + key, nil
}
