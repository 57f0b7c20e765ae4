package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"engetrack/internal/usecase/interfaces"
)

// LocalStorage keeps attachments on the local filesystem. Meant for
// development; the returned URL is a relative path served by a static route.
type LocalStorage struct {
	root string
}

var _ interfaces.IBlobStorage = (*LocalStorage)(nil)

func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

func (l *LocalStorage) Upload(ctx context.Context, file io.Reader, path string) (string, string, error) {
	path = strings.TrimPrefix(path, "/")
	full := filepath.Join(l.root, filepath.FromSlash(path))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create dir: %w", err)
	}

	out, err := os.Create(full)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}
	return path, "/uploads/" + path, nil
}
