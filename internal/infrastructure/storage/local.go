// Package storage provides the file-store backends behind the upload
// endpoints: plain disk for single-host deployments and MinIO for
// object-storage deployments.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

// Local writes uploads to a directory on disk and returns the relative
// /static/uploads/ path the server itself serves. Serialization later rewrites
// that path to an absolute URL.
type Local struct {
	dir string
}

// NewLocal creates the upload directory if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Name() string { return "local" }

// Save stores the file under a uuid-based name, keeping only the original
// extension so uploaded filenames can never collide or escape the directory.
func (l *Local) Save(_ context.Context, filename string, r io.Reader, _ int64) (string, error) {
	name := uuid.NewString() + filepath.Ext(filepath.Base(filename))

	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return domain.UploadPathPrefix + name, nil
}
