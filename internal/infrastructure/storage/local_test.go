package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

func TestLocal_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Save(context.Background(), "screenshot.PNG", strings.NewReader("png-bytes"), 9)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(url, domain.UploadPathPrefix) {
		t.Fatalf("expected %s prefix, got %q", domain.UploadPathPrefix, url)
	}
	if !strings.HasSuffix(url, ".PNG") {
		t.Fatalf("expected extension preserved, got %q", url)
	}
	if strings.Contains(url, "screenshot") {
		t.Fatalf("original filename should not survive: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, domain.UploadPathPrefix)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestLocal_SaveDistinctNames(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	first, err := store.Save(context.Background(), "a.png", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := store.Save(context.Background(), "a.png", strings.NewReader("y"), 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first == second {
		t.Fatalf("same filename must not collide: %q", first)
	}
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocal(dir); err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}
