package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// minimal 1x1 transparent PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func TestImageStore_Save_PNG(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)

	url, err := store.Save(pngBytes)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("Save() url = %q, want /uploads/ prefix", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("Save() url = %q, want .png extension", url)
	}

	stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	content, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if !bytes.Equal(content, pngBytes) {
		t.Error("stored content differs from input")
	}
}

func TestImageStore_Save_RejectsEmpty(t *testing.T) {
	store := NewImageStore(t.TempDir())

	if _, err := store.Save(nil); err == nil {
		t.Error("Save() expected error for empty content")
	}
}

func TestImageStore_Save_RejectsUnsupportedType(t *testing.T) {
	store := NewImageStore(t.TempDir())

	if _, err := store.Save([]byte("%PDF-1.4 not an image")); err == nil {
		t.Error("Save() expected error for non-image content")
	}
}

func TestImageStore_Save_RejectsOversize(t *testing.T) {
	store := NewImageStore(t.TempDir())

	big := make([]byte, maxImageSize+1)
	copy(big, pngBytes)

	if _, err := store.Save(big); err == nil {
		t.Error("Save() expected error for oversized content")
	}
}

func TestImageStore_Save_RandomFilenames(t *testing.T) {
	store := NewImageStore(t.TempDir())

	first, err := store.Save(pngBytes)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := store.Save(pngBytes)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if first == second {
		t.Error("Save() produced the same filename twice")
	}
}
