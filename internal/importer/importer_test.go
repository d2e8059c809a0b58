package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "Markdown",
			path:     "notes.md",
			expected: true,
		},
		{
			name:     "Long markdown extension",
			path:     "notes.markdown",
			expected: true,
		},
		{
			name:     "Plain text",
			path:     "notes.txt",
			expected: true,
		},
		{
			name:     "Uppercase extension",
			path:     "NOTES.MD",
			expected: true,
		},
		{
			name:     "HTML has a text MIME type",
			path:     "page.html",
			expected: true,
		},
		{
			name:     "Binary image",
			path:     "photo.png",
			expected: false,
		},
		{
			name:     "Archive",
			path:     "backup.zip",
			expected: false,
		},
		{
			name:     "No extension",
			path:     "Makefile",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supported(tt.path); got != tt.expected {
				t.Errorf("Supported(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "note.md")
	content := "# Title\n\nbody"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != content {
		t.Errorf("Expected %q, got %q", content, got)
	}
}

func TestReadFileRejectsUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(path, []byte{0x89, 0x50, 0x4e, 0x47}, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := ReadFile(path)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}

func TestReadFileReportsReadFailure(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.md"))
	if !errors.Is(err, ErrReadFailure) {
		t.Errorf("Expected ErrReadFailure, got %v", err)
	}
}
