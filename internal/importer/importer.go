// Package importer is the file-import surface of the editor: it reads a
// user-selected file as markup text, but only when its declared type says
// plain text or markdown. It is the only document mutator besides typing
// and the toolbar commands, and on any failure the caller's document stays
// untouched.
package importer

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedType reports a file whose extension or MIME type does
	// not indicate plain text or markdown. User-visible, non-fatal.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrReadFailure reports an I/O failure while reading an accepted
	// file. User-visible, non-fatal.
	ErrReadFailure = errors.New("failed to read file")
)

// markupExtensions are always accepted regardless of the MIME registry.
var markupExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Supported reports whether path names a file the importer will read: a
// markdown extension, or any extension whose MIME type has a text/ prefix.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if markupExtensions[ext] {
		return true
	}
	return strings.HasPrefix(mime.TypeByExtension(ext), "text/")
}

// ReadFile reads a markdown or plain-text file and returns its content as
// the new document text. The caller replaces its document only on success.
func ReadFile(path string) (string, error) {
	if !Supported(path) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadFailure, err)
	}

	return string(data), nil
}
