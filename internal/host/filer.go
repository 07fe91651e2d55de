package host

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Filer creates resources under a root directory.
type Filer struct {
	root    string
	written []string
}

// NewFiler returns a Filer rooted at root.
func NewFiler(root string) *Filer {
	return &Filer{root: root}
}

// Create opens relPath under the root for writing, creating parent
// directories and truncating an existing file. relPath must be
// slash-separated and stay inside the root.
func (f *Filer) Create(relPath string) (io.WriteCloser, error) {
	clean := path.Clean(relPath)
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return nil, fmt.Errorf("resource path %q escapes output root", relPath)
	}

	full := filepath.Join(f.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", filepath.Dir(full), err)
	}

	file, err := os.Create(full)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", full, err)
	}
	f.written = append(f.written, full)
	return file, nil
}

// Written lists the files created so far.
func (f *Filer) Written() []string {
	return append([]string(nil), f.written...)
}
