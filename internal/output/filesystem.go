package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a filesystem Target rooted at a single output directory.
type Dir struct {
	root string
}

// NewDir creates a Dir, creating the directory itself if missing. Only the
// final path element is created; a missing parent is an error.
func NewDir(root string) (*Dir, error) {
	if err := os.Mkdir(root, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Root returns the output directory path.
func (d *Dir) Root() string { return d.root }

// Write stores content at root/name. When the destination already holds
// exactly this content the file is left completely untouched, preserving its
// modification time for downstream sync tooling. Otherwise the content goes
// to a temp file in the same directory and is renamed over the destination,
// so a crash mid-write never leaves a corrupt file behind.
func (d *Dir) Write(name string, content []byte) (bool, error) {
	destPath := filepath.Join(d.root, name)

	existing, err := os.ReadFile(destPath)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("reading existing file: %w", err)
	}

	tmpFile, err := os.CreateTemp(d.root, ".tmp-*")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return false, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return false, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return false, fmt.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return false, fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return true, nil
}

// Compile-time check that Dir implements the Target interface
var _ Target = (*Dir)(nil)
