// Package output writes command results to a file or to stdout.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to a destination.
type Writer struct {
	Path string // empty means stdout
	out  io.Writer
}

// New creates a Writer targeting path. An empty path writes to stdout.
// Parent directories of path are created as needed.
func New(path string) (*Writer, error) {
	if path == "" {
		return &Writer{out: os.Stdout}, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{Path: path}, nil
}

// ResolvePath completes path into a file name. A path that is an existing
// directory or ends in a separator gets name+ext inside it; a path without
// an extension gets ext appended. Any other path is returned unchanged.
func ResolvePath(path, name, ext string) string {
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return filepath.Join(path, name+ext)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, name+ext)
	}
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

// NewTo creates a Writer that writes to w.
func NewTo(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Write writes data to the destination and returns where it went.
func (w *Writer) Write(data []byte) (string, error) {
	if w.Path == "" {
		if _, err := w.out.Write(data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return "stdout", nil
	}

	if err := os.WriteFile(w.Path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", w.Path, err)
	}
	return w.Path, nil
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) (string, error) {
	return w.Write([]byte(s + "\n"))
}
