// Package bindfile reads and appends to the keymap file.
package bindfile

import (
	"bytes"
	"codeberg.org/seppun/seppun-kb/pkg/binding"
	"fmt"
	"go.uber.org/zap"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type File struct {
	path string
	log  *zap.SugaredLogger
}

func New(path string, log *zap.SugaredLogger) *File {
	return &File{path: path, log: log}
}

func (f *File) Path() string {
	return f.path
}

// Read parses the keymap and returns the rejected lines alongside the table.
func (f *File) Read() (binding.Table, []binding.Rejection, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return binding.Table{}, nil, fmt.Errorf("open keymap: %w", err)
	}
	defer file.Close()

	return binding.Read(file)
}

// Load parses the keymap, logging every rejected line.
func (f *File) Load() (binding.Table, error) {
	table, rejections, err := f.Read()
	if err != nil {
		return binding.Table{}, err
	}

	for _, r := range rejections {
		f.log.Warnw("skipping keymap line", "file", f.path, "line", r.Line, "text", r.Text, "error", r.Err)
	}
	f.log.Debugw("loaded keymap", "file", f.path, "bindings", table.Len(), "skipped", len(rejections))

	return table, nil
}

// Append adds a line at the end of the keymap, creating the file and its
// directory when missing.
func (f *File) Append(line string) error {
	line = strings.TrimRight(line, "\r\n")
	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("binding must be a single line")
	}

	err := os.MkdirAll(filepath.Dir(f.path), 0o755)
	if err != nil {
		return fmt.Errorf("create keymap directory: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open keymap: %w", err)
	}
	defer file.Close()

	// keep the new binding on its own line
	prefix, err := separator(file)
	if err != nil {
		return err
	}

	_, err = file.WriteString(prefix + line + "\n")
	if err != nil {
		return fmt.Errorf("write keymap: %w", err)
	}

	return nil
}

func separator(file *os.File) (string, error) {
	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("stat keymap: %w", err)
	}
	if info.Size() == 0 {
		return "", nil
	}

	last := make([]byte, 1)
	_, err = file.ReadAt(last, info.Size()-1)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read keymap: %w", err)
	}
	if bytes.Equal(last, []byte("\n")) {
		return "", nil
	}
	return "\n", nil
}
