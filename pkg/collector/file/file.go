// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads small text files such as sysfs attributes.
type Parser struct {
	fsys         fs.FS
	maxSize      int
	skipComments bool
}

// WithFS reads files from fsys instead of the host filesystem. Paths passed
// to the Parser must then be valid fs.FS paths (slash-separated, unrooted).
func WithFS(fsys fs.FS) Option {
	return func(p *Parser) {
		p.fsys = fsys
	}
}

// WithMaxSize sets the maximum size (in bytes) of a file.
// Default is 64KB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether lines starting with "#" are dropped.
// Default is false; sysfs values never carry comments.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize: 64 << 10,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewRootedParser returns a Parser that resolves paths relative to root on
// the host filesystem.
func NewRootedParser(root string, opts ...Option) *Parser {
	return NewParser(append([]Option{WithFS(os.DirFS(filepath.Clean(root)))}, opts...)...)
}

func (p *Parser) read(path string) ([]byte, error) {
	if p.fsys != nil {
		return fs.ReadFile(p.fsys, path)
	}
	return os.ReadFile(path)
}

// GetLines reads the file at path and returns its non-empty, trimmed lines.
// An error is returned if the file cannot be read, exceeds the maximum size,
// or contains invalid UTF-8 content. The read error is wrapped so callers can
// test it with errors.Is(err, fs.ErrNotExist) or fs.ErrPermission.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := p.read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > p.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	parts := strings.Split(string(b), "\n")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(part)
		if line == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(line, "#") {
			continue
		}
		result = append(result, line)
	}

	return result, nil
}

// GetValue reads a single-value attribute file and returns its first line.
// An existing but empty file yields "".
func (p *Parser) GetValue(path string) (string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		slog.Debug("attribute file is empty", slog.String("path", path))
		return "", nil
	}
	return lines[0], nil
}
