// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/davetashner/surveyboard/internal/table"
	"github.com/davetashner/surveyboard/internal/testable"
)

// FSLoader reads CSV sources from a local directory.
type FSLoader struct {
	root string
	fs   testable.FileSystem
}

// Compile-time interface check.
var _ Loader = (*FSLoader)(nil)

// NewFSLoader returns a loader rooted at dir.
func NewFSLoader(dir string) *FSLoader {
	return &FSLoader{root: dir, fs: testable.DefaultFS}
}

// WithFS returns a copy of the loader using the given file system.
func (l *FSLoader) WithFS(fsys testable.FileSystem) *FSLoader {
	return &FSLoader{root: l.root, fs: fsys}
}

// Root returns the data directory.
func (l *FSLoader) Root() string { return l.root }

// Path returns the file path a source resolves to. Absolute sources are
// used as-is.
func (l *FSLoader) Path(source string) string {
	if filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(l.root, source)
}

// Load opens and decodes the CSV source.
func (l *FSLoader) Load(ctx context.Context, source string) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := l.Path(source)

	f, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", source, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", source, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	tbl, err := table.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	slog.Debug("loaded table", "source", path, "rows", tbl.Len(), "columns", tbl.Width())
	return tbl, nil
}
