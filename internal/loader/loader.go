// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

// Package loader reads survey tables from their backing storage. A missing
// source is reported as ErrNotFound so callers can treat it as the normal
// "upstream data not generated yet" outcome.
package loader

import (
	"context"
	"errors"
	"strings"

	"github.com/davetashner/surveyboard/internal/table"
)

// ErrNotFound indicates that the named source does not exist.
var ErrNotFound = errors.New("source not found")

// Loader loads a survey table by source identifier (a path relative to the
// data directory, or an object key in a bucket).
type Loader interface {
	Load(ctx context.Context, source string) (*table.Table, error)
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context, source string) (*table.Table, error)

// Load calls f.
func (f Func) Load(ctx context.Context, source string) (*table.Table, error) {
	return f(ctx, source)
}

// Options selects and configures a Loader.
type Options struct {
	// DataDir is the local directory holding CSV sources. Used when
	// BucketURL is empty.
	DataDir string
	// BucketURL is a gocloud.dev blob URL (file://, mem://, s3://, gs://,
	// azblob://). Takes precedence over DataDir.
	BucketURL string
}

// Open returns the loader described by opts and a close function that
// releases any underlying resources.
func Open(ctx context.Context, opts Options) (Loader, func() error, error) {
	if strings.TrimSpace(opts.BucketURL) != "" {
		bl, err := OpenBucket(ctx, opts.BucketURL)
		if err != nil {
			return nil, nil, err
		}
		return bl, bl.Close, nil
	}
	return NewFSLoader(opts.DataDir), func() error { return nil }, nil
}
