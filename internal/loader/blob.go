// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package loader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	"github.com/davetashner/surveyboard/internal/redact"
	"github.com/davetashner/surveyboard/internal/table"
)

// BlobLoader reads CSV sources from a gocloud.dev bucket.
type BlobLoader struct {
	bucket *blob.Bucket
	url    string
}

// Compile-time interface check.
var _ Loader = (*BlobLoader)(nil)

// OpenBucket opens the bucket at url and checks that it is reachable.
func OpenBucket(ctx context.Context, url string) (*BlobLoader, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", redact.URL(url), err)
	}
	ok, err := bucket.IsAccessible(ctx)
	if err != nil {
		_ = bucket.Close()
		return nil, fmt.Errorf("check bucket %s: %w", redact.URL(url), err)
	}
	if !ok {
		_ = bucket.Close()
		return nil, fmt.Errorf("bucket %s is not accessible", redact.URL(url))
	}
	return &BlobLoader{bucket: bucket, url: url}, nil
}

// NewBlobLoader wraps an already opened bucket. The caller keeps ownership.
func NewBlobLoader(bucket *blob.Bucket) *BlobLoader {
	return &BlobLoader{bucket: bucket}
}

// Load reads and decodes the object stored under source.
func (l *BlobLoader) Load(ctx context.Context, source string) (*table.Table, error) {
	key := strings.TrimPrefix(source, "/")
	r, err := l.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", key, err)
	}
	defer r.Close() //nolint:errcheck // read-only

	tbl, err := table.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	slog.Debug("loaded table", "bucket", redact.URL(l.url), "key", key, "rows", tbl.Len())
	return tbl, nil
}

// Close releases the bucket.
func (l *BlobLoader) Close() error {
	return l.bucket.Close()
}
