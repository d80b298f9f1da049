// Package fsx abstracts file storage so resumes can live on the local
// disk in development and in S3 in production.
package fsx

import (
	"context"
	"io"
)

// FileSystem stores and retrieves opaque blobs by key.
type FileSystem interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
