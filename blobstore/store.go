package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading immutable named inputs.
type Store interface {
	// Open opens a blob for sequential reading. The caller closes the
	// returned reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
