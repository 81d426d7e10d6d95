package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of a blob.
type Compression int

const (
	// None means the blob is read as-is.
	None Compression = iota
	// Zstd is Zstandard (.zst).
	Zstd
	// Gzip is gzip (.gz).
	Gzip
	// LZ4 is the LZ4 frame format (.lz4).
	LZ4
)

// String returns the file extension-style name of the compression.
func (c Compression) String() string {
	switch c {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionOf infers the compression from the extension of name.
func CompressionOf(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz":
		return Gzip
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Decompress wraps r with the decoder for name's extension. Closing the
// result closes both the decoder and r. Names without a known extension
// return r unchanged.
func Decompress(name string, r io.ReadCloser) (io.ReadCloser, error) {
	switch CompressionOf(name) {
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("blobstore: zstd %s: %w", name, err), r.Close())
		}
		return &decodeCloser{Reader: d, closers: []func() error{
			func() error { d.Close(); return nil },
			r.Close,
		}}, nil
	case Gzip:
		z, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("blobstore: gzip %s: %w", name, err), r.Close())
		}
		return &decodeCloser{Reader: z, closers: []func() error{z.Close, r.Close}}, nil
	case LZ4:
		return &decodeCloser{Reader: lz4.NewReader(r), closers: []func() error{r.Close}}, nil
	default:
		return r, nil
	}
}

// Open opens name from s and decompresses it according to its extension.
func Open(ctx context.Context, s Store, name string) (io.ReadCloser, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return Decompress(name, rc)
}

type decodeCloser struct {
	io.Reader
	closers []func() error
}

func (d *decodeCloser) Close() error {
	var errs []error
	for _, c := range d.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
