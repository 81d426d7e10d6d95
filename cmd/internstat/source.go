package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/rangeintern/blobstore"
	"github.com/hupe1980/rangeintern/blobstore/minio"
	"github.com/hupe1980/rangeintern/blobstore/s3"
)

// source is an input argument resolved to a store and a name inside it.
type source struct {
	input string
	store blobstore.Store
	name  string
}

// resolver turns input arguments into sources, sharing one store per bucket.
type resolver struct {
	cfg    config
	stdin  io.Reader
	local  *blobstore.LocalStore
	stores map[string]blobstore.Store
	usedIn bool
}

func newResolver(cfg config, stdin io.Reader) *resolver {
	return &resolver{
		cfg:    cfg,
		stdin:  stdin,
		local:  blobstore.NewLocalStore(""),
		stores: make(map[string]blobstore.Store),
	}
}

// splitURL splits "scheme://bucket/key" into its parts. ok is false for
// inputs without a scheme.
func splitURL(input string) (scheme, bucket, key string, ok bool, err error) {
	scheme, rest, found := strings.Cut(input, "://")
	if !found {
		return "", "", "", false, nil
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", "", true, fmt.Errorf("input %q: want %s://bucket/key", input, scheme)
	}
	return scheme, bucket, key, true, nil
}

func (r *resolver) resolve(ctx context.Context, input string) (source, error) {
	if input == "-" {
		if r.usedIn {
			return source{}, errors.New(`stdin ("-") can only be read once`)
		}
		r.usedIn = true
		return source{input: input, store: stdinStore{r.stdin}, name: input}, nil
	}

	scheme, bucket, key, ok, err := splitURL(input)
	if err != nil {
		return source{}, err
	}
	if !ok {
		return source{input: input, store: r.local, name: input}, nil
	}

	id := scheme + "://" + bucket
	store, cached := r.stores[id]
	if !cached {
		switch scheme {
		case "s3":
			var opts []s3.Option
			if r.cfg.s3Region != "" {
				opts = append(opts, s3.WithRegion(r.cfg.s3Region))
			}
			if r.cfg.s3Endpoint != "" {
				opts = append(opts, s3.WithEndpoint(r.cfg.s3Endpoint))
			}
			store, err = s3.New(ctx, bucket, opts...)
		case "minio":
			store, err = minio.New(r.cfg.minioEndpoint, r.cfg.minioAccessKey, r.cfg.minioSecretKey, r.cfg.minioSecure, bucket)
		default:
			return source{}, fmt.Errorf("input %q: unsupported scheme %q", input, scheme)
		}
		if err != nil {
			return source{}, err
		}
		r.stores[id] = store
	}
	return source{input: input, store: store, name: key}, nil
}

// stdinStore serves the single stdin input.
type stdinStore struct {
	r io.Reader
}

func (s stdinStore) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}
