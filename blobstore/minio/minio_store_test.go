package minio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rangeintern/blobstore"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestNew(t *testing.T) {
	store, err := New("localhost:9000", "minioadmin", "minioadmin", false, "corpora")
	require.NoError(t, err)
	assert.Equal(t, "corpora", store.bucket)
	assert.Equal(t, "a/b.txt", store.key("a/b.txt"))

	_, err = New("http://localhost:9000", "k", "s", false, "corpora")
	assert.Error(t, err, "endpoints must not carry a scheme")
}

func TestStore_Key(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"", "a//x.txt", "a//x.txt"},
		{"", "x/../y.txt", "x/../y.txt"},
		{"", "dir/", "dir/"},
		{"prefix", "a//x.txt", "prefix/a//x.txt"},
		{"prefix/", "x.txt", "prefix/x.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix+"|"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewStore(nil, "b", tt.prefix).key(tt.name))
		})
	}
}

func TestStore_OpenMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
			`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message>`+
			`<Key>prefix/missing.txt</Key><BucketName>corpora</BucketName></Error>`)
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	client, err := minio.New(u.Host, &minio.Options{
		Creds:        credentials.NewStaticV4("k", "s", ""),
		Region:       "us-east-1",
		BucketLookup: minio.BucketLookupPath,
	})
	require.NoError(t, err)

	store := NewStore(client, "corpora", "prefix")
	_, err = store.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

// TestMinioStore_Integration requires a running MinIO instance with an
// object "words.txt" in bucket "test-rangeintern".
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	store, err := New("localhost:9000", "minioadmin", "minioadmin", false, "test-rangeintern")
	require.NoError(t, err)

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}
	exists, err := store.client.BucketExists(ctx, store.bucket)
	if err != nil || !exists {
		t.Skip("MinIO bucket test-rangeintern not available")
	}

	rc, err := store.Open(ctx, "words.txt")
	if errors.Is(err, blobstore.ErrNotFound) {
		t.Skip("words.txt not seeded")
	}
	require.NoError(t, err)
	defer rc.Close()

	_, err = io.Copy(io.Discard, rc)
	require.NoError(t, err)
}
