package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("hello")
	store.Put("a/one", data)
	store.Put("a/two", []byte("world"))
	store.Put("b/three", nil)
	data[0] = 'J'

	rc, err := store.Open(ctx, "a/one")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "hello", string(got), "Put must copy")

	assert.Equal(t, []string{"a/one", "a/two"}, store.List("a/"))
	assert.Len(t, store.List(""), 3)

	store.Delete("a/one")
	_, err = store.Open(ctx, "a/one")
	assert.ErrorIs(t, err, ErrNotFound)
}
