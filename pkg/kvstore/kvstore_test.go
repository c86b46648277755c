package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "a", "2"))

	v, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Delete is idempotent.
	require.NoError(t, store.Delete(ctx, "a"))

	require.NoError(t, store.Set(ctx, "x", "1"))
	require.NoError(t, store.Set(ctx, "y", "2"))
	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
