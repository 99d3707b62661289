package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "things", "a", []byte(`{"v":1}`)))

	doc, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(doc))

	exists, err := store.Exists(ctx, "things", "a")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStore_InsertDuplicate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "things", "a", []byte(`{"v":1}`)))
	err := store.Insert(ctx, "things", "a", []byte(`{"v":2}`))
	assert.ErrorIs(t, err, ErrKeyExists)

	// the losing insert must not overwrite
	doc, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(doc))
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "things", "nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_SaveUpserts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "things", "a", []byte(`{"v":1}`)))
	require.NoError(t, store.Save(ctx, "things", "a", []byte(`{"v":2}`)))

	doc, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(doc))
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "things", "a", []byte(`{"v":1}`)))
	require.NoError(t, store.Delete(ctx, "things", "a"))

	_, err := store.Get(ctx, "things", "a")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "things", "a"), ErrKeyNotFound)
}

func TestMemoryStore_FindByField(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "sources", "1", []byte(`{"createdBy":"john","name":"one"}`)))
	require.NoError(t, store.Insert(ctx, "sources", "2", []byte(`{"createdBy":"jane","name":"two"}`)))
	require.NoError(t, store.Insert(ctx, "sources", "3", []byte(`{"createdBy":"john","name":"three"}`)))

	docs, err := store.FindByField(ctx, "sources", "createdBy", "john")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestMemoryStore_FindByFieldNoMatch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	docs, err := store.FindByField(ctx, "sources", "createdBy", "nobody")
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, "things", "a", []byte(`{"v":1}`)))

	doc, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	doc[0] = 'X'

	fresh, err := store.Get(ctx, "things", "a")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(fresh))
}
