package buffer_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/internal/infrastructure/buffer"
)

func openStore(t *testing.T) *buffer.Store {
	t.Helper()
	store, err := buffer.Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func item(id string, priority int) buffer.Item {
	return buffer.Item{
		ID:        id,
		Entity:    buffer.EntityAcuerdo,
		Operation: buffer.OperationCreate,
		Data:      json.RawMessage(`{"id":"` + id + `"}`),
		Priority:  priority,
		Timestamp: time.Now(),
	}
}

func TestStore_EnqueueAndSize(t *testing.T) {
	store := openStore(t)

	size, err := store.Size()
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, store.Enqueue(item("a", 3)))
	require.NoError(t, store.Enqueue(item("b", 3)))

	size, err = store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestStore_GetBatch_PriorityOrder(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Enqueue(item("low", 5)))
	require.NoError(t, store.Enqueue(item("high", 1)))
	require.NoError(t, store.Enqueue(item("mid", 3)))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "high", items[0].ID)
	assert.Equal(t, "mid", items[1].ID)
	assert.Equal(t, "low", items[2].ID)
}

func TestStore_GetBatch_RespectsLimit(t *testing.T) {
	store := openStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Enqueue(item(id, 3)))
	}

	items, err := store.GetBatch(2)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// GetBatch does not consume.
	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size)
}

func TestStore_Remove(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Enqueue(item("a", 3)))
	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, store.Remove(items[0]))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestStore_Requeue_BumpsTimestamp(t *testing.T) {
	store := openStore(t)

	stale := item("a", 3)
	stale.Timestamp = time.Now().Add(-time.Hour)
	require.NoError(t, store.Enqueue(stale))

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NoError(t, store.Remove(items[0]))

	items[0].Retries++
	require.NoError(t, store.Requeue(items[0]))

	requeued, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, requeued, 1)
	assert.Equal(t, 1, requeued[0].Retries)
	assert.True(t, requeued[0].Timestamp.After(stale.Timestamp))
}

func TestStore_Cleanup(t *testing.T) {
	store := openStore(t)

	old := item("old", 3)
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	require.NoError(t, store.Enqueue(old))
	require.NoError(t, store.Enqueue(item("fresh", 3)))

	require.NoError(t, store.Cleanup(time.Now().Add(-24*time.Hour)))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buffer.db")

	store, err := buffer.Open(path, "buffer")
	require.NoError(t, err)
	require.NoError(t, store.Enqueue(item("a", 3)))
	require.NoError(t, store.Close())

	reopened, err := buffer.Open(path, "buffer")
	require.NoError(t, err)
	defer reopened.Close()

	size, err := reopened.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}
