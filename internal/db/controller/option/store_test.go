package option

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	db := setupTestDB(t)

	require.NoError(t, (&CounterValue{Counter: 100001}).Save(db, "CUSTOMER_ID_COUNTER"))
	require.NoError(t, (&SchemaValue{Schema: "C%YYYY%COUNTER"}).Save(db, "CUSTOMER_ID_SCHEMA"))

	store, err := NewStore(db)
	require.NoError(t, err)

	return store
}

func TestNewStoreNilDB(t *testing.T) {
	store, err := NewStore(nil)
	require.ErrorIs(t, err, ErrDBNil)
	assert.Nil(t, store)
}

func TestStoreCounterAndSchema(t *testing.T) {
	store := setupTestStore(t)

	counter, err := store.Counter("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100001), counter)

	schema, err := store.Schema("CUSTOMER_ID_SCHEMA")
	require.NoError(t, err)
	assert.Equal(t, "C%YYYY%COUNTER", schema)

	_, err = store.Counter("MISSING")
	require.ErrorIs(t, err, ErrOptionNotFound)

	_, err = store.Schema("MISSING")
	require.ErrorIs(t, err, ErrOptionNotFound)
}

func TestStoreIncrementCounter(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.IncrementCounter("CUSTOMER_ID_COUNTER"))

	counter, err := store.Counter("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100002), counter)

	require.ErrorIs(t, store.IncrementCounter("MISSING"), ErrOptionNotFound)
}

func TestStoreAllocate(t *testing.T) {
	store := setupTestStore(t)

	reserved, err := store.Allocate("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100001), reserved)

	reserved, err = store.Allocate("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100002), reserved)

	counter, err := store.Counter("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100003), counter)

	_, err = store.Allocate("MISSING")
	require.ErrorIs(t, err, ErrOptionNotFound)
}

func TestStoreAllocateConcurrent(t *testing.T) {
	const n = 25

	store := setupTestStore(t)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		reserved = make(map[int64]bool, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			v, err := store.Allocate("CUSTOMER_ID_COUNTER")
			if err != nil {
				t.Error(err)
				return
			}

			mu.Lock()
			reserved[v] = true
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, reserved, n, "every allocation must reserve a distinct value")

	counter, err := store.Counter("CUSTOMER_ID_COUNTER")
	require.NoError(t, err)
	assert.Equal(t, int64(100001+n), counter)
}
