package numbering

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

var errKeyMissing = errors.New("key missing")

// memStore is an in-memory Store for allocator tests.
type memStore struct {
	mu       sync.Mutex
	counters map[string]int64
	schemas  map[string]string
}

func (m *memStore) Counter(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok {
		return 0, errKeyMissing
	}

	return c, nil
}

func (m *memStore) IncrementCounter(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.counters[key]; !ok {
		return errKeyMissing
	}

	m.counters[key]++

	return nil
}

func (m *memStore) Allocate(key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok {
		return 0, errKeyMissing
	}

	m.counters[key] = c + 1

	return c, nil
}

func (m *memStore) Schema(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.schemas[key]
	if !ok {
		return "", errKeyMissing
	}

	return s, nil
}

func newTestAllocator(counter int64, schema string) (*Allocator, *memStore) {
	store := &memStore{
		counters: map[string]int64{"CUSTOMER_ID_COUNTER": counter},
		schemas:  map[string]string{"CUSTOMER_ID_SCHEMA": schema},
	}

	a := New(store, "CUSTOMER_ID_COUNTER", "CUSTOMER_ID_SCHEMA")
	a.now = func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	return a, store
}

func TestNextAvailableIDIsIdempotent(t *testing.T) {
	a, store := newTestAllocator(100001, "C%YYYY%COUNTER")

	first, err := a.NextAvailableID()
	if err != nil {
		t.Fatal(err)
	}

	second, err := a.NextAvailableID()
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Fatalf("peek mutated state: %q != %q", first, second)
	}

	if first != "C2026100001" {
		t.Fatalf("want C2026100001, got %q", first)
	}

	if store.counters["CUSTOMER_ID_COUNTER"] != 100001 {
		t.Fatalf("peek must not advance the counter")
	}
}

func TestIncreaseCounterAdvancesNextID(t *testing.T) {
	a, _ := newTestAllocator(100001, "C%YYYY%COUNTER")

	if err := a.IncreaseCounter(); err != nil {
		t.Fatal(err)
	}

	got, err := a.NextAvailableID()
	if err != nil {
		t.Fatal(err)
	}

	if got != "C2026100002" {
		t.Fatalf("want C2026100002, got %q", got)
	}
}

func TestAllocateIDConcurrent(t *testing.T) {
	const n = 50

	a, store := newTestAllocator(100001, "C%YYYY%COUNTER")

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]bool, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id, err := a.AllocateID()
			if err != nil {
				t.Error(err)
				return
			}

			mu.Lock()
			ids[id] = true
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(ids) != n {
		t.Fatalf("want %d distinct ids, got %d", n, len(ids))
	}

	if got := store.counters["CUSTOMER_ID_COUNTER"]; got != 100001+n {
		t.Fatalf("want counter %d, got %d", 100001+n, got)
	}

	for i := int64(100001); i < 100001+n; i++ {
		if !ids[fmt.Sprintf("C2026%d", i)] {
			t.Fatalf("missing id for counter %d", i)
		}
	}
}

func TestAllocatorMissingKeys(t *testing.T) {
	store := &memStore{counters: map[string]int64{}, schemas: map[string]string{}}
	a := New(store, "CUSTOMER_ID_COUNTER", "CUSTOMER_ID_SCHEMA")

	if _, err := a.NextAvailableID(); !errors.Is(err, errKeyMissing) {
		t.Fatalf("want key missing error, got %v", err)
	}

	if _, err := a.AllocateID(); !errors.Is(err, errKeyMissing) {
		t.Fatalf("want key missing error, got %v", err)
	}

	if err := a.IncreaseCounter(); !errors.Is(err, errKeyMissing) {
		t.Fatalf("want key missing error, got %v", err)
	}
}
