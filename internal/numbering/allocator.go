package numbering

import (
	"time"
)

// CounterStore reads and advances persisted business-ID counters.
type CounterStore interface {
	Counter(key string) (int64, error)
	IncrementCounter(key string) error
	Allocate(key string) (int64, error)
}

// SchemaStore reads persisted schema templates.
type SchemaStore interface {
	Schema(key string) (string, error)
}

// Store combines counter and schema access.
type Store interface {
	CounterStore
	SchemaStore
}

// Allocator produces business IDs for one entity class, e.g. customers
// or quotes. The two option keys name the counter and schema records the
// class is backed by.
type Allocator struct {
	store      Store
	counterKey string
	schemaKey  string
	now        func() time.Time
}

// New creates an Allocator bound to the given option keys.
func New(store Store, counterKey, schemaKey string) *Allocator {
	return &Allocator{
		store:      store,
		counterKey: counterKey,
		schemaKey:  schemaKey,
		now:        time.Now,
	}
}

// NextAvailableID returns the ID the next allocation would produce.
// It only reads; calling it repeatedly yields the same result until the
// counter advances.
func (a *Allocator) NextAvailableID() (string, error) {
	schema, err := a.store.Schema(a.schemaKey)
	if err != nil {
		return "", err
	}

	counter, err := a.store.Counter(a.counterKey)
	if err != nil {
		return "", err
	}

	return Render(schema, a.now(), counter), nil
}

// IncreaseCounter advances the counter by one. Callers on the two-step
// NextAvailableID/IncreaseCounter flow must advance only after the
// generated ID has been committed to its entity.
func (a *Allocator) IncreaseCounter() error {
	return a.store.IncrementCounter(a.counterKey)
}

// AllocateID atomically reserves the current counter value and returns
// the rendered ID. Unlike the two-step flow it cannot hand the same ID
// to two concurrent callers.
func (a *Allocator) AllocateID() (string, error) {
	schema, err := a.store.Schema(a.schemaKey)
	if err != nil {
		return "", err
	}

	counter, err := a.store.Allocate(a.counterKey)
	if err != nil {
		return "", err
	}

	return Render(schema, a.now(), counter), nil
}
