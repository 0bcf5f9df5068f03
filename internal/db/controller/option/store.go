package option

import (
	"sync"

	"gorm.io/gorm"
)

// Store gives the numbering allocator typed access to counter and schema
// options. Counter advances run in a single transaction behind a store
// lock, so concurrent allocations never hand out the same value.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewStore creates a Store on top of the given database connection.
func NewStore(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	return &Store{db: db}, nil
}

// Counter returns the current counter value without advancing it.
func (s *Store) Counter(key string) (int64, error) {
	var v CounterValue
	if err := v.Load(s.db, key); err != nil {
		return 0, err
	}

	return v.Counter, nil
}

// Schema returns the schema template stored under key.
func (s *Store) Schema(key string) (string, error) {
	var v SchemaValue
	if err := v.Load(s.db, key); err != nil {
		return "", err
	}

	return v.Schema, nil
}

// IncrementCounter advances the counter by one.
func (s *Store) IncrementCounter(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var v CounterValue
		if err := v.Load(tx, key); err != nil {
			return err
		}

		v.Counter++

		return v.Save(tx, key)
	})
}

// Allocate reserves and returns the current counter value, leaving the
// stored counter advanced by one. Read and advance happen in one
// transaction under the store lock: N concurrent calls return N distinct
// values and leave the counter at initial+N.
func (s *Store) Allocate(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reserved int64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var v CounterValue
		if err := v.Load(tx, key); err != nil {
			return err
		}

		reserved = v.Counter
		v.Counter++

		return v.Save(tx, key)
	})
	if err != nil {
		return 0, err
	}

	return reserved, nil
}
