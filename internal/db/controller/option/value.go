package option

import (
	"encoding/json"

	"gorm.io/gorm"
)

type (
	// CounterValue is the JSON document of a counter option,
	// e.g. {"counter": 100001}.
	CounterValue struct {
		Counter int64 `json:"counter"`
	}

	// SchemaValue is the JSON document of a schema option,
	// e.g. {"schema": "C%YYYY%COUNTER"}.
	SchemaValue struct {
		Schema string `json:"schema"`
	}
)

// Load reads the counter option stored under key.
func (c *CounterValue) Load(db *gorm.DB, key string) error {
	opt, err := Get(db, key)
	if err != nil {
		return err
	}

	return json.Unmarshal(opt.Value, c)
}

// Save upserts the counter option under key.
func (c *CounterValue) Save(db *gorm.DB, key string) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	_, err = Set(db, key, data)

	return err
}

// Load reads the schema option stored under key.
func (s *SchemaValue) Load(db *gorm.DB, key string) error {
	opt, err := Get(db, key)
	if err != nil {
		return err
	}

	return json.Unmarshal(opt.Value, s)
}

// Save upserts the schema option under key.
func (s *SchemaValue) Save(db *gorm.DB, key string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	_, err = Set(db, key, data)

	return err
}
