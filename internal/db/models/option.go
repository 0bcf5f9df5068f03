// Package models contains database model definitions.
package models

import "time"

// Option represents a business configuration record stored in the
// database. The value is a JSON document, e.g. {"counter": 100001} or
// {"schema": "C%YYYY%COUNTER"}. Option rows are seeded at first start
// and never deleted in normal operation.
type Option struct {
	ID        uint64 `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}
