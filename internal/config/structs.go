package config

import (
	"github.com/wodanio-group/bos/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Numbering Numbering
}

// Sequence holds the first counter value and the schema template for one
// business-ID class. Both are only seeded once; a deployed database keeps
// its own values afterwards.
type Sequence struct {
	CounterStart int64
	Schema       string
}

// Numbering holds the seed values for the business-ID sequences.
type Numbering struct {
	Customer Sequence
	Quote    Sequence
}

// Seed defaults, matching the values the original deployment was
// provisioned with.
const (
	DefaultCustomerCounterStart int64 = 100001
	DefaultCustomerSchema             = "C%YYYY%COUNTER"
	DefaultQuoteCounterStart    int64 = 10001
	DefaultQuoteSchema                = "Q%YYYY%MM%COUNTER"
)
