package models

import "time"

// Quote statuses as stored in the database.
const (
	QuoteStatusDraft    = "DRAFT"
	QuoteStatusSent     = "SENT"
	QuoteStatusAccepted = "ACCEPTED"
	QuoteStatusRejected = "REJECTED"
)

// Quote aggregates line items under one business quote number.
// Subtotal, Tax and Total are derived from the items; the item set is
// replaced wholesale on update, never diffed, and the derived fields
// must be recomputed whenever it changes.
type Quote struct {
	ID              uint64 `gorm:"primaryKey"`
	Status          string `gorm:"not null;default:DRAFT"`
	Number          string `gorm:"uniqueIndex"` // business quote ID from the allocator
	QuoteDate       time.Time
	QuoteValidUntil *time.Time
	IntroText       *string
	OutroText       *string
	Subtotal        float64
	Tax             float64
	Total           float64
	CompanyID       uint64
	OwnerID         *uint64
	Items           []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// QuoteItem is a single line item of a quote. Subtotal, Tax and Total
// are derived from quantity, price and tax rate. The tax rate is a
// fraction, e.g. 0.19 for 19%.
type QuoteItem struct {
	ID            uint64 `gorm:"primaryKey"`
	QuoteID       uint64 `gorm:"index"`
	QuotePosition int
	Title         string `gorm:"not null"`
	Description   *string
	Quantity      float64
	Unit          *string
	Price         float64
	TaxRate       float64
	Subtotal      float64
	Tax           float64
	Total         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
