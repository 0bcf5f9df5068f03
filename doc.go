// Package main provides the entry point for the bos business backend.
// It ships the numbering and quote-totals core of the CRM: sequential
// business IDs (customer and quote numbers) allocated from persisted
// counters and schema templates, and deterministic subtotal/tax/total
// arithmetic for quote line items. The application uses gorm for data
// persistence and seeds its option records at first start.
package main
