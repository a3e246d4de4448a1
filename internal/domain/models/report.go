package models

import "time"

// Digest summarizes a page of synthesized purchase orders for operators.
type Digest struct {
	Variant          string             `json:"variant"`
	GeneratedAt      time.Time          `json:"generated_at"`
	Orders           int                `json:"orders"`
	LineItems        int                `json:"line_items"`
	StatusCounts     map[string]int     `json:"status_counts"`
	TotalsByCurrency map[string]float64 `json:"totals_by_currency"`
	TopSupplier      string             `json:"top_supplier"`
	TopSupplierShare float64            `json:"top_supplier_share"`
	EarliestCreated  string             `json:"earliest_created"`
	LatestCreated    string             `json:"latest_created"`
}
