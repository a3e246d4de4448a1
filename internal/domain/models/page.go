package models

// Filter holds the optional constraints a listing request can apply. Empty fields
// impose no constraint.
type Filter struct {
	Supplier    string
	Status      string
	CompanyCode string
	StartDate   string // inclusive, YYYY-MM-DD
	EndDate     string // inclusive, YYYY-MM-DD
}

// Matches reports whether the purchase order satisfies every populated field.
// Date bounds compare the ISO formatted strings lexicographically.
func (f Filter) Matches(po PurchaseOrder) bool {
	if f.CompanyCode != "" && po.CompanyCode != f.CompanyCode {
		return false
	}
	if f.Supplier != "" && po.SupplierID != f.Supplier {
		return false
	}
	if f.Status != "" && string(po.Status) != f.Status {
		return false
	}
	if f.StartDate != "" && po.CreatedDate < f.StartDate {
		return false
	}
	if f.EndDate != "" && po.CreatedDate > f.EndDate {
		return false
	}
	return true
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Pagination is the envelope metadata returned alongside a page of records.
// Total is a fixed figure used to drive paging UIs, not a real count.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Page is the response body of the purchase order listing.
type Page struct {
	Data       []PurchaseOrder `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// NewPagination builds the envelope for the given window over a fixed total.
func NewPagination(total, limit, offset int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}
}
