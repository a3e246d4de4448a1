package models

// OrderStatus enumerates the lifecycle states a synthesized purchase order can report.
type OrderStatus string

const (
	StatusReleased OrderStatus = "Released"
	StatusPending  OrderStatus = "Pending"
	StatusApproved OrderStatus = "Approved"
)

// ItemTemplate describes one catalog entry a line item can be drawn from.
type ItemTemplate struct {
	Description   string
	MaterialGroup string
	Unit          string
	PriceLow      float64
	PriceHigh     float64
}

// LineItem is one material/quantity/price entry within a purchase order.
type LineItem struct {
	ItemNumber     int     `json:"item_number"`
	ProductID      int     `json:"product_id"` // display only, collisions are expected
	Description    string  `json:"description"`
	Plant          string  `json:"plant"`
	MaterialGroup  string  `json:"material_group"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitPrice      float64 `json:"unit_price"`
	NetValue       float64 `json:"net_value"`
	GrossValue     float64 `json:"gross_value"`
	EffectiveValue float64 `json:"effective_value"`
}

// PurchaseOrder is a synthesized procurement document header with its line items.
type PurchaseOrder struct {
	PurchaseOrderID string      `json:"purchase_order_id"`
	CompanyCode     string      `json:"company_code"`
	DocCategory     string      `json:"doc_category"`
	DocType         string      `json:"doc_type"`
	Status          OrderStatus `json:"status"`
	CreatedDate     string      `json:"created_date"`
	CreatedBy       string      `json:"created_by"`
	LastModified    string      `json:"last_modified"`
	SupplierID      string      `json:"supplier_id"`
	PurchasingOrg   string      `json:"purchasing_org"`
	PurchasingGroup string      `json:"purchasing_group"`
	TotalValue      float64     `json:"total_value"`
	Currency        string      `json:"currency"`
	Items           []LineItem  `json:"items"`
}
