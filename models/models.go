package models

// Category groups menu items on the ordering screen.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogItem is a single product on the fixed menu. Price is in whole
// currency units (no cents at a breakfast shop).
type CatalogItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"cat"`
}

// CartLine is one line in a cart or staging order: an item plus its
// customization note. Lines with the same item but different notes stay
// separate.
type CartLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"qty"`
	Note     string `json:"note,omitempty"`
}

// Service types for a finalized order.
const (
	ServiceDineIn  = "dineIn"
	ServiceTakeOut = "takeOut"
)

// Kanban statuses, in lifecycle order.
const (
	StatusNew     = "new"
	StatusMaking  = "making"
	StatusDone    = "done"
	StatusHistory = "history"
)

// Order is a finalized ledger entry. Lines are frozen at submission and keyed
// by composite key (itemId, or itemId|note).
type Order struct {
	ID          int                 `json:"id"`
	Lines       map[string]CartLine `json:"items"`
	Total       int                 `json:"totalAmount"`
	TotalText   string              `json:"total"`
	ServiceType string              `json:"type"`
	TableNumber *string             `json:"tableNumber"`
	Status      string              `json:"status"`
	Cancelled   bool                `json:"cancelled,omitempty"`
	Time        string              `json:"time"`
}

// Reservation is an online pickup pre-order placed from the customer menu.
type Reservation struct {
	Number     string              `json:"number"`
	Name       string              `json:"name"`
	Phone      string              `json:"phone"` // last 3 digits only
	PickupTime string              `json:"pickupTime"`
	Lines      map[string]CartLine `json:"items"`
	Total      int                 `json:"totalAmount"`
	TotalText  string              `json:"total"`
	CreatedAt  int64               `json:"createdAt"`
}
