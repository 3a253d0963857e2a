package model

// CartItem is a persisted ledger entry. Quantity is always >= 1; an entry
// whose quantity would drop to zero is removed, never stored.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLine pairs a ledger entry with its resolved product for rendering.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the ledger in insertion order plus derived totals.
type Cart struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}
