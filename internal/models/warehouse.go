package models

// Warehouse represents a storage site owning an inventory ledger.
// The id is generated on registration.
type Warehouse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Location  string           `json:"location"`
	Capacity  int              `json:"capacity"`
	Inventory []InventoryEntry `json:"inventory,omitempty"`
}

// InventoryEntry is one (productId, quantity) pairing in a warehouse's
// ledger. At most one entry per product exists in a given warehouse;
// restocking merges into the existing entry and keeps its id.
type InventoryEntry struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
