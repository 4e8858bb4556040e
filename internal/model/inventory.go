package model

// InventoryItem mirrors the 'inventory_items' table. An item is "low" when
// quantity has fallen to or below its reorder level; that comparison is the
// whole of the stock logic.
type InventoryItem struct {
	ID           uint64 `json:"id"`
	SHGID        string `json:"shg_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ReorderLevel int    `json:"reorder_level"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Low reports whether the item has reached its reorder level.
func (i InventoryItem) Low() bool { return i.Quantity <= i.ReorderLevel }
