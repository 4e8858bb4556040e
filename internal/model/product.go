package model

// Product mirrors the 'products' table for the SHG marketplace. Images is a
// comma-joined TEXT column of URLs.
type Product struct {
	ID                uint64   `json:"id"`
	SHGID             string   `json:"shg_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Category          string   `json:"category"`
	Images            []string `json:"images"`
	AvailableQuantity int      `json:"available_quantity"`
	Unit              string   `json:"unit"`
	CreatedBy         string   `json:"created_by"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}
