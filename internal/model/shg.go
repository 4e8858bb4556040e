package model

// SHG mirrors the 'shgs' table: the self-help-group collective that members
// and profiles reference by id.
type SHG struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Village   string `json:"village"`
	Block     string `json:"block"`
	District  string `json:"district"`
	State     string `json:"state"`
	AdminID   uint64 `json:"admin_id,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
