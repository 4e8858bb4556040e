package model

// Scheme mirrors the 'schemes' table: government-scheme reference content
// seeded by migrations and served read-only.
type Scheme struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Beneficiaries      string   `json:"beneficiaries"`
	Eligibility        string   `json:"eligibility"`
	Benefits           string   `json:"benefits"`
	ApplicationProcess string   `json:"application_process"`
	Documents          []string `json:"documents"`
	Website            string   `json:"website"`
	Ministry           string   `json:"ministry"`
	Status             string   `json:"status"`
	LastUpdated        string   `json:"last_updated"`
}
