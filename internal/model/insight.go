package model

// HealthInsight mirrors the 'health_insights' table: a household symptom
// report filed by a worker during a visit.
type HealthInsight struct {
	ID         uint64   `json:"id"`
	SHGID      string   `json:"shg_id"`
	Date       string   `json:"date"`
	ReportedBy string   `json:"reported_by"`
	Household  string   `json:"household"`
	Symptoms   []string `json:"symptoms"`
	Notes      string   `json:"notes"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}
