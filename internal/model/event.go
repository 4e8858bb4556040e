package model

// Health event lifecycle states.
const (
	EventUpcoming  = "upcoming"
	EventOngoing   = "ongoing"
	EventCompleted = "completed"
	EventCancelled = "cancelled"
)

// ValidEventStatus reports whether s is a known lifecycle state.
func ValidEventStatus(s string) bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// HealthEvent mirrors the 'health_events' table. AssignedMembers is a
// comma-joined TEXT column of member names.
type HealthEvent struct {
	ID              uint64   `json:"id"`
	SHGID           string   `json:"shg_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	AssignedMembers []string `json:"assigned_members"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}
