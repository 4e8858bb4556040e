// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into notifications.
package queue

// Queue names. One durable queue per event type.
const (
	EventScheduledQueue = "event.scheduled"
	ResetRequestedQueue = "auth.reset_requested"
)

// EventScheduledEvent is published when a health event is created. It
// carries enough for downstream consumers to notify assigned members
// without querying the primary database.
type EventScheduledEvent struct {
	EventID         uint64   `json:"event_id"`
	SHGID           string   `json:"shg_id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	AssignedMembers []string `json:"assigned_members"`
	ScheduledBy     uint64   `json:"scheduled_by"`
	ScheduledAt     string   `json:"scheduled_at"`
}

// ResetRequestedEvent is published when a password reset is requested for
// an existing account. The raw token rides along so an out-of-band mailer
// can deliver it; it is never written to the primary database.
type ResetRequestedEvent struct {
	UserID      uint64 `json:"user_id"`
	Email       string `json:"email"`
	ResetToken  string `json:"reset_token"`
	ExpiresAt   string `json:"expires_at"`
	RequestedAt string `json:"requested_at"`
}
