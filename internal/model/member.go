package model

import "strings"

// Member roles within an SHG, as shown on the roster page.
const (
	MemberRoleLeader         = "leader"
	MemberRoleHealthEducator = "health_educator"
	MemberRoleSupplyHandler  = "supply_handler"
	MemberRoleFinanceManager = "finance_manager"
	MemberRoleGeneral        = "general_member"
)

// ValidMemberRole reports whether s is one of the roster roles.
func ValidMemberRole(s string) bool {
	switch s {
	case MemberRoleLeader, MemberRoleHealthEducator, MemberRoleSupplyHandler,
		MemberRoleFinanceManager, MemberRoleGeneral:
		return true
	}
	return false
}

// Member mirrors the 'members' table. Skills are stored as a comma-joined
// TEXT column and split on read.
type Member struct {
	ID         uint64   `json:"id"`
	SHGID      string   `json:"shg_id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	JoinedDate string   `json:"joined_date"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// JoinList flattens a string slice into the comma-joined form used by the
// TEXT list columns. Items are trimmed and empty entries dropped.
func JoinList(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return strings.Join(out, ",")
}

// SplitList is the inverse of JoinList. An empty column yields an empty
// slice, not a one-element slice holding "".
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
