package model

import "time"

// Profile mirrors the 'profiles' table: the application-level record keyed
// by the identity's user id. Created once at registration and merged
// field-by-field afterwards.
type Profile struct {
	UserID            uint64    `json:"user_id"`
	Email             string    `json:"email"`
	DisplayName       string    `json:"display_name"`
	Phone             string    `json:"phone"`
	Role              string    `json:"role"`
	SHGID             string    `json:"shg_id"`
	PhotoURL          string    `json:"photo_url,omitempty"`
	District          string    `json:"district,omitempty"`
	State             string    `json:"state,omitempty"`
	Address           string    `json:"address,omitempty"`
	Qualifications    string    `json:"qualifications,omitempty"`
	JoinDate          string    `json:"join_date,omitempty"`
	SupervisorName    string    `json:"supervisor_name,omitempty"`
	SupervisorContact string    `json:"supervisor_contact,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProfilePatch is a merge patch: nil fields are left untouched, non-nil
// fields replace the stored value. Email, role and user id are not
// patchable through the profile endpoint.
type ProfilePatch struct {
	DisplayName       *string `json:"display_name"`
	Phone             *string `json:"phone"`
	SHGID             *string `json:"shg_id"`
	PhotoURL          *string `json:"photo_url"`
	District          *string `json:"district"`
	State             *string `json:"state"`
	Address           *string `json:"address"`
	Qualifications    *string `json:"qualifications"`
	JoinDate          *string `json:"join_date"`
	SupervisorName    *string `json:"supervisor_name"`
	SupervisorContact *string `json:"supervisor_contact"`
}

// Empty reports whether the patch carries no fields at all.
func (p ProfilePatch) Empty() bool {
	return p.DisplayName == nil && p.Phone == nil && p.SHGID == nil &&
		p.PhotoURL == nil && p.District == nil && p.State == nil &&
		p.Address == nil && p.Qualifications == nil && p.JoinDate == nil &&
		p.SupervisorName == nil && p.SupervisorContact == nil
}

// Session pairs the identity with its profile for the /v1/me snapshot. The
// profile is never present without the identity.
type Session struct {
	User    User     `json:"user"`
	Profile *Profile `json:"profile"`
}
