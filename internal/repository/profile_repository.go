package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// ProfileRepo persists profile documents in the 'profiles' table, keyed by
// the identity's user id. Writes to a single profile are serialized with a
// per-id mutex so overlapping merge patches apply one at a time and the
// read-back always reflects a single last writer.
type ProfileRepo struct {
	DB    *sql.DB
	locks keyedLocks
}

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

const profileCols = `user_id,email,display_name,phone,role,shg_id,photo_url,district,state,
	address,qualifications,join_date,supervisor_name,supervisor_contact,created_at,updated_at`

// Create inserts the profile document written at registration.
func (r *ProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email, display_name, phone, role, shg_id, join_date)
		 VALUES (?,?,?,?,?,?,?)`,
		p.UserID, strings.ToLower(strings.TrimSpace(p.Email)), p.DisplayName,
		p.Phone, p.Role, p.SHGID, p.JoinDate)
	if isDuplicate(err) {
		return ErrConflict
	}
	return err
}

// GetByUserID fetches the profile document for an identity.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uint64) (model.Profile, error) {
	var p model.Profile
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+profileCols+" FROM profiles WHERE user_id=? LIMIT 1",
		userID).Scan(
		&p.UserID, &p.Email, &p.DisplayName, &p.Phone, &p.Role, &p.SHGID,
		&p.PhotoURL, &p.District, &p.State, &p.Address, &p.Qualifications,
		&p.JoinDate, &p.SupervisorName, &p.SupervisorContact,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrNotFound
	}
	return p, err
}

// Patch applies a merge patch: only non-nil fields are written. The whole
// write-then-read sequence runs under the user's lock, and the refreshed
// document is returned (read-after-write, not optimistic).
func (r *ProfileRepo) Patch(ctx context.Context, userID uint64, patch model.ProfilePatch) (model.Profile, error) {
	unlock := r.locks.lock(userID)
	defer unlock()

	set := []string{}
	args := []any{}
	add := func(col string, v *string) {
		if v != nil {
			set = append(set, col+"=?")
			args = append(args, strings.TrimSpace(*v))
		}
	}
	add("display_name", patch.DisplayName)
	add("phone", patch.Phone)
	add("shg_id", patch.SHGID)
	add("photo_url", patch.PhotoURL)
	add("district", patch.District)
	add("state", patch.State)
	add("address", patch.Address)
	add("qualifications", patch.Qualifications)
	add("join_date", patch.JoinDate)
	add("supervisor_name", patch.SupervisorName)
	add("supervisor_contact", patch.SupervisorContact)

	if len(set) > 0 {
		args = append(args, userID)
		res, err := r.DB.ExecContext(ctx,
			"UPDATE profiles SET "+strings.Join(set, ", ")+" WHERE user_id=?", args...)
		if err != nil {
			return model.Profile{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			// Distinguish "no such profile" from "values already current".
			if _, err := r.GetByUserID(ctx, userID); err != nil {
				return model.Profile{}, err
			}
		}
	}
	return r.GetByUserID(ctx, userID)
}

// keyedLocks hands out one mutex per user id. Entries are never reclaimed;
// the map is bounded by the number of users who patched their profile
// during the process lifetime.
type keyedLocks struct {
	mu sync.Mutex
	m  map[uint64]*sync.Mutex
}

func (k *keyedLocks) lock(id uint64) (unlock func()) {
	k.mu.Lock()
	if k.m == nil {
		k.m = make(map[uint64]*sync.Mutex)
	}
	l, ok := k.m[id]
	if !ok {
		l = &sync.Mutex{}
		k.m[id] = l
	}
	k.mu.Unlock()
	l.Lock()
	return l.Unlock
}
