package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// SHGRepo persists the self-help-group records that profiles and members
// reference by id.
type SHGRepo struct{ DB *sql.DB }

func NewSHGRepo(db *sql.DB) *SHGRepo { return &SHGRepo{DB: db} }

const shgCols = "id, name, village, block, district, state, admin_id, created_at, updated_at"

func (r *SHGRepo) Create(ctx context.Context, s *model.SHG) error {
	var admin any
	if s.AdminID != 0 {
		admin = s.AdminID
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO shgs (name, village, block, district, state, admin_id) VALUES (?,?,?,?,?,?)",
		s.Name, s.Village, s.Block, s.District, s.State, admin)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	got, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = got
	return nil
}

func (r *SHGRepo) GetByID(ctx context.Context, id uint64) (model.SHG, error) {
	var (
		s        model.SHG
		admin    sql.NullInt64
		crt, upd time.Time
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+shgCols+" FROM shgs WHERE id=?", id).Scan(
		&s.ID, &s.Name, &s.Village, &s.Block, &s.District, &s.State,
		&admin, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SHG{}, ErrNotFound
	}
	if err != nil {
		return model.SHG{}, err
	}
	if admin.Valid {
		s.AdminID = uint64(admin.Int64)
	}
	s.CreatedAt = crt.UTC().Format(time.RFC3339)
	s.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return s, nil
}

// MemberCount returns how many roster entries reference the group.
func (r *SHGRepo) MemberCount(ctx context.Context, id uint64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE shg_id = CAST(? AS CHAR)", id).Scan(&n)
	return n, err
}
