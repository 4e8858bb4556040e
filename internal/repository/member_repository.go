package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// MemberRepo persists the SHG roster.
type MemberRepo struct{ DB *sql.DB }

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{DB: db} }

// MemberQuery defines filters and pagination for the roster listing. Q is a
// case-insensitive substring matched against name, phone and skills.
type MemberQuery struct {
	Q        string
	Role     string
	SHGID    string
	Page     int
	PageSize int
}

// Create inserts a roster entry and populates the generated fields.
func (r *MemberRepo) Create(ctx context.Context, m *model.Member) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO members (shg_id, name, phone, role, skills, joined_date) VALUES (?,?,?,?,?,?)",
		m.SHGID, m.Name, m.Phone, m.Role, model.JoinList(m.Skills), m.JoinedDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	got, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = got
	return nil
}

// GetByID fetches a roster entry.
func (r *MemberRepo) GetByID(ctx context.Context, id uint64) (model.Member, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT id, shg_id, name, phone, role, skills, joined_date, created_at, updated_at FROM members WHERE id=?",
		id)
	return scanMember(row.Scan)
}

// List returns a filtered page of the roster plus the total match count.
func (r *MemberRepo) List(ctx context.Context, q MemberQuery) ([]model.Member, int64, error) {
	where := []string{}
	args := []any{}
	if q.SHGID != "" {
		where = append(where, "shg_id = ?")
		args = append(args, q.SHGID)
	}
	if q.Role != "" {
		where = append(where, "role = ?")
		args = append(args, q.Role)
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(skills) LIKE ?)")
		args = append(args, needle, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, shg_id, name, phone, role, skills, joined_date, created_at, updated_at FROM members WHERE "+
			cond+" ORDER BY name LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Member{}
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

// Update replaces the editable fields of a roster entry.
func (r *MemberRepo) Update(ctx context.Context, m *model.Member) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE members SET name=?, phone=?, role=?, skills=?, joined_date=? WHERE id=?",
		m.Name, m.Phone, m.Role, model.JoinList(m.Skills), m.JoinedDate, m.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = got
	return nil
}

// Delete removes a roster entry.
func (r *MemberRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM members WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMember(scan func(...any) error) (model.Member, error) {
	var (
		m        model.Member
		skills   string
		joined   time.Time
		crt, upd time.Time
	)
	err := scan(&m.ID, &m.SHGID, &m.Name, &m.Phone, &m.Role, &skills, &joined, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Member{}, ErrNotFound
	}
	if err != nil {
		return model.Member{}, err
	}
	m.Skills = model.SplitList(skills)
	m.JoinedDate = joined.Format("2006-01-02")
	m.CreatedAt = crt.UTC().Format(time.RFC3339)
	m.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return m, nil
}

// pageBounds normalizes pagination inputs; page is 1-based.
func pageBounds(page, size int) (limit, offset int) {
	if size < 1 || size > 100 {
		size = 20
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}
