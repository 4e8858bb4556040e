package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// SchemeRepo reads government-scheme reference content. The table is seeded
// by migrations and served read-only.
type SchemeRepo struct{ DB *sql.DB }

func NewSchemeRepo(db *sql.DB) *SchemeRepo { return &SchemeRepo{DB: db} }

// SchemeQuery filters the scheme listing. Q matches name, description,
// beneficiaries and ministry; Category is the tab selector.
type SchemeQuery struct {
	Q        string
	Category string
	Page     int
	PageSize int
}

const schemeCols = `id, name, description, category, beneficiaries, eligibility, benefits,
	application_process, documents, website, ministry, status, last_updated`

func (r *SchemeRepo) GetByID(ctx context.Context, id uint64) (model.Scheme, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+schemeCols+" FROM schemes WHERE id=?", id)
	return scanScheme(row.Scan)
}

func (r *SchemeRepo) List(ctx context.Context, q SchemeQuery) ([]model.Scheme, int64, error) {
	where := []string{}
	args := []any{}
	if q.Category != "" {
		where = append(where, "category = ?")
		args = append(args, strings.ToLower(q.Category))
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(beneficiaries) LIKE ? OR LOWER(ministry) LIKE ?)")
		args = append(args, needle, needle, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM schemes WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+schemeCols+" FROM schemes WHERE "+cond+" ORDER BY name LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Scheme{}
	for rows.Next() {
		s, err := scanScheme(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func scanScheme(scan func(...any) error) (model.Scheme, error) {
	var (
		s       model.Scheme
		docs    string
		updated time.Time
	)
	err := scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Beneficiaries,
		&s.Eligibility, &s.Benefits, &s.ApplicationProcess, &docs,
		&s.Website, &s.Ministry, &s.Status, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Scheme{}, ErrNotFound
	}
	if err != nil {
		return model.Scheme{}, err
	}
	s.Documents = model.SplitList(docs)
	s.LastUpdated = updated.Format("2006-01-02")
	return s, nil
}
