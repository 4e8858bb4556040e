package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// InsightRepo persists household symptom reports.
type InsightRepo struct{ DB *sql.DB }

func NewInsightRepo(db *sql.DB) *InsightRepo { return &InsightRepo{DB: db} }

// InsightQuery filters the report listing. Q matches household, reporter,
// symptoms and notes.
type InsightQuery struct {
	Q        string
	SHGID    string
	Page     int
	PageSize int
}

const insightCols = "id, shg_id, report_date, reported_by, household, symptoms, notes, created_at, updated_at"

func (r *InsightRepo) Create(ctx context.Context, in *model.HealthInsight) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO health_insights (shg_id, report_date, reported_by, household, symptoms, notes) VALUES (?,?,?,?,?,?)",
		in.SHGID, in.Date, in.ReportedBy, in.Household, model.JoinList(in.Symptoms), in.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	in.ID = uint64(id)
	got, err := r.GetByID(ctx, in.ID)
	if err != nil {
		return err
	}
	*in = got
	return nil
}

func (r *InsightRepo) GetByID(ctx context.Context, id uint64) (model.HealthInsight, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+insightCols+" FROM health_insights WHERE id=?", id)
	return scanInsight(row.Scan)
}

func (r *InsightRepo) List(ctx context.Context, q InsightQuery) ([]model.HealthInsight, int64, error) {
	where := []string{}
	args := []any{}
	if q.SHGID != "" {
		where = append(where, "shg_id = ?")
		args = append(args, q.SHGID)
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(household) LIKE ? OR LOWER(reported_by) LIKE ? OR LOWER(symptoms) LIKE ? OR LOWER(notes) LIKE ?)")
		args = append(args, needle, needle, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM health_insights WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+insightCols+" FROM health_insights WHERE "+cond+" ORDER BY report_date DESC, id DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.HealthInsight{}
	for rows.Next() {
		in, err := scanInsight(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, in)
	}
	return out, total, rows.Err()
}

func (r *InsightRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM health_insights WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanInsight(scan func(...any) error) (model.HealthInsight, error) {
	var (
		in       model.HealthInsight
		symptoms string
		date     time.Time
		crt, upd time.Time
	)
	err := scan(&in.ID, &in.SHGID, &date, &in.ReportedBy, &in.Household,
		&symptoms, &in.Notes, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HealthInsight{}, ErrNotFound
	}
	if err != nil {
		return model.HealthInsight{}, err
	}
	in.Symptoms = model.SplitList(symptoms)
	in.Date = date.Format("2006-01-02")
	in.CreatedAt = crt.UTC().Format(time.RFC3339)
	in.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return in, nil
}
