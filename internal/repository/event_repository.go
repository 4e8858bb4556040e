package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// EventRepo persists scheduled health events (camps, drives, visits).
type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// EventQuery filters the event listing. Q matches title, description and
// location.
type EventQuery struct {
	Q        string
	Status   string
	SHGID    string
	Page     int
	PageSize int
}

const eventCols = "id, shg_id, title, description, event_date, location, assigned_members, status, created_at, updated_at"

func (r *EventRepo) Create(ctx context.Context, e *model.HealthEvent) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO health_events (shg_id, title, description, event_date, location, assigned_members, status) VALUES (?,?,?,?,?,?,?)",
		e.SHGID, e.Title, e.Description, e.Date, e.Location,
		model.JoinList(e.AssignedMembers), e.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	got, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = got
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.HealthEvent, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+eventCols+" FROM health_events WHERE id=?", id)
	return scanEvent(row.Scan)
}

func (r *EventRepo) List(ctx context.Context, q EventQuery) ([]model.HealthEvent, int64, error) {
	where := []string{}
	args := []any{}
	if q.SHGID != "" {
		where = append(where, "shg_id = ?")
		args = append(args, q.SHGID)
	}
	if q.Status != "" {
		where = append(where, "status = ?")
		args = append(args, q.Status)
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?)")
		args = append(args, needle, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM health_events WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventCols+" FROM health_events WHERE "+cond+" ORDER BY event_date LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.HealthEvent{}
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, rows.Err()
}

// Update replaces the editable fields, including the lifecycle status.
func (r *EventRepo) Update(ctx context.Context, e *model.HealthEvent) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE health_events SET title=?, description=?, event_date=?, location=?, assigned_members=?, status=? WHERE id=?",
		e.Title, e.Description, e.Date, e.Location, model.JoinList(e.AssignedMembers), e.Status, e.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = got
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM health_events WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEvent(scan func(...any) error) (model.HealthEvent, error) {
	var (
		e        model.HealthEvent
		assigned string
		date     time.Time
		crt, upd time.Time
	)
	err := scan(&e.ID, &e.SHGID, &e.Title, &e.Description, &date, &e.Location,
		&assigned, &e.Status, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.HealthEvent{}, ErrNotFound
	}
	if err != nil {
		return model.HealthEvent{}, err
	}
	e.AssignedMembers = model.SplitList(assigned)
	e.Date = date.UTC().Format(time.RFC3339)
	e.CreatedAt = crt.UTC().Format(time.RFC3339)
	e.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return e, nil
}
