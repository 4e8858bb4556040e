package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// TrainingRepo reads training content. Seeded by migrations, read-only.
type TrainingRepo struct{ DB *sql.DB }

func NewTrainingRepo(db *sql.DB) *TrainingRepo { return &TrainingRepo{DB: db} }

// TrainingQuery filters the material listing.
type TrainingQuery struct {
	Q        string
	Category string
	Type     string
	Language string
	Offline  *bool
	Page     int
	PageSize int
}

const trainingCols = "id, title, description, category, type, url, language, offline_available"

func (r *TrainingRepo) GetByID(ctx context.Context, id uint64) (model.TrainingMaterial, error) {
	var m model.TrainingMaterial
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+trainingCols+" FROM training_materials WHERE id=?", id).Scan(
		&m.ID, &m.Title, &m.Description, &m.Category, &m.Type, &m.URL,
		&m.Language, &m.OfflineAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TrainingMaterial{}, ErrNotFound
	}
	return m, err
}

func (r *TrainingRepo) List(ctx context.Context, q TrainingQuery) ([]model.TrainingMaterial, int64, error) {
	where := []string{}
	args := []any{}
	if q.Category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(q.Category))
	}
	if q.Type != "" {
		where = append(where, "type = ?")
		args = append(args, q.Type)
	}
	if q.Language != "" {
		where = append(where, "language = ?")
		args = append(args, q.Language)
	}
	if q.Offline != nil {
		where = append(where, "offline_available = ?")
		args = append(args, *q.Offline)
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM training_materials WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+trainingCols+" FROM training_materials WHERE "+cond+" ORDER BY title LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.TrainingMaterial{}
	for rows.Next() {
		var m model.TrainingMaterial
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Category,
			&m.Type, &m.URL, &m.Language, &m.OfflineAvailable); err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}
