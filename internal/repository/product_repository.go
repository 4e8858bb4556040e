package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// ProductRepo persists marketplace listings.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// ProductQuery filters the marketplace listing.
type ProductQuery struct {
	Q        string
	Category string
	SHGID    string
	Page     int
	PageSize int
}

const productCols = "id, shg_id, name, description, price, category, images, available_quantity, unit, created_by, created_at, updated_at"

func (r *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO products (shg_id, name, description, price, category, images, available_quantity, unit, created_by) VALUES (?,?,?,?,?,?,?,?,?)",
		p.SHGID, p.Name, p.Description, p.Price, p.Category,
		model.JoinList(p.Images), p.AvailableQuantity, p.Unit, p.CreatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+productCols+" FROM products WHERE id=?", id)
	return scanProduct(row.Scan)
}

func (r *ProductRepo) List(ctx context.Context, q ProductQuery) ([]model.Product, int64, error) {
	where := []string{}
	args := []any{}
	if q.SHGID != "" {
		where = append(where, "shg_id = ?")
		args = append(args, q.SHGID)
	}
	if q.Category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(q.Category))
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+productCols+" FROM products WHERE "+cond+" ORDER BY name LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE products SET name=?, description=?, price=?, category=?, images=?, available_quantity=?, unit=? WHERE id=?",
		p.Name, p.Description, p.Price, p.Category, model.JoinList(p.Images),
		p.AvailableQuantity, p.Unit, p.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProduct(scan func(...any) error) (model.Product, error) {
	var (
		p        model.Product
		images   string
		crt, upd time.Time
	)
	err := scan(&p.ID, &p.SHGID, &p.Name, &p.Description, &p.Price,
		&p.Category, &images, &p.AvailableQuantity, &p.Unit, &p.CreatedBy,
		&crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	p.Images = model.SplitList(images)
	p.CreatedAt = crt.UTC().Format(time.RFC3339)
	p.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return p, nil
}
