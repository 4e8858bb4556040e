package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// InventoryRepo persists SHG stock records.
type InventoryRepo struct{ DB *sql.DB }

func NewInventoryRepo(db *sql.DB) *InventoryRepo { return &InventoryRepo{DB: db} }

// InventoryQuery filters the stock listing. Low restricts to items at or
// below their reorder level.
type InventoryQuery struct {
	Q        string
	Category string
	SHGID    string
	Low      bool
	Page     int
	PageSize int
}

const invCols = "id, shg_id, name, category, quantity, unit, reorder_level, expiry_date, created_at, updated_at"

func (r *InventoryRepo) Create(ctx context.Context, it *model.InventoryItem) error {
	var expiry any
	if it.ExpiryDate != "" {
		expiry = it.ExpiryDate
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO inventory_items (shg_id, name, category, quantity, unit, reorder_level, expiry_date) VALUES (?,?,?,?,?,?,?)",
		it.SHGID, it.Name, it.Category, it.Quantity, it.Unit, it.ReorderLevel, expiry)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	it.ID = uint64(id)
	got, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return err
	}
	*it = got
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id uint64) (model.InventoryItem, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+invCols+" FROM inventory_items WHERE id=?", id)
	return scanInventory(row.Scan)
}

func (r *InventoryRepo) List(ctx context.Context, q InventoryQuery) ([]model.InventoryItem, int64, error) {
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
	if q.Low {
		where = append(where, "quantity <= reorder_level")
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(category) LIKE ?)")
		args = append(args, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inventory_items WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+invCols+" FROM inventory_items WHERE "+cond+" ORDER BY name LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.InventoryItem{}
	for rows.Next() {
		it, err := scanInventory(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, it)
	}
	return out, total, rows.Err()
}

// Update replaces the editable fields of a stock record.
func (r *InventoryRepo) Update(ctx context.Context, it *model.InventoryItem) error {
	var expiry any
	if it.ExpiryDate != "" {
		expiry = it.ExpiryDate
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE inventory_items SET name=?, category=?, quantity=?, unit=?, reorder_level=?, expiry_date=? WHERE id=?",
		it.Name, it.Category, it.Quantity, it.Unit, it.ReorderLevel, expiry, it.ID)
	if err != nil {
		return err
	}
	got, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return err
	}
	*it = got
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM inventory_items WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanInventory(scan func(...any) error) (model.InventoryItem, error) {
	var (
		it       model.InventoryItem
		expiry   sql.NullTime
		crt, upd time.Time
	)
	err := scan(&it.ID, &it.SHGID, &it.Name, &it.Category, &it.Quantity,
		&it.Unit, &it.ReorderLevel, &expiry, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.InventoryItem{}, ErrNotFound
	}
	if err != nil {
		return model.InventoryItem{}, err
	}
	if expiry.Valid {
		it.ExpiryDate = expiry.Time.Format("2006-01-02")
	}
	it.CreatedAt = crt.UTC().Format(time.RFC3339)
	it.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return it, nil
}
