package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

// TransactionRepo persists the SHG finance ledger.
type TransactionRepo struct{ DB *sql.DB }

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{DB: db} }

// TransactionQuery filters the ledger listing. Q matches category and
// description.
type TransactionQuery struct {
	Q        string
	Type     string
	Category string
	SHGID    string
	Page     int
	PageSize int
}

const txCols = "id, shg_id, tx_date, amount, type, category, description, created_by, created_at, updated_at"

// Create inserts a ledger entry and populates the generated fields.
func (r *TransactionRepo) Create(ctx context.Context, t *model.Transaction) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO transactions (shg_id, tx_date, amount, type, category, description, created_by) VALUES (?,?,?,?,?,?,?)",
		t.SHGID, t.Date, t.Amount, t.Type, t.Category, t.Description, t.CreatedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	got, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = got
	return nil
}

// GetByID fetches a ledger entry.
func (r *TransactionRepo) GetByID(ctx context.Context, id uint64) (model.Transaction, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+txCols+" FROM transactions WHERE id=?", id)
	return scanTransaction(row.Scan)
}

// List returns a filtered page of the ledger, newest first, plus the total
// match count.
func (r *TransactionRepo) List(ctx context.Context, q TransactionQuery) ([]model.Transaction, int64, error) {
	where := []string{}
	args := []any{}
	if q.SHGID != "" {
		where = append(where, "shg_id = ?")
		args = append(args, q.SHGID)
	}
	if q.Type != "" {
		where = append(where, "type = ?")
		args = append(args, q.Type)
	}
	if q.Category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(q.Category))
	}
	if q.Q != "" {
		needle := "%" + strings.ToLower(q.Q) + "%"
		where = append(where, "(LOWER(category) LIKE ? OR LOWER(description) LIKE ?)")
		args = append(args, needle, needle)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageBounds(q.Page, q.PageSize)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+txCols+" FROM transactions WHERE "+cond+" ORDER BY tx_date DESC, id DESC LIMIT ? OFFSET ?",
		append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// Summary sums the ledger by type. These are the dashboard figures; nothing
// more than two SUMs.
func (r *TransactionRepo) Summary(ctx context.Context, shgID string) (model.FinanceSummary, error) {
	cond := "1=1"
	args := []any{}
	if shgID != "" {
		cond = "shg_id = ?"
		args = append(args, shgID)
	}
	var s model.FinanceSummary
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(CASE WHEN type='income'  THEN amount ELSE 0 END),0),
		        COALESCE(SUM(CASE WHEN type='expense' THEN amount ELSE 0 END),0)
		 FROM transactions WHERE `+cond, args...).Scan(&s.Income, &s.Expense)
	if err != nil {
		return model.FinanceSummary{}, err
	}
	s.Balance = s.Income - s.Expense
	return s, nil
}

// Delete removes a ledger entry.
func (r *TransactionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM transactions WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var (
		t        model.Transaction
		date     time.Time
		crt, upd time.Time
	)
	err := scan(&t.ID, &t.SHGID, &date, &t.Amount, &t.Type, &t.Category,
		&t.Description, &t.CreatedBy, &crt, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, ErrNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}
	t.Date = date.Format("2006-01-02")
	t.CreatedAt = crt.UTC().Format(time.RFC3339)
	t.UpdatedAt = upd.UTC().Format(time.RFC3339)
	return t, nil
}
