package repository

import (
	"context"
	"database/sql"
	"time"
)

// ResetRepo persists single-use password-reset tokens, stored hashed like
// refresh tokens.
type ResetRepo struct{ DB *sql.DB }

func NewResetRepo(db *sql.DB) *ResetRepo { return &ResetRepo{DB: db} }

// Store inserts a reset token hash for the user.
func (r *ResetRepo) Store(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO password_resets (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// Consume validates a reset token and marks it used in one step. The UPDATE
// guards against double spends: a second call affects zero rows and fails.
func (r *ResetRepo) Consume(ctx context.Context, tokenHash string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE password_resets SET used_at=NOW() WHERE token_hash=? AND used_at IS NULL AND expires_at > NOW()",
		tokenHash)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrNotFound
	}
	var userID uint64
	err = r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM password_resets WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return userID, err
}
