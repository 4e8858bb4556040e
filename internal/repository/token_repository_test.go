package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validateRefreshQuery = "SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1"

func TestValidateRefresh_UnknownToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(validateRefreshQuery)).
		WithArgs("deadbeef").
		WillReturnError(sql.ErrNoRows)

	_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateRefresh_RevokedToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(validateRefreshQuery)).
		WithArgs("deadbeef").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(7, time.Now().UTC().Add(time.Hour), time.Now().UTC()))

	_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateRefresh_QueryFailurePassesThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("dial tcp 127.0.0.1:3306: connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(validateRefreshQuery)).
		WithArgs("deadbeef").
		WillReturnError(boom)

	// An outage must not look like a bad token to callers.
	_, err = NewTokenRepo(db).ValidateRefresh(context.Background(), "deadbeef")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestValidateRefresh_ActiveToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(validateRefreshQuery)).
		WithArgs("deadbeef").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(7, time.Now().UTC().Add(time.Hour), nil))

	uid, err := NewTokenRepo(db).ValidateRefresh(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)
}
