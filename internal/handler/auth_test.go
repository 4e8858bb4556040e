package handler

import (
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/config"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	"github.com/swasthya-saathi/portal-api/internal/utils"
)

// These cover the request validation layer, which rejects bad input before
// any storage is touched. A handler with nil repositories is enough.

func TestRegister_RejectsBadInput(t *testing.T) {
	h := &AuthHandler{}
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bad email", `{"email":"nope","password":"secret1","display_name":"Priya"}`, "valid email required"},
		{"short password", `{"email":"p@x.in","password":"abc","display_name":"Priya"}`, "password too weak"},
		{"missing display name", `{"email":"p@x.in","password":"secret1"}`, "display_name required"},
		{"bad phone", `{"email":"p@x.in","password":"secret1","display_name":"Priya","phone":"12345"}`, "invalid phone number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONCtx(http.MethodPost, "/v1/auth/register", tc.body)
			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/login", `{"email":"","password":""}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh_RequiresToken(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/refresh", `{}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONCtx(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"   "}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshAccess_RequiresToken(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/refresh-access", `{}`)
	require.NoError(t, h.RefreshAccess(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_NoTokenNoSession(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/logout", `{}`)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_BearerRevokesAllSessions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := &AuthHandler{
		Cfg:    config.Config{JWTSecret: "logout-secret"},
		Tokens: repository.NewTokenRepo(db),
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, 42, "member", 15)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL")).
		WithArgs(uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	// No body, only the access token: every session of user 42 goes.
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/logout", `{}`)
	c.Request().Header.Set("Authorization", "Bearer "+access.Token)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout_RefreshTokenRevokesSingleSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := &AuthHandler{Tokens: repository.NewTokenRepo(db)}
	hash := utils.HashTokenRaw("raw-refresh-token")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1")).
		WithArgs(hash).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow(42, time.Now().UTC().Add(time.Hour), nil))
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL")).
		WithArgs(hash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/logout", `{"refresh_token":"raw-refresh-token"}`)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefresh_StorageOutageIsNotUnauthorized(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := &AuthHandler{Tokens: repository.NewTokenRepo(db)}
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1")).
		WillReturnError(errors.New("dial tcp 127.0.0.1:3306: connection refused"))

	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/refresh", `{"refresh_token":"abc"}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestForgotPassword_RejectsBadEmail(t *testing.T) {
	h := &AuthHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/forgot-password", `{"email":"not-an-email"}`)
	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetPassword_Validation(t *testing.T) {
	h := &AuthHandler{}

	c, rec := newJSONCtx(http.MethodPost, "/v1/auth/reset-password", `{"new_password":"secret1"}`)
	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "token required")

	c, rec = newJSONCtx(http.MethodPost, "/v1/auth/reset-password", `{"token":"abc","new_password":"ab"}`)
	require.NoError(t, h.ResetPassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password too weak")
}
