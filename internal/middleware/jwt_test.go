package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/utils"
)

const testSecret = "unit-test-secret"

func doAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint64, bool, any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		uid  uint64
		ok   bool
		role any
	)
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		uid, ok = UserID(c)
		role = c.Get("role")
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, uid, ok, role
}

func TestJWTAuth_ValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "member", 15)
	require.NoError(t, err)

	rec, uid, ok, role := doAuth(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), uid)
	assert.Equal(t, "member", role)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, _, ok, _ := doAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 42, "member", 15)
	require.NoError(t, err)

	rec, _, ok, _ := doAuth(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, 42, "member", -5)
	require.NoError(t, err)

	rec, _, _, _ := doAuth(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	rec, _, _, _ := doAuth(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerSubject(t *testing.T) {
	e := echo.New()
	newCtx := func(authHeader string) echo.Context {
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	at, err := utils.NewAccessToken(testSecret, 42, "member", 15)
	require.NoError(t, err)

	uid, ok := BearerSubject(newCtx("Bearer "+at.Token), testSecret)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), uid)

	_, ok = BearerSubject(newCtx(""), testSecret)
	assert.False(t, ok)

	foreign, err := utils.NewAccessToken("other-secret", 42, "member", 15)
	require.NoError(t, err)
	_, ok = BearerSubject(newCtx("Bearer "+foreign.Token), testSecret)
	assert.False(t, ok)
}

func TestUserID_AbsentWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)
}
