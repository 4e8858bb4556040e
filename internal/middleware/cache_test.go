package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/config"
)

func TestCacheKey_Stable(t *testing.T) {
	a := CacheKey("cache", "/v1/schemes", "q=health")
	b := CacheKey("cache", "/v1/schemes", "q=health")
	c := CacheKey("cache", "/v1/schemes", "q=nutrition")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "cache:")
}

func TestEncodeDecodePayload_RoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	hdr.Set("X-Total", "12")
	body := []byte(`{"items":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, "12", gotHdr.Get("X-Total"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayload_Garbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)

	_, _, _, ok = decodePayload(nil)
	assert.False(t, ok)
}

func TestCaptureWriter_RespectsLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}

	n, err := cw.Write([]byte("abcdefgh"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, "abcd", cw.buf.String())
	assert.Equal(t, int64(8), cw.size)
	// The client still gets the whole body.
	assert.Equal(t, "abcdefgh", rec.Body.String())
}

func TestResponseCache_DisabledIsPassThrough(t *testing.T) {
	mw := NewResponseCache(config.CacheConfig{Enabled: false}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/schemes", nil), rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "live") })

	require.NoError(t, h(c))
	assert.Equal(t, "live", rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestTokenBucket_DisabledIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil), rec)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
