package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONCtx builds an Echo context for a JSON request and returns the
// recorder alongside it.
func newJSONCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPageParams(t *testing.T) {
	c, _ := newJSONCtx(http.MethodGet, "/v1/members?page=3&page_size=50", "")
	page, size := pageParams(c)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)
}

func TestPageParams_Defaults(t *testing.T) {
	c, _ := newJSONCtx(http.MethodGet, "/v1/members", "")
	page, size := pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	c, _ = newJSONCtx(http.MethodGet, "/v1/members?page=-2&page_size=0", "")
	page, size = pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)
}

func TestPathID(t *testing.T) {
	c, _ := newJSONCtx(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	c.SetParamValues("forty-two")
	_, err = pathID(c)
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	c, rec := newJSONCtx(http.MethodGet, "/healthz", "")
	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
