// Package handler contains the HTTP handlers for the portal API.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/middleware"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// currentUserID returns the authenticated user id stored by the JWT
// middleware. ok is false when the route was not protected or the claim
// was malformed.
func currentUserID(c echo.Context) (uint64, bool) {
	return middleware.UserID(c)
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// pageParams reads ?page and ?page_size with 1-based page semantics.
func pageParams(c echo.Context) (page, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	size, _ = strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return page, size
}

// listJSON writes the uniform list envelope used by every listing endpoint.
func listJSON(c echo.Context, items any, total int64, page, size int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": size,
	})
}

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}
