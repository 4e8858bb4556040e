package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/repository"
)

// SchemeHandler serves government-scheme reference content. The data set is
// seeded by migrations and read-only, which also makes these responses safe
// to cache.
type SchemeHandler struct {
	Schemes *repository.SchemeRepo
}

func NewSchemeHandler(s *repository.SchemeRepo) *SchemeHandler {
	return &SchemeHandler{Schemes: s}
}

// List handles GET /v1/schemes with ?q and ?category.
func (h *SchemeHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.SchemeQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Page:     page,
		PageSize: size,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Schemes.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/schemes/:id.
func (h *SchemeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Schemes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "scheme not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, s)
}
