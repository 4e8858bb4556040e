package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/repository"
)

// TrainingHandler serves training content: courses and downloadable
// resources seeded by migrations.
type TrainingHandler struct {
	Materials *repository.TrainingRepo
}

func NewTrainingHandler(t *repository.TrainingRepo) *TrainingHandler {
	return &TrainingHandler{Materials: t}
}

// List handles GET /v1/training with ?q, ?category, ?type, ?language and
// ?offline.
func (h *TrainingHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.TrainingQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Language: strings.TrimSpace(c.QueryParam("language")),
		Page:     page,
		PageSize: size,
	}
	switch q.Type {
	case "", model.TrainingVideo, model.TrainingDocument, model.TrainingAudio:
	default:
		return errJSON(c, http.StatusBadRequest, "unknown material type")
	}
	switch c.QueryParam("offline") {
	case "true":
		v := true
		q.Offline = &v
	case "false":
		v := false
		q.Offline = &v
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Materials.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/training/:id.
func (h *TrainingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Materials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "material not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, m)
}
