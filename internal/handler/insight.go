package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	"github.com/swasthya-saathi/portal-api/internal/utils"
)

// InsightHandler serves household symptom reports filed during visits.
type InsightHandler struct {
	Insights *repository.InsightRepo
}

func NewInsightHandler(i *repository.InsightRepo) *InsightHandler {
	return &InsightHandler{Insights: i}
}

type insightReq struct {
	SHGID      string   `json:"shg_id"`
	Date       string   `json:"date"`
	ReportedBy string   `json:"reported_by"`
	Household  string   `json:"household"`
	Symptoms   []string `json:"symptoms"`
	Notes      string   `json:"notes"`
}

func (r *insightReq) validate() string {
	r.ReportedBy = strings.TrimSpace(r.ReportedBy)
	r.Household = strings.TrimSpace(r.Household)
	r.SHGID = strings.TrimSpace(r.SHGID)
	if r.Date == "" || !utils.ValidDate(r.Date) {
		return "date must be YYYY-MM-DD"
	}
	if r.Household == "" {
		return "household is required"
	}
	if len(r.Symptoms) == 0 {
		return "at least one symptom is required"
	}
	return ""
}

// List handles GET /v1/insights.
func (h *InsightHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.InsightQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Page:     page,
		PageSize: size,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Insights.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/insights/:id.
func (h *InsightHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	in, err := h.Insights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "report not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, in)
}

// Create handles POST /v1/insights.
func (h *InsightHandler) Create(c echo.Context) error {
	var req insightReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	in := model.HealthInsight{
		SHGID:      req.SHGID,
		Date:       req.Date,
		ReportedBy: req.ReportedBy,
		Household:  req.Household,
		Symptoms:   req.Symptoms,
		Notes:      strings.TrimSpace(req.Notes),
	}
	if err := h.Insights.Create(ctx, &in); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create report failed")
	}
	return c.JSON(http.StatusCreated, in)
}

// Delete handles DELETE /v1/insights/:id. Admin only.
func (h *InsightHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Insights.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "report not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete report failed")
	}
	return c.NoContent(http.StatusNoContent)
}
