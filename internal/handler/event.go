package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/queue"
	"github.com/swasthya-saathi/portal-api/internal/repository"
	notifier "github.com/swasthya-saathi/portal-api/internal/service"
)

// EventHandler serves scheduled health events (camps, drives, visits).
// Creation publishes a broker message so assigned members can be notified
// out of band.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(e *repository.EventRepo) *EventHandler {
	return &EventHandler{Events: e}
}

type eventReq struct {
	SHGID           string   `json:"shg_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Location        string   `json:"location"`
	AssignedMembers []string `json:"assigned_members"`
	Status          string   `json:"status"`
}

func (r *eventReq) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	r.Location = strings.TrimSpace(r.Location)
	r.SHGID = strings.TrimSpace(r.SHGID)
	if r.Title == "" {
		return "title is required"
	}
	if _, err := parseEventDate(r.Date); err != nil {
		return "date must be YYYY-MM-DD or RFC 3339"
	}
	if r.Status == "" {
		r.Status = model.EventUpcoming
	}
	if !model.ValidEventStatus(r.Status) {
		return "unknown status"
	}
	return ""
}

// parseEventDate accepts a bare date or a full timestamp and returns the
// instant in UTC. A bare date means midnight UTC of that day.
func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// List handles GET /v1/events with ?q, ?status, ?shg_id and pagination.
func (h *EventHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.EventQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Status:   strings.TrimSpace(c.QueryParam("status")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Page:     page,
		PageSize: size,
	}
	if q.Status != "" && !model.ValidEventStatus(q.Status) {
		return errJSON(c, http.StatusBadRequest, "unknown status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Events.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "event not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /v1/events. After the row is written, an
// event.scheduled message is published; a broker outage does not fail the
// request.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}
	when, _ := parseEventDate(req.Date)

	ctx, cancel := reqCtx(c)
	defer cancel()

	e := model.HealthEvent{
		SHGID:           req.SHGID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            when.Format("2006-01-02 15:04:05"),
		Location:        req.Location,
		AssignedMembers: req.AssignedMembers,
		Status:          req.Status,
	}
	if err := h.Events.Create(ctx, &e); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create event failed")
	}

	uid, _ := currentUserID(c)
	_ = notifier.PublishEventScheduled(ctx, queue.EventScheduledEvent{
		EventID:         e.ID,
		SHGID:           e.SHGID,
		Title:           e.Title,
		Date:            e.Date,
		Location:        e.Location,
		AssignedMembers: e.AssignedMembers,
		ScheduledBy:     uid,
		ScheduledAt:     time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, e)
}

// Update handles PUT /v1/events/:id, including status transitions.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}
	when, _ := parseEventDate(req.Date)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "event not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	e := model.HealthEvent{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		Date:            when.Format("2006-01-02 15:04:05"),
		Location:        req.Location,
		AssignedMembers: req.AssignedMembers,
		Status:          req.Status,
	}
	if err := h.Events.Update(ctx, &e); err != nil {
		return errJSON(c, http.StatusInternalServerError, "update event failed")
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /v1/events/:id. Admin only.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "event not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete event failed")
	}
	return c.NoContent(http.StatusNoContent)
}
