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

// MemberHandler serves the SHG roster.
type MemberHandler struct {
	Members *repository.MemberRepo
}

func NewMemberHandler(m *repository.MemberRepo) *MemberHandler {
	return &MemberHandler{Members: m}
}

type memberReq struct {
	SHGID      string   `json:"shg_id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Role       string   `json:"role"`
	Skills     []string `json:"skills"`
	JoinedDate string   `json:"joined_date"`
}

func (r *memberReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SHGID = strings.TrimSpace(r.SHGID)
	if r.Name == "" {
		return "name is required"
	}
	if r.Phone == "" || !utils.ValidPhone(r.Phone) {
		return "valid 10-digit phone is required"
	}
	if r.Role == "" {
		r.Role = model.MemberRoleGeneral
	}
	if !model.ValidMemberRole(r.Role) {
		return "unknown role"
	}
	if r.JoinedDate == "" || !utils.ValidDate(r.JoinedDate) {
		return "joined_date must be YYYY-MM-DD"
	}
	return ""
}

// List handles GET /v1/members with ?q, ?role, ?shg_id and pagination.
func (h *MemberHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.MemberQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Role:     strings.TrimSpace(c.QueryParam("role")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Page:     page,
		PageSize: size,
	}
	if q.Role != "" && !model.ValidMemberRole(q.Role) {
		return errJSON(c, http.StatusBadRequest, "unknown role")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Members.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/members/:id.
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "member not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /v1/members.
func (h *MemberHandler) Create(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m := model.Member{
		SHGID:      req.SHGID,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		Skills:     req.Skills,
		JoinedDate: req.JoinedDate,
	}
	if err := h.Members.Create(ctx, &m); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create member failed")
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /v1/members/:id.
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Members.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "member not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	m := model.Member{
		ID:         id,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       req.Role,
		Skills:     req.Skills,
		JoinedDate: req.JoinedDate,
	}
	if err := h.Members.Update(ctx, &m); err != nil {
		return errJSON(c, http.StatusInternalServerError, "update member failed")
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /v1/members/:id. Admin only.
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Members.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "member not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete member failed")
	}
	return c.NoContent(http.StatusNoContent)
}
