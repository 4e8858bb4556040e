package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/repository"
)

// SHGHandler serves the self-help-group records.
type SHGHandler struct {
	Groups *repository.SHGRepo
}

func NewSHGHandler(s *repository.SHGRepo) *SHGHandler {
	return &SHGHandler{Groups: s}
}

type shgReq struct {
	Name     string `json:"name"`
	Village  string `json:"village"`
	Block    string `json:"block"`
	District string `json:"district"`
	State    string `json:"state"`
	AdminID  uint64 `json:"admin_id"`
}

// Create handles POST /v1/shgs. Admin only.
func (h *SHGHandler) Create(c echo.Context) error {
	var req shgReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errJSON(c, http.StatusBadRequest, "name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s := model.SHG{
		Name:     req.Name,
		Village:  strings.TrimSpace(req.Village),
		Block:    strings.TrimSpace(req.Block),
		District: strings.TrimSpace(req.District),
		State:    strings.TrimSpace(req.State),
		AdminID:  req.AdminID,
	}
	if err := h.Groups.Create(ctx, &s); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create group failed")
	}
	return c.JSON(http.StatusCreated, s)
}

// Get handles GET /v1/shgs/:id. The response carries the group record and
// its current roster size.
func (h *SHGHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "group not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	count, err := h.Groups.MemberCount(ctx, id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"shg": s, "member_count": count})
}
