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

// InventoryHandler serves SHG stock records.
type InventoryHandler struct {
	Items *repository.InventoryRepo
}

func NewInventoryHandler(i *repository.InventoryRepo) *InventoryHandler {
	return &InventoryHandler{Items: i}
}

type inventoryReq struct {
	SHGID        string `json:"shg_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ReorderLevel int    `json:"reorder_level"`
	ExpiryDate   string `json:"expiry_date"`
}

func (r *inventoryReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	r.SHGID = strings.TrimSpace(r.SHGID)
	if r.Name == "" {
		return "name is required"
	}
	if r.Quantity < 0 {
		return "quantity cannot be negative"
	}
	if r.ReorderLevel < 0 {
		return "reorder_level cannot be negative"
	}
	if r.ExpiryDate != "" && !utils.ValidDate(r.ExpiryDate) {
		return "expiry_date must be YYYY-MM-DD"
	}
	return ""
}

// List handles GET /v1/inventory. ?low=true restricts to items at or below
// their reorder level.
func (h *InventoryHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.InventoryQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Low:      c.QueryParam("low") == "true",
		Page:     page,
		PageSize: size,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Items.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/inventory/:id.
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	it, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "item not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, it)
}

// Create handles POST /v1/inventory.
func (h *InventoryHandler) Create(c echo.Context) error {
	var req inventoryReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	it := model.InventoryItem{
		SHGID:        req.SHGID,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		ExpiryDate:   req.ExpiryDate,
	}
	if err := h.Items.Create(ctx, &it); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create item failed")
	}
	return c.JSON(http.StatusCreated, it)
}

// Update handles PUT /v1/inventory/:id.
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}
	var req inventoryReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Items.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "item not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	it := model.InventoryItem{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		ExpiryDate:   req.ExpiryDate,
	}
	if err := h.Items.Update(ctx, &it); err != nil {
		return errJSON(c, http.StatusInternalServerError, "update item failed")
	}
	return c.JSON(http.StatusOK, it)
}

// Delete handles DELETE /v1/inventory/:id. Admin only.
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "item not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete item failed")
	}
	return c.NoContent(http.StatusNoContent)
}
