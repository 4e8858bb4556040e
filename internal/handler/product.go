package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/swasthya-saathi/portal-api/internal/model"
	"github.com/swasthya-saathi/portal-api/internal/repository"
)

// ProductHandler serves SHG marketplace listings.
type ProductHandler struct {
	Products *repository.ProductRepo
}

func NewProductHandler(p *repository.ProductRepo) *ProductHandler {
	return &ProductHandler{Products: p}
}

type productReq struct {
	SHGID             string   `json:"shg_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	Category          string   `json:"category"`
	Images            []string `json:"images"`
	AvailableQuantity int      `json:"available_quantity"`
	Unit              string   `json:"unit"`
	CreatedBy         string   `json:"created_by"`
}

func (r *productReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	r.SHGID = strings.TrimSpace(r.SHGID)
	if r.Name == "" {
		return "name is required"
	}
	if r.Price < 0 {
		return "price cannot be negative"
	}
	if r.AvailableQuantity < 0 {
		return "available_quantity cannot be negative"
	}
	return ""
}

// List handles GET /v1/products with ?q, ?category, ?shg_id.
func (h *ProductHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.ProductQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Page:     page,
		PageSize: size,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Products.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "product not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /v1/products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p := model.Product{
		SHGID:             req.SHGID,
		Name:              req.Name,
		Description:       strings.TrimSpace(req.Description),
		Price:             req.Price,
		Category:          req.Category,
		Images:            req.Images,
		AvailableQuantity: req.AvailableQuantity,
		Unit:              req.Unit,
		CreatedBy:         strings.TrimSpace(req.CreatedBy),
	}
	if err := h.Products.Create(ctx, &p); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create product failed")
	}
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /v1/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Products.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "product not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	p := model.Product{
		ID:                id,
		Name:              req.Name,
		Description:       strings.TrimSpace(req.Description),
		Price:             req.Price,
		Category:          req.Category,
		Images:            req.Images,
		AvailableQuantity: req.AvailableQuantity,
		Unit:              req.Unit,
	}
	if err := h.Products.Update(ctx, &p); err != nil {
		return errJSON(c, http.StatusInternalServerError, "update product failed")
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /v1/products/:id. Admin only.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "product not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete product failed")
	}
	return c.NoContent(http.StatusNoContent)
}
