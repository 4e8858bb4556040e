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

// FinanceHandler serves the SHG finance ledger and its summary figures.
type FinanceHandler struct {
	Transactions *repository.TransactionRepo
}

func NewFinanceHandler(t *repository.TransactionRepo) *FinanceHandler {
	return &FinanceHandler{Transactions: t}
}

type transactionReq struct {
	SHGID       string  `json:"shg_id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by"`
}

func (r *transactionReq) validate() string {
	r.SHGID = strings.TrimSpace(r.SHGID)
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	if r.Date == "" || !utils.ValidDate(r.Date) {
		return "date must be YYYY-MM-DD"
	}
	if r.Amount <= 0 {
		return "amount must be positive"
	}
	if r.Type != model.TxIncome && r.Type != model.TxExpense {
		return "type must be income or expense"
	}
	if r.Category == "" {
		return "category is required"
	}
	return ""
}

// List handles GET /v1/finance/transactions.
func (h *FinanceHandler) List(c echo.Context) error {
	page, size := pageParams(c)
	q := repository.TransactionQuery{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Type:     strings.TrimSpace(c.QueryParam("type")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		SHGID:    strings.TrimSpace(c.QueryParam("shg_id")),
		Page:     page,
		PageSize: size,
	}
	if q.Type != "" && q.Type != model.TxIncome && q.Type != model.TxExpense {
		return errJSON(c, http.StatusBadRequest, "type must be income or expense")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, total, err := h.Transactions.List(ctx, q)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return listJSON(c, items, total, page, size)
}

// Get handles GET /v1/finance/transactions/:id.
func (h *FinanceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "transaction not found")
		}
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, t)
}

// Create handles POST /v1/finance/transactions. Ledger entries are written
// once; corrections are a new entry of the opposite type.
func (h *FinanceHandler) Create(c echo.Context) error {
	var req transactionReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if msg := req.validate(); msg != "" {
		return errJSON(c, http.StatusBadRequest, msg)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t := model.Transaction{
		SHGID:       req.SHGID,
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		CreatedBy:   strings.TrimSpace(req.CreatedBy),
	}
	if err := h.Transactions.Create(ctx, &t); err != nil {
		return errJSON(c, http.StatusInternalServerError, "create transaction failed")
	}
	return c.JSON(http.StatusCreated, t)
}

// Delete handles DELETE /v1/finance/transactions/:id. Admin only.
func (h *FinanceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Transactions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "transaction not found")
		}
		return errJSON(c, http.StatusInternalServerError, "delete transaction failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Summary handles GET /v1/finance/summary with optional ?shg_id.
func (h *FinanceHandler) Summary(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Transactions.Summary(ctx, strings.TrimSpace(c.QueryParam("shg_id")))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, s)
}
