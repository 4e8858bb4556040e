package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swasthya-saathi/portal-api/internal/model"
)

func TestTransactionReqValidate(t *testing.T) {
	r := transactionReq{Date: "2025-01-01", Amount: 500, Type: model.TxIncome, Category: "savings"}
	assert.Empty(t, r.validate())

	r = transactionReq{Amount: 500, Type: model.TxIncome, Category: "savings"}
	assert.Contains(t, r.validate(), "date")

	r = transactionReq{Date: "2025-01-01", Amount: 0, Type: model.TxIncome, Category: "savings"}
	assert.Contains(t, r.validate(), "amount")

	r = transactionReq{Date: "2025-01-01", Amount: -20, Type: model.TxExpense, Category: "rent"}
	assert.Contains(t, r.validate(), "amount")

	r = transactionReq{Date: "2025-01-01", Amount: 500, Type: "transfer", Category: "savings"}
	assert.Contains(t, r.validate(), "type")

	r = transactionReq{Date: "2025-01-01", Amount: 500, Type: model.TxExpense}
	assert.Contains(t, r.validate(), "category")
}

func TestFinanceList_RejectsUnknownType(t *testing.T) {
	h := &FinanceHandler{}
	c, rec := newJSONCtx(http.MethodGet, "/v1/finance/transactions?type=transfer", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceCreate_RejectsBadBody(t *testing.T) {
	h := &FinanceHandler{}
	c, rec := newJSONCtx(http.MethodPost, "/v1/finance/transactions", `{"amount":-5}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
