package model

// Transaction types for the finance ledger.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Transaction mirrors the 'transactions' table. Amounts are rupees with two
// decimal places; DECIMAL columns scan cleanly into float64 at this scale.
type Transaction struct {
	ID          uint64  `json:"id"`
	SHGID       string  `json:"shg_id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// FinanceSummary carries the dashboard figures: plain sums over the ledger.
type FinanceSummary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
