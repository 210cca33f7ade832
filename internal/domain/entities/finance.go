package entities

import "time"

// FinanceType splits entries into revenue and expense. Amount is always
// positive; the sign is implied by the type.

type FinanceType string

const (
	FinanceTypeReceita FinanceType = "receita"
	FinanceTypeDespesa FinanceType = "despesa"
)

const DefaultFinanceCategory = "geral"

// Finance is a single cash-flow entry. Amount is in minor currency units.
type Finance struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Type        FinanceType `json:"type"`
	Category    string      `json:"category"`
	Amount      int64       `json:"amount"`
	Date        string      `json:"date"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}
