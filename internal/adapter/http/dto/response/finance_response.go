package response

import (
	"time"

	"orcamentos_api/internal/domain/entities"
)

type FinanceResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromFinance(f entities.Finance) FinanceResponse {
	return FinanceResponse{
		ID:          f.ID,
		Description: f.Description,
		Type:        string(f.Type),
		Category:    f.Category,
		Amount:      f.Amount,
		Date:        f.Date,
		Notes:       f.Notes,
		CreatedAt:   f.CreatedAt,
	}
}

func FromFinances(finances []entities.Finance) []FinanceResponse {
	out := make([]FinanceResponse, 0, len(finances))
	for _, f := range finances {
		out = append(out, FromFinance(f))
	}
	return out
}
