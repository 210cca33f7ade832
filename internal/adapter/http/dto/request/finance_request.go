package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

type FinanceCreateRequest struct {
	Description string `json:"description" binding:"required"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

func (r FinanceCreateRequest) ToEntity() entities.Finance {
	return entities.Finance{
		Description: r.Description,
		Type:        entities.FinanceType(r.Type),
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}

type FinanceUpdateRequest struct {
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Amount      *int64  `json:"amount"`
	Date        *string `json:"date"`
	Notes       *string `json:"notes"`
}

func (r FinanceUpdateRequest) ToPatch() usecase.FinancePatch {
	var typ *entities.FinanceType
	if r.Type != nil {
		t := entities.FinanceType(*r.Type)
		typ = &t
	}
	return usecase.FinancePatch{
		Description: r.Description,
		Type:        typ,
		Category:    r.Category,
		Amount:      r.Amount,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}
