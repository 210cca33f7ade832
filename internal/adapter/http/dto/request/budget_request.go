package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

// BudgetItemRequest carries one line item. unitPrice is the user-entered
// decimal in major currency units; the server converts to cents when it
// computes the total.
type BudgetItemRequest struct {
	ID          string  `json:"id"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Warranty    string  `json:"warranty"`
}

func (r BudgetItemRequest) toEntity() entities.BudgetItem {
	return entities.BudgetItem{
		ID:          r.ID,
		Quantity:    r.Quantity,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Warranty:    r.Warranty,
	}
}

type BudgetCreateRequest struct {
	ClientID     string              `json:"clientId"`
	ClientName   string              `json:"clientName" binding:"required"`
	Title        string              `json:"title" binding:"required"`
	Status       string              `json:"status"`
	TotalValue   int64               `json:"totalValue"`
	Currency     string              `json:"currency"`
	ValidityDate string              `json:"validityDate"`
	PaymentTerms string              `json:"paymentTerms"`
	Notes        string              `json:"notes"`
	Items        []BudgetItemRequest `json:"items"`
}

func (r BudgetCreateRequest) ToEntity() entities.Budget {
	return entities.Budget{
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		Title:        r.Title,
		Status:       entities.BudgetStatus(r.Status),
		TotalValue:   r.TotalValue,
		Currency:     r.Currency,
		ValidityDate: r.ValidityDate,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		Items:        toBudgetItems(r.Items),
	}
}

// BudgetUpdateRequest leaves Items as a plain slice: an absent "items" key
// decodes to nil (line items untouched), an explicit empty array clears them.
type BudgetUpdateRequest struct {
	ClientID     *string             `json:"clientId"`
	ClientName   *string             `json:"clientName"`
	Title        *string             `json:"title"`
	Status       *string             `json:"status"`
	TotalValue   *int64              `json:"totalValue"`
	Currency     *string             `json:"currency"`
	ValidityDate *string             `json:"validityDate"`
	PaymentTerms *string             `json:"paymentTerms"`
	Notes        *string             `json:"notes"`
	Items        []BudgetItemRequest `json:"items"`
}

func (r BudgetUpdateRequest) ToPatch() usecase.BudgetPatch {
	var status *entities.BudgetStatus
	if r.Status != nil {
		s := entities.BudgetStatus(*r.Status)
		status = &s
	}
	var items []entities.BudgetItem
	if r.Items != nil {
		items = toBudgetItems(r.Items)
	}
	return usecase.BudgetPatch{
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		Title:        r.Title,
		Status:       status,
		TotalValue:   r.TotalValue,
		Currency:     r.Currency,
		ValidityDate: r.ValidityDate,
		PaymentTerms: r.PaymentTerms,
		Notes:        r.Notes,
		Items:        items,
	}
}

func toBudgetItems(reqs []BudgetItemRequest) []entities.BudgetItem {
	items := make([]entities.BudgetItem, 0, len(reqs))
	for _, it := range reqs {
		items = append(items, it.toEntity())
	}
	return items
}
