package response

import (
	"time"

	"orcamentos_api/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Warranty    string  `json:"warranty"`
}

// BudgetResponse is the wire view of a budget. On top of the stored fields it
// carries the derived expiry view: displayStatus (stored status overridden by
// "vencido" when the validity date lapsed), daysToExpiry (null when the budget
// has no parseable validity date) and nearExpiry.
type BudgetResponse struct {
	ID            string               `json:"id"`
	ProposalID    int                  `json:"proposalId"`
	ClientID      string               `json:"clientId"`
	ClientName    string               `json:"clientName"`
	Title         string               `json:"title"`
	Status        string               `json:"status"`
	DisplayStatus string               `json:"displayStatus"`
	TotalValue    int64                `json:"totalValue"`
	Currency      string               `json:"currency"`
	ValidityDate  string               `json:"validityDate"`
	PaymentTerms  string               `json:"paymentTerms"`
	Notes         string               `json:"notes"`
	Items         []BudgetItemResponse `json:"items"`
	DaysToExpiry  *int                 `json:"daysToExpiry"`
	NearExpiry    bool                 `json:"nearExpiry"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func FromBudget(b entities.Budget, today time.Time) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:          it.ID,
			Quantity:    it.Quantity,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Warranty:    it.Warranty,
		})
	}
	var daysToExpiry *int
	if days, ok := entities.DaysToExpiry(b.ValidityDate, today); ok {
		daysToExpiry = &days
	}
	return BudgetResponse{
		ID:            b.ID,
		ProposalID:    b.ProposalID,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		Title:         b.Title,
		Status:        string(b.Status),
		DisplayStatus: string(entities.DeriveDisplayStatus(b.Status, b.ValidityDate, today)),
		TotalValue:    b.TotalValue,
		Currency:      b.Currency,
		ValidityDate:  b.ValidityDate,
		PaymentTerms:  b.PaymentTerms,
		Notes:         b.Notes,
		Items:         items,
		DaysToExpiry:  daysToExpiry,
		NearExpiry:    entities.IsNearExpiry(b.ValidityDate, today),
		CreatedAt:     b.CreatedAt,
	}
}

func FromBudgets(budgets []entities.Budget, today time.Time) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b, today))
	}
	return out
}
