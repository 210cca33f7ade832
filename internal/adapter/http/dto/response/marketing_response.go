package response

import (
	"time"

	"orcamentos_api/internal/domain/entities"
)

type MarketingResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Budget      int64     `json:"budget"`
	Spent       int64     `json:"spent"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromMarketing(m entities.Marketing) MarketingResponse {
	return MarketingResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        string(m.Type),
		Status:      string(m.Status),
		Budget:      m.Budget,
		Spent:       m.Spent,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMarketingList(campaigns []entities.Marketing) []MarketingResponse {
	out := make([]MarketingResponse, 0, len(campaigns))
	for _, m := range campaigns {
		out = append(out, FromMarketing(m))
	}
	return out
}
