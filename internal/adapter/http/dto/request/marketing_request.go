package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

type MarketingCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Budget      int64  `json:"budget"`
	Spent       int64  `json:"spent"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

func (r MarketingCreateRequest) ToEntity() entities.Marketing {
	return entities.Marketing{
		Name:        r.Name,
		Type:        entities.MarketingType(r.Type),
		Status:      entities.MarketingStatus(r.Status),
		Budget:      r.Budget,
		Spent:       r.Spent,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		Notes:       r.Notes,
	}
}

type MarketingUpdateRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Budget      *int64  `json:"budget"`
	Spent       *int64  `json:"spent"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

func (r MarketingUpdateRequest) ToPatch() usecase.MarketingPatch {
	var typ *entities.MarketingType
	if r.Type != nil {
		t := entities.MarketingType(*r.Type)
		typ = &t
	}
	var status *entities.MarketingStatus
	if r.Status != nil {
		s := entities.MarketingStatus(*r.Status)
		status = &s
	}
	return usecase.MarketingPatch{
		Name:        r.Name,
		Type:        typ,
		Status:      status,
		Budget:      r.Budget,
		Spent:       r.Spent,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		Notes:       r.Notes,
	}
}
