package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

// Wire payloads are camelCase; create requests carry plain fields with
// binding tags, update requests carry pointer fields so an absent key is
// distinguishable from an explicit zero value.

type ClientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

func (r ClientCreateRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Notes:   r.Notes,
	}
}

type ClientUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

func (r ClientUpdateRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Notes:   r.Notes,
	}
}
