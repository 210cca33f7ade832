package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

type TextCreateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (r TextCreateRequest) ToEntity() entities.Text {
	return entities.Text{
		Title:   r.Title,
		Content: r.Content,
	}
}

type TextUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r TextUpdateRequest) ToPatch() usecase.TextPatch {
	return usecase.TextPatch{
		Title:   r.Title,
		Content: r.Content,
	}
}
