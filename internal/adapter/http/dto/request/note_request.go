package request

import (
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"
)

type NoteCreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
	Color    string `json:"color"`
}

func (r NoteCreateRequest) ToEntity() entities.Note {
	return entities.Note{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Pinned:   r.Pinned,
		Color:    r.Color,
	}
}

type NoteUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Pinned   *bool   `json:"pinned"`
	Color    *string `json:"color"`
}

func (r NoteUpdateRequest) ToPatch() usecase.NotePatch {
	return usecase.NotePatch{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Pinned:   r.Pinned,
		Color:    r.Color,
	}
}
