package response

import (
	"time"

	"orcamentos_api/internal/domain/entities"
)

type TextResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromText(t entities.Text) TextResponse {
	return TextResponse{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromTexts(texts []entities.Text) []TextResponse {
	out := make([]TextResponse, 0, len(texts))
	for _, t := range texts {
		out = append(out, FromText(t))
	}
	return out
}
