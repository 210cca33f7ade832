package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// ITextRepository abstracts DynamoDB persistence for Text.

type ITextRepository interface {
	List(ctx context.Context) ([]entities.Text, error)
	GetByID(ctx context.Context, id string) (entities.Text, error)
	Create(ctx context.Context, t entities.Text) (entities.Text, error)
	Update(ctx context.Context, t entities.Text) (entities.Text, error)
	Delete(ctx context.Context, id string) (bool, error)
}
