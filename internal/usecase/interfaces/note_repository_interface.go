package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// INoteRepository abstracts DynamoDB persistence for Note.

type INoteRepository interface {
	List(ctx context.Context) ([]entities.Note, error)
	GetByID(ctx context.Context, id string) (entities.Note, error)
	Create(ctx context.Context, n entities.Note) (entities.Note, error)
	Update(ctx context.Context, n entities.Note) (entities.Note, error)
	Delete(ctx context.Context, id string) (bool, error)
}
