package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// IMarketingRepository abstracts DynamoDB persistence for Marketing.

type IMarketingRepository interface {
	List(ctx context.Context) ([]entities.Marketing, error)
	GetByID(ctx context.Context, id string) (entities.Marketing, error)
	Create(ctx context.Context, mk entities.Marketing) (entities.Marketing, error)
	Update(ctx context.Context, mk entities.Marketing) (entities.Marketing, error)
	Delete(ctx context.Context, id string) (bool, error)
}
