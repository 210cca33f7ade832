package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// IFinanceRepository abstracts DynamoDB persistence for Finance.

type IFinanceRepository interface {
	List(ctx context.Context) ([]entities.Finance, error)
	GetByID(ctx context.Context, id string) (entities.Finance, error)
	Create(ctx context.Context, f entities.Finance) (entities.Finance, error)
	Update(ctx context.Context, f entities.Finance) (entities.Finance, error)
	Delete(ctx context.Context, id string) (bool, error)
}
