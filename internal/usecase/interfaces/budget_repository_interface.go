package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget, plus the
// atomic proposal-number counter.
//
// NextProposalID allocates the next sequential number (first call returns 1);
// PeekNextProposalID reads what the next allocation would be without
// consuming it, for the UI preview endpoint.

type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) (bool, error)
	NextProposalID(ctx context.Context) (int, error)
	PeekNextProposalID(ctx context.Context) (int, error)
}
