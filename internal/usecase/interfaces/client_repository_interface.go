package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Not-found convention (shared by every repository here): Get and Update
// return a zero-value entity with a nil error when the id does not exist;
// Delete reports it through the returned bool.

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
