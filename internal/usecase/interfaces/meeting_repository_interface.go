package interfaces

import (
	"context"

	"orcamentos_api/internal/domain/entities"
)

// IMeetingRepository abstracts DynamoDB persistence for Meeting.

type IMeetingRepository interface {
	List(ctx context.Context) ([]entities.Meeting, error)
	GetByID(ctx context.Context, id string) (entities.Meeting, error)
	Create(ctx context.Context, mt entities.Meeting) (entities.Meeting, error)
	Update(ctx context.Context, mt entities.Meeting) (entities.Meeting, error)
	Delete(ctx context.Context, id string) (bool, error)
}
