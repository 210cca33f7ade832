package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMarketingNotFound     = fmt.Errorf("marketing campaign %w", ErrNotFound)
	ErrMarketingNameRequired = fmt.Errorf("%w: campaign name is required", ErrValidation)
)

// IMarketingUseCase exposes marketing campaign CRUD operations.

type IMarketingUseCase interface {
	List(ctx context.Context) ([]entities.Marketing, error)
	GetByID(ctx context.Context, id string) (entities.Marketing, error)
	Create(ctx context.Context, m entities.Marketing) (entities.Marketing, error)
	Update(ctx context.Context, id string, patch MarketingPatch) (entities.Marketing, error)
	Delete(ctx context.Context, id string) error
}

type MarketingPatch struct {
	Name        *string
	Type        *entities.MarketingType
	Status      *entities.MarketingStatus
	Budget      *int64
	Spent       *int64
	StartDate   *string
	EndDate     *string
	Description *string
	Notes       *string
}

type MarketingUseCase struct {
	repo interfaces.IMarketingRepository
}

var _ IMarketingUseCase = (*MarketingUseCase)(nil)

func NewMarketingUseCase(repo interfaces.IMarketingRepository) *MarketingUseCase {
	return &MarketingUseCase{repo: repo}
}

func (u *MarketingUseCase) List(ctx context.Context) ([]entities.Marketing, error) {
	campaigns, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
	})
	return campaigns, nil
}

func (u *MarketingUseCase) GetByID(ctx context.Context, id string) (entities.Marketing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Marketing{}, ErrMarketingNotFound
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Marketing{}, err
	}
	if m.ID == "" {
		return entities.Marketing{}, ErrMarketingNotFound
	}
	return m, nil
}

func (u *MarketingUseCase) Create(ctx context.Context, m entities.Marketing) (entities.Marketing, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Marketing{}, ErrMarketingNameRequired
	}

	if m.Type == "" {
		m.Type = entities.MarketingTypeEmail
	}
	if m.Status == "" {
		m.Status = entities.MarketingStatusPlanejada
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, m)
}

func (u *MarketingUseCase) Update(ctx context.Context, id string, patch MarketingPatch) (entities.Marketing, error) {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Marketing{}, err
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Type != nil {
		m.Type = *patch.Type
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Budget != nil {
		m.Budget = *patch.Budget
	}
	if patch.Spent != nil {
		m.Spent = *patch.Spent
	}
	if patch.StartDate != nil {
		m.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		m.EndDate = *patch.EndDate
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Notes != nil {
		m.Notes = *patch.Notes
	}

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Marketing{}, err
	}
	if updated.ID == "" {
		return entities.Marketing{}, ErrMarketingNotFound
	}
	return updated, nil
}

func (u *MarketingUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMarketingNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMarketingNotFound
	}
	return nil
}
