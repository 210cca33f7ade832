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
	ErrFinanceNotFound            = fmt.Errorf("finance entry %w", ErrNotFound)
	ErrFinanceDescriptionRequired = fmt.Errorf("%w: finance description is required", ErrValidation)
)

// IFinanceUseCase exposes finance entry CRUD operations.

type IFinanceUseCase interface {
	List(ctx context.Context) ([]entities.Finance, error)
	GetByID(ctx context.Context, id string) (entities.Finance, error)
	Create(ctx context.Context, f entities.Finance) (entities.Finance, error)
	Update(ctx context.Context, id string, patch FinancePatch) (entities.Finance, error)
	Delete(ctx context.Context, id string) error
}

type FinancePatch struct {
	Description *string
	Type        *entities.FinanceType
	Category    *string
	Amount      *int64
	Date        *string
	Notes       *string
}

type FinanceUseCase struct {
	repo interfaces.IFinanceRepository
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IFinanceRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo}
}

func (u *FinanceUseCase) List(ctx context.Context) ([]entities.Finance, error) {
	finances, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// Entry dates are calendar strings (2006-01-02), so a lexicographic
	// comparison orders them chronologically.
	sort.SliceStable(finances, func(i, j int) bool {
		return finances[i].Date > finances[j].Date
	})
	return finances, nil
}

func (u *FinanceUseCase) GetByID(ctx context.Context, id string) (entities.Finance, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Finance{}, ErrFinanceNotFound
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Finance{}, err
	}
	if f.ID == "" {
		return entities.Finance{}, ErrFinanceNotFound
	}
	return f, nil
}

func (u *FinanceUseCase) Create(ctx context.Context, f entities.Finance) (entities.Finance, error) {
	f.Description = strings.TrimSpace(f.Description)
	if f.Description == "" {
		return entities.Finance{}, ErrFinanceDescriptionRequired
	}

	if f.Type == "" {
		f.Type = entities.FinanceTypeReceita
	}
	if f.Category == "" {
		f.Category = entities.DefaultFinanceCategory
	}

	f.ID = uuid.NewString()
	f.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, f)
}

func (u *FinanceUseCase) Update(ctx context.Context, id string, patch FinancePatch) (entities.Finance, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Finance{}, err
	}

	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.Type != nil {
		f.Type = *patch.Type
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Amount != nil {
		f.Amount = *patch.Amount
	}
	if patch.Date != nil {
		f.Date = *patch.Date
	}
	if patch.Notes != nil {
		f.Notes = *patch.Notes
	}

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Finance{}, err
	}
	if updated.ID == "" {
		return entities.Finance{}, ErrFinanceNotFound
	}
	return updated, nil
}

func (u *FinanceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrFinanceNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrFinanceNotFound
	}
	return nil
}
