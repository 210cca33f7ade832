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
	ErrBudgetNotFound           = fmt.Errorf("budget %w", ErrNotFound)
	ErrBudgetClientNameRequired = fmt.Errorf("%w: budget client name is required", ErrValidation)
	ErrBudgetTitleRequired      = fmt.Errorf("%w: budget title is required", ErrValidation)
)

// IBudgetUseCase exposes budget (orçamento) operations.
//
// NextProposalID backs the read-only GET /api/budgets-next-id preview; the
// number it reports is only consumed when a budget is actually created.

type IBudgetUseCase interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	NextProposalID(ctx context.Context) (int, error)
}

// BudgetPatch carries a partial update; nil fields stay untouched. A non-nil
// Items replaces the whole line-item list and forces the total to be
// recomputed from it, so a stale client-sent totalValue can never win over
// the items it disagrees with.
type BudgetPatch struct {
	ClientID     *string
	ClientName   *string
	Title        *string
	Status       *entities.BudgetStatus
	TotalValue   *int64
	Currency     *string
	ValidityDate *string
	PaymentTerms *string
	Notes        *string
	Items        []entities.BudgetItem
}

type BudgetUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository) *BudgetUseCase {
	return &BudgetUseCase{repo: repo}
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	budgets, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	b.ClientName = strings.TrimSpace(b.ClientName)
	if b.ClientName == "" {
		return entities.Budget{}, ErrBudgetClientNameRequired
	}
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		return entities.Budget{}, ErrBudgetTitleRequired
	}

	if b.Status == "" {
		b.Status = entities.BudgetStatusRascunho
	}
	if b.Currency == "" {
		b.Currency = entities.DefaultCurrency
	}
	if b.Items == nil {
		b.Items = []entities.BudgetItem{}
	}
	if len(b.Items) > 0 {
		b.TotalValue = entities.ComputeTotalCents(b.Items)
	}

	// Counter failure aborts the creation; a budget never gets a fallback
	// proposal number.
	proposalID, err := u.repo.NextProposalID(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	b.ID = uuid.NewString()
	b.ProposalID = proposalID
	b.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, patch BudgetPatch) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}

	if patch.ClientID != nil {
		b.ClientID = *patch.ClientID
	}
	if patch.ClientName != nil {
		b.ClientName = *patch.ClientName
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.Currency != nil {
		b.Currency = *patch.Currency
	}
	if patch.ValidityDate != nil {
		b.ValidityDate = *patch.ValidityDate
	}
	if patch.PaymentTerms != nil {
		b.PaymentTerms = *patch.PaymentTerms
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.Items != nil {
		b.Items = patch.Items
		b.TotalValue = entities.ComputeTotalCents(patch.Items)
	} else if patch.TotalValue != nil {
		b.TotalValue = *patch.TotalValue
	}

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrBudgetNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBudgetNotFound
	}
	return nil
}

func (u *BudgetUseCase) NextProposalID(ctx context.Context) (int, error) {
	return u.repo.PeekNextProposalID(ctx)
}
