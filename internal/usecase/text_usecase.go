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
	ErrTextNotFound      = fmt.Errorf("text %w", ErrNotFound)
	ErrTextTitleRequired = fmt.Errorf("%w: text title is required", ErrValidation)
)

// ITextUseCase exposes text snippet CRUD operations. Like notes, any update
// refreshes UpdatedAt.

type ITextUseCase interface {
	List(ctx context.Context) ([]entities.Text, error)
	GetByID(ctx context.Context, id string) (entities.Text, error)
	Create(ctx context.Context, t entities.Text) (entities.Text, error)
	Update(ctx context.Context, id string, patch TextPatch) (entities.Text, error)
	Delete(ctx context.Context, id string) error
}

type TextPatch struct {
	Title   *string
	Content *string
}

type TextUseCase struct {
	repo interfaces.ITextRepository
}

var _ ITextUseCase = (*TextUseCase)(nil)

func NewTextUseCase(repo interfaces.ITextRepository) *TextUseCase {
	return &TextUseCase{repo: repo}
}

func (u *TextUseCase) List(ctx context.Context) ([]entities.Text, error) {
	texts, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(texts, func(i, j int) bool {
		return texts[i].UpdatedAt.After(texts[j].UpdatedAt)
	})
	return texts, nil
}

func (u *TextUseCase) GetByID(ctx context.Context, id string) (entities.Text, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Text{}, ErrTextNotFound
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Text{}, err
	}
	if t.ID == "" {
		return entities.Text{}, ErrTextNotFound
	}
	return t, nil
}

func (u *TextUseCase) Create(ctx context.Context, t entities.Text) (entities.Text, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return entities.Text{}, ErrTextTitleRequired
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *TextUseCase) Update(ctx context.Context, id string, patch TextPatch) (entities.Text, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Text{}, err
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Text{}, err
	}
	if updated.ID == "" {
		return entities.Text{}, ErrTextNotFound
	}
	return updated, nil
}

func (u *TextUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrTextNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTextNotFound
	}
	return nil
}
