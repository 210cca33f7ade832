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
	ErrNoteNotFound      = fmt.Errorf("note %w", ErrNotFound)
	ErrNoteTitleRequired = fmt.Errorf("%w: note title is required", ErrValidation)
)

// INoteUseCase exposes note CRUD operations.
//
// Any update refreshes UpdatedAt, even an empty patch. The UI relies on this
// to bump a note to the top of its group when the user touches it.

type INoteUseCase interface {
	List(ctx context.Context) ([]entities.Note, error)
	GetByID(ctx context.Context, id string) (entities.Note, error)
	Create(ctx context.Context, n entities.Note) (entities.Note, error)
	Update(ctx context.Context, id string, patch NotePatch) (entities.Note, error)
	Delete(ctx context.Context, id string) error
}

type NotePatch struct {
	Title    *string
	Content  *string
	Category *string
	Pinned   *bool
	Color    *string
}

type NoteUseCase struct {
	repo interfaces.INoteRepository
}

var _ INoteUseCase = (*NoteUseCase)(nil)

func NewNoteUseCase(repo interfaces.INoteRepository) *NoteUseCase {
	return &NoteUseCase{repo: repo}
}

func (u *NoteUseCase) List(ctx context.Context) ([]entities.Note, error) {
	notes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	// Pinned notes first, then most recently updated.
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (u *NoteUseCase) GetByID(ctx context.Context, id string) (entities.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Note{}, ErrNoteNotFound
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Note{}, err
	}
	if n.ID == "" {
		return entities.Note{}, ErrNoteNotFound
	}
	return n, nil
}

func (u *NoteUseCase) Create(ctx context.Context, n entities.Note) (entities.Note, error) {
	n.Title = strings.TrimSpace(n.Title)
	if n.Title == "" {
		return entities.Note{}, ErrNoteTitleRequired
	}

	if n.Category == "" {
		n.Category = entities.DefaultNoteCategory
	}
	if n.Color == "" {
		n.Color = entities.DefaultNoteColor
	}

	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now
	return u.repo.Create(ctx, n)
}

func (u *NoteUseCase) Update(ctx context.Context, id string, patch NotePatch) (entities.Note, error) {
	n, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Note{}, err
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Category != nil {
		n.Category = *patch.Category
	}
	if patch.Pinned != nil {
		n.Pinned = *patch.Pinned
	}
	if patch.Color != nil {
		n.Color = *patch.Color
	}
	n.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, n)
	if err != nil {
		return entities.Note{}, err
	}
	if updated.ID == "" {
		return entities.Note{}, ErrNoteNotFound
	}
	return updated, nil
}

func (u *NoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNoteNotFound
	}

	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoteNotFound
	}
	return nil
}
