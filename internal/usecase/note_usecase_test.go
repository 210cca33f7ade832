package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"orcamentos_api/internal/domain/entities"
	mock_interfaces "orcamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNoteUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINoteRepository(ctrl)
		uc := NewNoteUseCase(repo)

		_, err := uc.Create(context.Background(), entities.Note{})
		if !errors.Is(err, ErrNoteTitleRequired) {
			t.Fatalf("expected ErrNoteTitleRequired, got %v", err)
		}
	})

	t.Run("applies category and color defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINoteRepository(ctrl)
		uc := NewNoteUseCase(repo)

		var stored entities.Note
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Note) (entities.Note, error) {
				stored = n
				return n, nil
			})

		_, err := uc.Create(context.Background(), entities.Note{Title: "Lembrete"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Category != entities.DefaultNoteCategory {
			t.Fatalf("expected category geral, got %s", stored.Category)
		}
		if stored.Color != entities.DefaultNoteColor {
			t.Fatalf("expected color default, got %s", stored.Color)
		}
		if !stored.UpdatedAt.Equal(stored.CreatedAt) {
			t.Fatal("expected created_at and updated_at to start equal")
		}
	})
}

func TestNoteUseCase_Update(t *testing.T) {
	t.Run("empty patch still refreshes updated_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINoteRepository(ctrl)
		uc := NewNoteUseCase(repo)

		old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		existing := entities.Note{ID: "n-1", Title: "Lembrete", UpdatedAt: old}
		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(existing, nil)

		var stored entities.Note
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Note) (entities.Note, error) {
				stored = n
				return n, nil
			})

		_, err := uc.Update(context.Background(), "n-1", NotePatch{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.UpdatedAt.After(old) {
			t.Fatal("expected updated_at to be refreshed")
		}
		if stored.Title != "Lembrete" {
			t.Fatalf("expected title untouched, got %s", stored.Title)
		}
	})

	t.Run("unpin via pointer field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINoteRepository(ctrl)
		uc := NewNoteUseCase(repo)

		existing := entities.Note{ID: "n-1", Title: "Lembrete", Pinned: true}
		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(existing, nil)

		pinned := false
		var stored entities.Note
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Note) (entities.Note, error) {
				stored = n
				return n, nil
			})

		_, err := uc.Update(context.Background(), "n-1", NotePatch{Pinned: &pinned})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Pinned {
			t.Fatal("expected note to be unpinned")
		}
	})
}

func TestNoteUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINoteRepository(ctrl)
	uc := NewNoteUseCase(repo)

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Note{
		{ID: "a", UpdatedAt: t3},
		{ID: "b", Pinned: true, UpdatedAt: t1},
		{ID: "c", Pinned: true, UpdatedAt: t2},
	}, nil)

	notes, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Pinned first (newest pinned on top), unpinned after.
	if notes[0].ID != "c" || notes[1].ID != "b" || notes[2].ID != "a" {
		t.Fatalf("unexpected order: %s, %s, %s", notes[0].ID, notes[1].ID, notes[2].ID)
	}
}
