package usecase

import (
	"context"
	"errors"
	"testing"

	"orcamentos_api/internal/domain/entities"
	mock_interfaces "orcamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		_, err := uc.Create(context.Background(), entities.Client{Name: "  "})
		if !errors.Is(err, ErrClientNameRequired) {
			t.Fatalf("expected ErrClientNameRequired, got %v", err)
		}
	})

	t.Run("generates id and created_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		var stored entities.Client
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				stored = c
				return c, nil
			})

		got, err := uc.Create(context.Background(), entities.Client{Name: "Acme", Email: "x@acme.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID == "" || stored.CreatedAt.IsZero() {
			t.Fatal("expected generated id and created_at")
		}
		if got.Name != "Acme" {
			t.Fatalf("expected name preserved, got %s", got.Name)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("zero entity maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "c-1")
		if err == nil || errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected raw repo error, got %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("patch overlays only set fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		existing := entities.Client{ID: "c-1", Name: "Acme", Email: "old@acme.com", Phone: "111"}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(existing, nil)

		email := "new@acme.com"
		var stored entities.Client
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				stored = c
				return c, nil
			})

		_, err := uc.Update(context.Background(), "c-1", ClientPatch{Email: &email})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Email != "new@acme.com" {
			t.Fatalf("expected patched email, got %s", stored.Email)
		}
		if stored.Name != "Acme" || stored.Phone != "111" {
			t.Fatal("expected untouched fields to survive")
		}
	})

	t.Run("row vanished between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		existing := entities.Client{ID: "c-1", Name: "Acme"}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), "c-1", ClientPatch{})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "c-1").Return(true, nil)

	if err := uc.Delete(context.Background(), "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
