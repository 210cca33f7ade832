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

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		_, err := uc.Create(context.Background(), entities.Budget{ClientName: "   ", Title: "Site"})
		if !errors.Is(err, ErrBudgetClientNameRequired) {
			t.Fatalf("expected ErrBudgetClientNameRequired, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		_, err := uc.Create(context.Background(), entities.Budget{ClientName: "Acme"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("applies defaults and recomputes total from items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().NextProposalID(gomock.Any()).Return(4, nil)

		var stored entities.Budget
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				stored = b
				return b, nil
			})

		in := entities.Budget{
			ClientName: "Acme",
			Title:      "Site institucional",
			TotalValue: 999999, // stale client value, must lose to the items
			Items: []entities.BudgetItem{
				{Quantity: 2, UnitPrice: 899.00},
			},
		}
		got, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if stored.Status != entities.BudgetStatusRascunho {
			t.Fatalf("expected default status rascunho, got %s", stored.Status)
		}
		if stored.Currency != entities.DefaultCurrency {
			t.Fatalf("expected default currency BRL, got %s", stored.Currency)
		}
		if stored.TotalValue != 179800 {
			t.Fatalf("expected total 179800, got %d", stored.TotalValue)
		}
		if stored.ProposalID != 4 {
			t.Fatalf("expected proposal id 4, got %d", stored.ProposalID)
		}
		if stored.ID == "" || stored.CreatedAt.IsZero() {
			t.Fatal("expected generated id and created_at")
		}
		if got.ID != stored.ID {
			t.Fatalf("expected returned budget to match stored one")
		}
	})

	t.Run("no items keeps the client total and gets an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().NextProposalID(gomock.Any()).Return(1, nil)

		var stored entities.Budget
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				stored = b
				return b, nil
			})

		_, err := uc.Create(context.Background(), entities.Budget{
			ClientName: "Acme",
			Title:      "Manutenção",
			TotalValue: 50000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.TotalValue != 50000 {
			t.Fatalf("expected total 50000, got %d", stored.TotalValue)
		}
		if stored.Items == nil || len(stored.Items) != 0 {
			t.Fatalf("expected empty items slice, got %#v", stored.Items)
		}
	})

	t.Run("counter failure aborts the creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().NextProposalID(gomock.Any()).Return(0, errors.New("counter down"))

		_, err := uc.Create(context.Background(), entities.Budget{ClientName: "Acme", Title: "Site"})
		if err == nil {
			t.Fatal("expected error when counter fails")
		}
	})
}

func TestBudgetUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.Update(context.Background(), "b-1", BudgetPatch{})
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("new items force a recomputed total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		existing := entities.Budget{ID: "b-1", ClientName: "Acme", Title: "Site", TotalValue: 1000}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)

		staleTotal := int64(123)
		var stored entities.Budget
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				stored = b
				return b, nil
			})

		_, err := uc.Update(context.Background(), "b-1", BudgetPatch{
			TotalValue: &staleTotal,
			Items:      []entities.BudgetItem{{Quantity: 1, UnitPrice: 25.00}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.TotalValue != 2500 {
			t.Fatalf("expected recomputed total 2500, got %d", stored.TotalValue)
		}
	})

	t.Run("explicit total wins when items are untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		existing := entities.Budget{ID: "b-1", ClientName: "Acme", Title: "Site", TotalValue: 1000}
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(existing, nil)

		total := int64(7500)
		var stored entities.Budget
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				stored = b
				return b, nil
			})

		_, err := uc.Update(context.Background(), "b-1", BudgetPatch{TotalValue: &total})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.TotalValue != 7500 {
			t.Fatalf("expected total 7500, got %d", stored.TotalValue)
		}
	})
}

func TestBudgetUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo)

	older := entities.Budget{ID: "old", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.Budget{ID: "new", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	repo.EXPECT().List(gomock.Any()).Return([]entities.Budget{older, newer}, nil)

	budgets, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if budgets[0].ID != "new" || budgets[1].ID != "old" {
		t.Fatalf("expected newest first, got %s then %s", budgets[0].ID, budgets[1].ID)
	}
}

func TestBudgetUseCase_Delete(t *testing.T) {
	t.Run("missing id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		if err := uc.Delete(context.Background(), "   "); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("repo reports missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "b-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetUseCase_NextProposalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo)

	repo.EXPECT().PeekNextProposalID(gomock.Any()).Return(12, nil)

	next, err := uc.NextProposalID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 12 {
		t.Fatalf("expected 12, got %d", next)
	}
}
