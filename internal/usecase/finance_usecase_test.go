package usecase

import (
	"context"
	"errors"
	"testing"

	"orcamentos_api/internal/domain/entities"
	mock_interfaces "orcamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinanceUseCase_Create(t *testing.T) {
	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		_, err := uc.Create(context.Background(), entities.Finance{})
		if !errors.Is(err, ErrFinanceDescriptionRequired) {
			t.Fatalf("expected ErrFinanceDescriptionRequired, got %v", err)
		}
	})

	t.Run("defaults to receita and geral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		var stored entities.Finance
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.Finance) (entities.Finance, error) {
				stored = f
				return f, nil
			})

		_, err := uc.Create(context.Background(), entities.Finance{Description: "Venda", Amount: 10000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Type != entities.FinanceTypeReceita {
			t.Fatalf("expected type receita, got %s", stored.Type)
		}
		if stored.Category != entities.DefaultFinanceCategory {
			t.Fatalf("expected category geral, got %s", stored.Category)
		}
	})

	t.Run("explicit despesa survives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFinanceRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		var stored entities.Finance
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.Finance) (entities.Finance, error) {
				stored = f
				return f, nil
			})

		_, err := uc.Create(context.Background(), entities.Finance{
			Description: "Hospedagem",
			Type:        entities.FinanceTypeDespesa,
			Category:    "infra",
			Amount:      4900,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.Type != entities.FinanceTypeDespesa || stored.Category != "infra" {
			t.Fatalf("expected despesa/infra, got %s/%s", stored.Type, stored.Category)
		}
	})
}
