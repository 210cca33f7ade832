package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamentos_api/internal/adapter/http/handlers/mocks"
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(`{"clientName":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with derived fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{
			ID:         "b-1",
			ProposalID: 3,
			ClientName: "Acme",
			Title:      "Site",
			Status:     entities.BudgetStatusRascunho,
			TotalValue: 179800,
			Currency:   "BRL",
		}, nil)

		r := gin.New()
		r.POST("/api/budgets", h.CreateBudget)

		body := `{"clientName":"Acme","title":"Site","items":[{"quantity":2,"unitPrice":899}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["proposalId"].(float64) != 3 {
			t.Fatalf("expected proposalId 3, got %v", resp["proposalId"])
		}
		if resp["totalValue"].(float64) != 179800 {
			t.Fatalf("expected totalValue 179800, got %v", resp["totalValue"])
		}
		// No validity date: daysToExpiry must be explicit null, not absent.
		if v, present := resp["daysToExpiry"]; !present || v != nil {
			t.Fatalf("expected daysToExpiry null, got %v (present=%v)", v, present)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		r := gin.New()
		r.GET("/api/budgets/:id", h.GetBudget)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lapsed budget reports vencido without touching status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{
			ID:           "b-1",
			ClientName:   "Acme",
			Title:        "Site",
			Status:       entities.BudgetStatusEnviado,
			ValidityDate: "2020-01-01",
		}, nil)

		r := gin.New()
		r.GET("/api/budgets/:id", h.GetBudget)

		req := httptest.NewRequest(http.MethodGet, "/api/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "enviado" {
			t.Fatalf("expected stored status enviado, got %v", resp["status"])
		}
		if resp["displayStatus"] != "vencido" {
			t.Fatalf("expected displayStatus vencido, got %v", resp["displayStatus"])
		}
	})
}

func TestBudgetHandler_NextProposalID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBudgetUseCase(ctrl)
	h := NewBudgetHandler(uc)

	uc.EXPECT().NextProposalID(gomock.Any()).Return(7, nil)

	r := gin.New()
	r.GET("/api/budgets-next-id", h.NextProposalID)

	req := httptest.NewRequest(http.MethodGet, "/api/budgets-next-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"nextId":7}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBudgetHandler_DeleteBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

		r := gin.New()
		r.DELETE("/api/budgets/:id", h.DeleteBudget)

		req := httptest.NewRequest(http.MethodDelete, "/api/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"success":true}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		h := NewBudgetHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrBudgetNotFound)

		r := gin.New()
		r.DELETE("/api/budgets/:id", h.DeleteBudget)

		req := httptest.NewRequest(http.MethodDelete, "/api/budgets/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
