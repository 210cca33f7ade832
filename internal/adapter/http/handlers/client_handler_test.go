package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcamentos_api/internal/adapter/http/handlers/mocks"
	"orcamentos_api/internal/domain/entities"
	"orcamentos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(`{"email":"x@acme.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientNameRequired)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(`{"name":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)

		r := gin.New()
		r.POST("/api/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/api/clients", bytes.NewBufferString(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestClientHandler_GetClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{}, errors.New("db down"))

		r := gin.New()
		r.GET("/api/clients/:id", h.GetClient)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		uc.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Acme"}, nil)

		r := gin.New()
		r.GET("/api/clients/:id", h.GetClient)

		req := httptest.NewRequest(http.MethodGet, "/api/clients/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestClientHandler_UpdateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	h := NewClientHandler(uc)

	uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
		func(_ any, _ string, patch usecase.ClientPatch) (entities.Client, error) {
			if patch.Email == nil || *patch.Email != "new@acme.com" {
				t.Fatalf("expected email patch, got %#v", patch)
			}
			if patch.Name != nil {
				t.Fatal("expected absent name to stay nil")
			}
			return entities.Client{ID: "c-1", Name: "Acme", Email: "new@acme.com"}, nil
		})

	r := gin.New()
	r.PUT("/api/clients/:id", h.UpdateClient)

	req := httptest.NewRequest(http.MethodPut, "/api/clients/c-1", bytes.NewBufferString(`{"email":"new@acme.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
