package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/giancarlo349/G-OS3/internal/adapter/http/handlers/mocks"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase"
)

var handlerTestUser = entities.User{UID: "user-1", Email: "vendas@loja.com"}

// authedRouter wires the real auth middleware with a stubbed token parser so
// handler tests run behind the same request pipeline as production.
func authedRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *gin.RouterGroup) {
	t.Helper()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	auth.EXPECT().ParseToken("tok-1").Return(handlerTestUser, nil).AnyTimes()

	r := gin.New()
	rg := r.Group("/v1", middleware.RequireAuth(auth))
	return r, rg
}

func doAuthed(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer tok-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		h := NewProductHandler(mocks.NewMockICatalogUseCase(ctrl), mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.GET("/products", h.List)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success with filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewProductHandler(catalog, mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.GET("/products", h.List)

		catalog.EXPECT().List(gomock.Any(), handlerTestUser, "lapis").Return([]entities.Product{
			{ID: "p-1", Description: "LAPIS AZUL", Price: 2.5},
		}, nil)

		w := doAuthed(r, http.MethodGet, "/v1/products?filter=lapis", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["description"] != "LAPIS AZUL" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProductHandler_Suggest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("short query yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		suggestions := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewProductHandler(mocks.NewMockICatalogUseCase(ctrl), suggestions, nil)
		rg.GET("/products/suggestions", h.Suggest)

		suggestions.EXPECT().Suggest(gomock.Any(), handlerTestUser, "l").Return(nil, nil)

		w := doAuthed(r, http.MethodGet, "/v1/products/suggestions?q=l", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "[]" {
			t.Fatalf("expected empty array, got %q", body)
		}
	})

	t.Run("ranked suggestions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		suggestions := mocks.NewMockISuggestionUseCase(ctrl)
		h := NewProductHandler(mocks.NewMockICatalogUseCase(ctrl), suggestions, nil)
		rg.GET("/products/suggestions", h.Suggest)

		suggestions.EXPECT().Suggest(gomock.Any(), handlerTestUser, "lapis azul").Return([]entities.Product{
			{ID: "p-1", Description: "LAPIS AZUL 2B"},
			{ID: "p-2", Description: "LAPIS VERMELHO"},
		}, nil)

		w := doAuthed(r, http.MethodGet, "/v1/products/suggestions?q=lapis%20azul", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[0]["id"] != "p-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProductHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		h := NewProductHandler(mocks.NewMockICatalogUseCase(ctrl), mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.POST("/products", h.Create)

		w := doAuthed(r, http.MethodPost, "/v1/products", `{"price":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewProductHandler(catalog, mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.POST("/products", h.Create)

		catalog.EXPECT().Create(gomock.Any(), handlerTestUser, "parafuso", 0.5).Return(entities.Product{ID: "p-1", Description: "PARAFUSO", Price: 0.5}, nil)

		w := doAuthed(r, http.MethodPost, "/v1/products", `{"description":"parafuso","price":0.5}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestProductHandler_UpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewProductHandler(catalog, mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.PUT("/products/:id", h.Update)

		catalog.EXPECT().Update(gomock.Any(), handlerTestUser, "p-1", "parafuso", 1.0).Return(entities.Product{}, usecase.ErrProductNotFound)

		w := doAuthed(r, http.MethodPut, "/v1/products/p-1", `{"description":"parafuso","price":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewProductHandler(catalog, mocks.NewMockISuggestionUseCase(ctrl), nil)
		rg.DELETE("/products/:id", h.Delete)

		catalog.EXPECT().Delete(gomock.Any(), handlerTestUser, "p-1").Return(nil)

		w := doAuthed(r, http.MethodDelete, "/v1/products/p-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
