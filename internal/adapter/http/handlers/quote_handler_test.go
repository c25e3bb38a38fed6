package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/giancarlo349/G-OS3/internal/adapter/http/handlers/mocks"
	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase"
	mock_interfaces "github.com/giancarlo349/G-OS3/internal/usecase/interfaces/mocks"
)

func TestQuoteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		dashboard := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewQuoteHandler(dashboard, nil)
		rg.GET("/quotes", h.List)

		dashboard.EXPECT().List(gomock.Any(), handlerTestUser, "").Return(usecase.QuoteList{
			Quotes: []entities.Quote{
				{ID: "q-2", ClientName: "MARIA", Total: 250, UpdatedAt: time.Now()},
				{ID: "q-1", ClientName: "OFICINA CENTRAL", Total: 150},
			},
			Count: 2,
			Sum:   400,
		}, nil)

		w := doAuthed(r, http.MethodGet, "/v1/quotes", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["count"] != 2.0 || body["sum"] != 400.0 {
			t.Fatalf("unexpected rollup: count=%v sum=%v", body["count"], body["sum"])
		}
		quotes := body["quotes"].([]any)
		if len(quotes) != 2 || quotes[0].(map[string]any)["id"] != "q-2" {
			t.Fatalf("unexpected quotes: %v", quotes)
		}
	})

	t.Run("filter is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		dashboard := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewQuoteHandler(dashboard, nil)
		rg.GET("/quotes", h.List)

		dashboard.EXPECT().List(gomock.Any(), handlerTestUser, "maria").Return(usecase.QuoteList{}, nil)

		w := doAuthed(r, http.MethodGet, "/v1/quotes?filter=maria", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		dashboard := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewQuoteHandler(dashboard, nil)
		rg.GET("/quotes/:id", h.Get)

		dashboard.EXPECT().Get(gomock.Any(), handlerTestUser, "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doAuthed(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		dashboard := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewQuoteHandler(dashboard, nil)
		rg.GET("/quotes/:id", h.Get)

		dashboard.EXPECT().Get(gomock.Any(), handlerTestUser, "q-1").Return(entities.Quote{
			ID:         "q-1",
			ClientName: "OFICINA CENTRAL",
			Items:      []entities.QuoteItem{{ID: "i-1", Description: "LAPIS", Price: 2, Quantity: 3, IsVerified: true}},
		}, nil)

		w := doAuthed(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["health"] != 100.0 {
			t.Fatalf("expected health 100, got %v", body["health"])
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		dashboard := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewQuoteHandler(dashboard, nil)
		rg.DELETE("/quotes/:id", h.Delete)

		dashboard.EXPECT().Delete(gomock.Any(), handlerTestUser, "q-1").Return(nil)

		w := doAuthed(r, http.MethodDelete, "/v1/quotes/q-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

// sseRecorder adds the CloseNotify gin's Stream helper expects from the
// response writer.
type sseRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newSSERecorder() *sseRecorder {
	return &sseRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *sseRecorder) CloseNotify() <-chan bool { return r.closed }

func TestQuoteHandler_Watch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("streams one event per signal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		h := NewQuoteHandler(mocks.NewMockIDashboardUseCase(ctrl), notifier)
		rg.GET("/quotes/watch", h.Watch)

		signals := make(chan struct{}, 2)
		signals <- struct{}{}
		signals <- struct{}{}
		close(signals)
		notifier.EXPECT().Subscribe(gomock.Any(), "quotes").Return((<-chan struct{})(signals), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/watch", nil)
		req.Header.Set("Authorization", "Bearer tok-1")
		w := newSSERecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := strings.Count(w.Body.String(), "event:changed"); got != 2 {
			t.Fatalf("expected 2 events, got %d in %q", got, w.Body.String())
		}
		if cc := w.Header().Get("Cache-Control"); cc != "no-cache" {
			t.Fatalf("expected no-cache, got %q", cc)
		}
	})

	t.Run("subscribe failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r, rg := authedRouter(t, ctrl)
		notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
		h := NewQuoteHandler(mocks.NewMockIDashboardUseCase(ctrl), notifier)
		rg.GET("/quotes/watch", h.Watch)

		notifier.EXPECT().Subscribe(gomock.Any(), "quotes").Return(nil, usecase.ErrRemoteWrite)

		w := doAuthed(r, http.MethodGet, "/v1/quotes/watch", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
