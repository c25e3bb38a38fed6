package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	mock_interfaces "github.com/giancarlo349/G-OS3/internal/usecase/interfaces/mocks"
)

type dashboardFixture struct {
	uc       *DashboardUseCase
	quotes   *mock_interfaces.MockIQuoteRepository
	notifier *mock_interfaces.MockIChangeNotifier
}

func newDashboardFixture(t *testing.T) dashboardFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	notifier := mock_interfaces.NewMockIChangeNotifier(ctrl)
	return dashboardFixture{
		uc:       NewDashboardUseCase(quotes, notifier),
		quotes:   quotes,
		notifier: notifier,
	}
}

func TestDashboardUseCase_List(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := []entities.Quote{
		{ID: "q-old", ClientName: "OFICINA CENTRAL", Author: "VENDAS", Total: 100, CreatedAt: base},
		{ID: "q-new", ClientName: "AUTO PECAS SILVA", Author: "MARIA", Total: 250, CreatedAt: base.Add(48 * time.Hour)},
		{ID: "q-mid", ClientName: "OFICINA DO ZE", Author: "VENDAS", Total: 50, CreatedAt: base.Add(24 * time.Hour)},
	}

	t.Run("newest first with rollup", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(stored, nil)

		got, err := f.uc.List(context.Background(), testUser, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 3 || got.Sum != 400 {
			t.Fatalf("unexpected rollup: count=%d sum=%v", got.Count, got.Sum)
		}
		if got.Quotes[0].ID != "q-new" || got.Quotes[1].ID != "q-mid" || got.Quotes[2].ID != "q-old" {
			t.Fatalf("unexpected order: %+v", got.Quotes)
		}
	})

	t.Run("filter matches client name or author", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(stored, nil)

		got, err := f.uc.List(context.Background(), testUser, "oficina")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 2 || got.Sum != 150 {
			t.Fatalf("unexpected rollup: count=%d sum=%v", got.Count, got.Sum)
		}

		f.quotes.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(stored, nil)
		got, err = f.uc.List(context.Background(), testUser, "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Count != 1 || got.Quotes[0].ID != "q-new" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(nil, errors.New("db"))

		_, err := f.uc.List(context.Background(), testUser, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDashboardUseCase_Get(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		f := newDashboardFixture(t)
		_, err := f.uc.Get(context.Background(), testUser, "  ")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("another operator's quote", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: "someone-else"}, nil)

		_, err := f.uc.Get(context.Background(), testUser, "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: testUser.UID}, nil)

		got, err := f.uc.Get(context.Background(), testUser, " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "q-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestDashboardUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		if err := f.uc.Delete(context.Background(), testUser, "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success publishes the change", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: testUser.UID}, nil)
		f.quotes.EXPECT().DeleteByID(gomock.Any(), "q-1").Return(nil)
		f.notifier.EXPECT().Publish(gomock.Any(), "quotes").Return(nil)

		if err := f.uc.Delete(context.Background(), testUser, "q-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo delete error", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: testUser.UID}, nil)
		f.quotes.EXPECT().DeleteByID(gomock.Any(), "q-1").Return(errors.New("db"))

		if err := f.uc.Delete(context.Background(), testUser, "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
