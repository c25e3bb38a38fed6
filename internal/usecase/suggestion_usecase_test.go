package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	mock_interfaces "github.com/giancarlo349/G-OS3/internal/usecase/interfaces/mocks"
)

func TestSuggestionUseCase_Suggest(t *testing.T) {
	catalog := []entities.Product{
		{ID: "p-1", Description: "LAPIS AZUL 2B"},
		{ID: "p-2", Description: "LAPIS VERMELHO"},
		{ID: "p-3", Description: "CANETA AZUL"},
	}

	t.Run("short query skips the catalog read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSuggestionUseCase(products)

		got, err := uc.Suggest(context.Background(), testUser, "l")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("single accented character also skips the catalog read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSuggestionUseCase(products)

		got, err := uc.Suggest(context.Background(), testUser, "é")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("multi term query ranks the double match first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSuggestionUseCase(products)
		products.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(catalog, nil)

		got, err := uc.Suggest(context.Background(), testUser, "lapis azul")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(got))
		}
		if got[0].ID != "p-1" {
			t.Fatalf("expected LAPIS AZUL 2B first, got %+v", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSuggestionUseCase(products)
		products.EXPECT().ListByUserID(gomock.Any(), testUser.UID).Return(nil, errors.New("db"))

		_, err := uc.Suggest(context.Background(), testUser, "lapis")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
