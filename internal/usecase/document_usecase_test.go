package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	mock_interfaces "github.com/giancarlo349/G-OS3/internal/usecase/interfaces/mocks"
)

type documentFixture struct {
	uc          *DocumentUseCase
	quotes      *mock_interfaces.MockIQuoteRepository
	pdf         *mock_interfaces.MockIPDFRenderer
	spreadsheet *mock_interfaces.MockISpreadsheetRenderer
}

func newDocumentFixture(t *testing.T) documentFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pdf := mock_interfaces.NewMockIPDFRenderer(ctrl)
	spreadsheet := mock_interfaces.NewMockISpreadsheetRenderer(ctrl)
	return documentFixture{
		uc:          NewDocumentUseCase(quotes, pdf, spreadsheet),
		quotes:      quotes,
		pdf:         pdf,
		spreadsheet: spreadsheet,
	}
}

func TestDocumentUseCase_ExportPDF(t *testing.T) {
	stored := entities.Quote{ID: "q-1", ClientName: "OFICINA CENTRAL", UserID: testUser.UID}

	t.Run("success", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		f.pdf.EXPECT().RenderPDF(stored).Return([]byte("%PDF"), nil)

		doc, err := f.uc.ExportPDF(context.Background(), testUser, "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FileName != "Orcamento-OFICINA_CENTRAL.pdf" {
			t.Fatalf("unexpected file name: %q", doc.FileName)
		}
		if doc.ContentType != "application/pdf" || string(doc.Content) != "%PDF" {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc.ShareMessage != ShareMessage {
			t.Fatalf("expected share message attached")
		}
	})

	t.Run("explicit suffix wins over client name", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		f.pdf.EXPECT().RenderPDF(stored).Return([]byte("%PDF"), nil)

		doc, err := f.uc.ExportPDF(context.Background(), testUser, "q-1", " pedido 42 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FileName != "Orcamento-pedido_42.pdf" {
			t.Fatalf("unexpected file name: %q", doc.FileName)
		}
	})

	t.Run("another operator's quote", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", UserID: "someone-else"}, nil)

		_, err := f.uc.ExportPDF(context.Background(), testUser, "q-1", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		f.pdf.EXPECT().RenderPDF(stored).Return(nil, errors.New("render"))

		_, err := f.uc.ExportPDF(context.Background(), testUser, "q-1", "")
		if !errors.Is(err, ErrExportFailed) {
			t.Fatalf("expected ErrExportFailed, got %v", err)
		}
	})
}

func TestDocumentUseCase_ExportSpreadsheet(t *testing.T) {
	stored := entities.Quote{ID: "q-1", ClientName: "OFICINA", UserID: testUser.UID}

	t.Run("success", func(t *testing.T) {
		f := newDocumentFixture(t)
		f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		f.spreadsheet.EXPECT().RenderSpreadsheet(stored).Return([]byte("PK"), nil)

		doc, err := f.uc.ExportSpreadsheet(context.Background(), testUser, "q-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FileName != "Orcamento-OFICINA.xlsx" {
			t.Fatalf("unexpected file name: %q", doc.FileName)
		}
		if doc.ContentType != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			t.Fatalf("unexpected content type: %q", doc.ContentType)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		f := newDocumentFixture(t)
		_, err := f.uc.ExportSpreadsheet(context.Background(), testUser, "  ", "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestDocumentFileName(t *testing.T) {
	q := entities.Quote{ClientName: "AUTO PECAS  SILVA"}
	if got := documentFileName(q, "", "pdf"); got != "Orcamento-AUTO_PECAS_SILVA.pdf" {
		t.Fatalf("unexpected file name: %q", got)
	}
	if got := documentFileName(q, "fulano", "xlsx"); got != "Orcamento-fulano.xlsx" {
		t.Fatalf("unexpected file name: %q", got)
	}
}
