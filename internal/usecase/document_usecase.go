package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

var ErrExportFailed = errors.New("document generation failed")

// ShareMessage is the canned note copied to the operator's clipboard when a
// document is generated. Producing it never fails an export.
const ShareMessage = "Olá!\nEncaminhamos o orçamento em PDF.\n\nObservações:\n• Alguns itens podem ser adaptados conforme disponibilidade.\n• Pedimos atenção aos valores, descrições e quantidades.\n• Em caso de dúvidas ou qualquer divergência, é só nos chamar 😊"

// Document is a rendered export ready for download.
type Document struct {
	FileName     string
	ContentType  string
	Content      []byte
	ShareMessage string
}

// IDocumentUseCase renders a saved quote into a downloadable file. Callers
// save the draft (silently) first; export always reads the stored record so
// the document and the store agree.

type IDocumentUseCase interface {
	ExportPDF(ctx context.Context, user entities.User, quoteID, suffix string) (Document, error)
	ExportSpreadsheet(ctx context.Context, user entities.User, quoteID, suffix string) (Document, error)
}

type DocumentUseCase struct {
	quotes      interfaces.IQuoteRepository
	pdf         interfaces.IPDFRenderer
	spreadsheet interfaces.ISpreadsheetRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(quotes interfaces.IQuoteRepository, pdf interfaces.IPDFRenderer, spreadsheet interfaces.ISpreadsheetRenderer) *DocumentUseCase {
	return &DocumentUseCase{quotes: quotes, pdf: pdf, spreadsheet: spreadsheet}
}

func (u *DocumentUseCase) ExportPDF(ctx context.Context, user entities.User, quoteID, suffix string) (Document, error) {
	q, err := u.load(ctx, user, quoteID)
	if err != nil {
		return Document{}, err
	}
	content, err := u.pdf.RenderPDF(q)
	if err != nil {
		return Document{}, errors.Join(ErrExportFailed, err)
	}
	return Document{
		FileName:     documentFileName(q, suffix, "pdf"),
		ContentType:  "application/pdf",
		Content:      content,
		ShareMessage: ShareMessage,
	}, nil
}

func (u *DocumentUseCase) ExportSpreadsheet(ctx context.Context, user entities.User, quoteID, suffix string) (Document, error) {
	q, err := u.load(ctx, user, quoteID)
	if err != nil {
		return Document{}, err
	}
	content, err := u.spreadsheet.RenderSpreadsheet(q)
	if err != nil {
		return Document{}, errors.Join(ErrExportFailed, err)
	}
	return Document{
		FileName:     documentFileName(q, suffix, "xlsx"),
		ContentType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:      content,
		ShareMessage: ShareMessage,
	}, nil
}

func (u *DocumentUseCase) load(ctx context.Context, user entities.User, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || q.UserID != user.UID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// documentFileName builds "Orcamento-<suffix>.<ext>", defaulting the suffix
// to the client name, with whitespace collapsed to underscores.
func documentFileName(q entities.Quote, suffix, ext string) string {
	if strings.TrimSpace(suffix) == "" {
		suffix = q.ClientName
	}
	suffix = whitespaceRun.ReplaceAllString(strings.TrimSpace(suffix), "_")
	return fmt.Sprintf("Orcamento-%s.%s", suffix, ext)
}
