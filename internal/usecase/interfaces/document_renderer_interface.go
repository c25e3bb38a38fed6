package interfaces

import "github.com/giancarlo349/G-OS3/internal/domain/entities"

// IPDFRenderer turns a saved quote into the printable A4 document.
type IPDFRenderer interface {
	RenderPDF(q entities.Quote) ([]byte, error)
}

// ISpreadsheetRenderer turns a saved quote's item list and total into
// tabular rows.
type ISpreadsheetRenderer interface {
	RenderSpreadsheet(q entities.Quote) ([]byte, error)
}
