package documents

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

// PDFRenderer produces the printable A4 quote handed to the client: company
// header, client block, the item table with per-line comments, the total
// band and the standing footer notes.
//
// Company identity comes from env:
//   - COMPANY_NAME (default: ORCAMENTOS)
//   - COMPANY_PHONE (optional)

type PDFRenderer struct {
	companyName  string
	companyPhone string
}

var _ interfaces.IPDFRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	name := os.Getenv("COMPANY_NAME")
	if name == "" {
		name = "ORCAMENTOS"
	}
	return &PDFRenderer{
		companyName:  name,
		companyPhone: os.Getenv("COMPANY_PHONE"),
	}
}

const (
	colQty   = 18.0
	colDesc  = 102.0
	colUnit  = 35.0
	colTotal = 35.0
)

func (r *PDFRenderer) RenderPDF(q entities.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 18)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Company header.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(r.companyName), "", 1, "C", false, 0, "")
	if r.companyPhone != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, tr(r.companyPhone), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Client and date block.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("ORÇAMENTO"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Cliente: "+q.ClientName), "", 1, "L", false, 0, "")
	if q.ClientPhone != "" {
		pdf.CellFormat(0, 5, tr("Telefone: "+q.ClientPhone), "", 1, "L", false, 0, "")
	}
	if q.Author != "" {
		pdf.CellFormat(0, 5, tr("Vendedor: "+q.Author), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 5, tr("Data: "+documentDate(q)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Item table header.
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colQty, 7, tr("Qtd"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(colDesc, 7, tr("Descrição"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colUnit, 7, tr("Unitário"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 7, tr("Total"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range q.Items {
		pdf.CellFormat(colQty, 6, formatQuantity(it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colDesc, 6, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colUnit, 6, formatMoney(it.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 6, formatMoney(it.LineTotal()), "1", 1, "R", false, 0, "")
		if c := strings.TrimSpace(it.Comment); c != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(colQty, 5, "", "1", 0, "C", false, 0, "")
			pdf.CellFormat(colDesc+colUnit+colTotal, 5, tr("Obs: "+c), "1", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		}
	}

	// Total band.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colQty+colDesc+colUnit, 8, tr("TOTAL"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colTotal, 8, formatMoney(q.Total), "1", 1, "R", true, 0, "")
	pdf.Ln(6)

	// Standing notes.
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, 4, tr("Produtos sujeitos à disponibilidade de estoque."), "", "L", false)
	pdf.MultiCell(0, 4, tr("Orçamento válido por 7 dias a partir da data de emissão."), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func documentDate(q entities.Quote) string {
	at := q.UpdatedAt
	if at.IsZero() {
		at = q.CreatedAt
	}
	if at.IsZero() {
		at = time.Now()
	}
	return at.Format("02/01/2006")
}

// formatMoney renders the pt-BR currency form: R$ 1.234,56.
func formatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}
	out := "R$ " + grouped.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}

// formatQuantity drops the decimals for whole quantities.
func formatQuantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
