package documents

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"
)

const sheetName = "Orcamento"

// SpreadsheetRenderer writes the quote as a flat worksheet: one row per
// item, then a total row. Prices stay numeric so the client can rework the
// sheet.

type SpreadsheetRenderer struct{}

var _ interfaces.ISpreadsheetRenderer = (*SpreadsheetRenderer)(nil)

func NewSpreadsheetRenderer() *SpreadsheetRenderer {
	return &SpreadsheetRenderer{}
}

func (r *SpreadsheetRenderer) RenderSpreadsheet(q entities.Quote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Qtd", "Descrição", "Unitário", "Total", "Obs"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, err
	}

	row := 2
	for _, it := range q.Items {
		cells := []interface{}{it.Quantity, it.Description, it.Price, it.LineTotal(), it.Comment}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells); err != nil {
			return nil, err
		}
		row++
	}

	totalRow := []interface{}{"", "TOTAL", "", q.Total, ""}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &totalRow); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
