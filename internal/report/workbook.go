// =============================================================================
// BOM Check - Corrected Workbook Writer
// =============================================================================
//
// Writes a corrected Bom back to disk as a plain .xlsx workbook, one sheet
// per board, in the same layout the parser recognizes: metadata block on top,
// component table header, then the component rows. Formatting from the source
// workbook is not preserved; the output is a clean template-shaped copy.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

// WriteWorkbook writes the corrected BOM to path as an .xlsx workbook.
func WriteWorkbook(b bom.Bom, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, board := range b.Boards {
		sheet := board.SheetName
		if i == 0 {
			// Reuse the default sheet for the first board.
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
			}
		}

		if err := writeBoard(f, sheet, board); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// writeBoard lays out one board on the given sheet.
func writeBoard(f *excelize.File, sheet string, board bom.Board) error {
	header := board.Header

	rows := [][]interface{}{
		{bom.LabelModelNumber, header.ModelNo, "", bom.LabelBuildStage, header.BuildStage},
		{bom.LabelBoardName, header.BoardName, bom.LabelManufacturer, header.Manufacturer,
			bom.LabelBomDate, header.Date},
		{bom.LabelMaterialCost, header.MaterialCost, bom.LabelOverheadCost, header.OverheadCost,
			bom.LabelTotalCost, header.TotalCost},
	}

	labels := bom.RowLabels()
	tableHeader := make([]interface{}, len(labels))
	for i, label := range labels {
		tableHeader[i] = label
	}
	rows = append(rows, tableHeader)

	for _, row := range board.Rows {
		cells := make([]interface{}, len(labels))
		for i, label := range labels {
			cells[i] = row.Field(label)
		}
		rows = append(rows, cells)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return nil
}
