// =============================================================================
// BOM Check - Checker
// =============================================================================
//
// The checker coordinates value-level and logic-level checks across a
// complete BOM and returns the accumulated diagnostics in a printable,
// uniform format. It performs no I/O and never raises on a finding; every
// issue becomes one rendered line.
//
// =============================================================================

package checker

import (
	"fmt"

	"github.com/biring/BomCheck-sub001/internal/audit"
	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/internal/validator"
)

// moduleName tags every rendered diagnostic produced here.
const moduleName = "Checker"

// Section names used in diagnostic context.
const (
	sectionRow    = "Row"
	sectionHeader = "Header"
)

// Check runs every field format check and every cross-field logic check over
// the BOM and returns one rendered diagnostic per finding, in traversal
// order: rows first, then the header, board by board. An empty result means
// the BOM is clean.
func Check(b bom.Bom) []string {
	log := audit.NewChangeLog(moduleName)
	log.SetFileName(b.FileName)

	for _, board := range b.Boards {
		log.SetSheetName(board.SheetName)

		for i, row := range board.Rows {
			log.SetSectionName(fmt.Sprintf("%s: %d", sectionRow, i+1))
			checkRow(log, row)
		}

		log.SetSectionName(sectionHeader)
		checkHeaderLogic(log, board)
		checkHeaderFormat(log, board.Header)
	}

	return log.Render()
}

// checkRow records format findings then logic findings for one row.
func checkRow(log *audit.ChangeLog, row bom.Row) {
	for _, err := range validator.RowFormat(row) {
		log.AddError(err)
	}
	for _, err := range validator.Row(row) {
		log.AddError(err)
	}
}

// checkHeaderLogic records the cross-field cost findings for one board.
func checkHeaderLogic(log *audit.ChangeLog, board bom.Board) {
	log.AddError(validator.MaterialCostCalculation(board.Rows, board.Header))
	log.AddError(validator.TotalCostCalculation(board.Header))
}

// checkHeaderFormat records format findings for the header block.
func checkHeaderFormat(log *audit.ChangeLog, header bom.Header) {
	for _, err := range validator.HeaderFormat(header) {
		log.AddError(err)
	}
}
