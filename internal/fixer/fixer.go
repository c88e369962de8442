// =============================================================================
// BOM Check - Fixer
// =============================================================================
//
// The fixer applies text cleanup and automatic corrections across the BOM
// hierarchy and rebuilds it from corrected values. The input is never
// mutated; the result is a new Bom plus the rendered change log describing
// every applied repair with its file, sheet and section context.
//
// Per board the pipeline is:
//  1. each row: coerce every cell, then the automatic row corrections
//     (component type lookup, designator expansion, sub-total math)
//  2. header: coerce every cell, then the automatic cost corrections
//     (material cost from row sub-totals, total cost from material plus
//     overhead)
//
// Cost corrections require parseable numerics; a parse failure aborts the
// fix with an error naming the board, section and field.
//
// =============================================================================

package fixer

import (
	"fmt"

	"github.com/biring/BomCheck-sub001/internal/audit"
	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/internal/coerce"
	"github.com/biring/BomCheck-sub001/internal/corrector"
	"github.com/biring/BomCheck-sub001/internal/lookup"
)

// moduleName tags every rendered change entry produced here.
const moduleName = "fixer"

const tmplCoerceChange = "'%s' changed from '%s' to '%s'. %s"

// Fix returns a corrected copy of the BOM and the rendered change log.
// The lookup dictionary and configuration are treated as immutable snapshots
// for the duration of the pass.
func Fix(b bom.Bom, dict *lookup.Dictionary, cfg corrector.Config) (bom.Bom, []string, error) {
	log := audit.NewChangeLog(moduleName)
	log.SetFileName(b.FileName)

	fixed := bom.Bom{FileName: b.FileName}

	for _, board := range b.Boards {
		log.SetSheetName(board.SheetName)

		fixedBoard := bom.Board{SheetName: board.SheetName}
		for i, row := range board.Rows {
			log.SetSectionName(fmt.Sprintf("Row: %d", i+1))

			cleaned := fixRowClean(log, row)
			fixedRow, err := fixRowAuto(log, cleaned, dict, cfg)
			if err != nil {
				return bom.Bom{}, nil, fmt.Errorf("sheet %q row %d: %w", board.SheetName, i+1, err)
			}
			fixedBoard.Rows = append(fixedBoard.Rows, fixedRow)
		}

		log.SetSectionName("Header")
		fixedBoard.Header = fixHeaderClean(log, board.Header)

		header, err := fixHeaderAuto(log, fixedBoard)
		if err != nil {
			return bom.Bom{}, nil, fmt.Errorf("sheet %q header: %w", board.SheetName, err)
		}
		fixedBoard.Header = header

		fixed.Boards = append(fixed.Boards, fixedBoard)
	}

	return fixed, log.Render(), nil
}

// =============================================================================
// ROW FIXES
// =============================================================================

// fixRowClean applies the per-field coercion rules to every cell of the row
// and logs each applied transformation.
func fixRowClean(log *audit.ChangeLog, row bom.Row) bom.Row {
	for _, label := range bom.RowLabels() {
		result := coerce.Apply(row.Field(label), coerce.RowRules(label))
		if result.Changed() {
			row = row.WithField(label, result.ValueOut)
		}
		logCoercion(log, label, result)
	}
	return row
}

// fixRowAuto applies the deterministic row corrections in order. The
// component type lookup and designator expansion never fail; the sub-total
// recomputation fails hard when a base cell does not parse.
func fixRowAuto(log *audit.ChangeLog, row bom.Row, dict *lookup.Dictionary, cfg corrector.Config) (bom.Row, error) {
	value, entry := corrector.ComponentType(row, dict, cfg)
	row = row.WithField(bom.LabelComponentType, value)
	log.AddEntry(entry)

	value, entry = corrector.ExpandDesignators(row)
	row = row.WithField(bom.LabelDesignator, value)
	log.AddEntry(entry)

	value, entry, err := corrector.SubTotal(row)
	if err != nil {
		return bom.Row{}, err
	}
	row = row.WithField(bom.LabelSubTotal, value)
	log.AddEntry(entry)

	return row, nil
}

// =============================================================================
// HEADER FIXES
// =============================================================================

// fixHeaderClean applies the per-field coercion rules to every header cell.
func fixHeaderClean(log *audit.ChangeLog, header bom.Header) bom.Header {
	for _, label := range bom.HeaderLabels() {
		result := coerce.Apply(header.Field(label), coerce.HeaderRules(label))
		if result.Changed() {
			header = header.WithField(label, result.ValueOut)
		}
		logCoercion(log, label, result)
	}
	return header
}

// fixHeaderAuto recomputes the derived header costs. Material cost must be
// fixed first so the total cost correction sees the repaired value.
func fixHeaderAuto(log *audit.ChangeLog, board bom.Board) (bom.Header, error) {
	header := board.Header

	value, entry, err := corrector.MaterialCost(board)
	if err != nil {
		return bom.Header{}, err
	}
	header = header.WithField(bom.LabelMaterialCost, value)
	log.AddEntry(entry)

	value, entry, err = corrector.TotalCost(header)
	if err != nil {
		return bom.Header{}, err
	}
	header = header.WithField(bom.LabelTotalCost, value)
	log.AddEntry(entry)

	return header, nil
}

// logCoercion records one change entry per applied coercion rule.
func logCoercion(log *audit.ChangeLog, label string, result coerce.Result) {
	for _, change := range result.Changes {
		log.AddEntry(fmt.Sprintf(tmplCoerceChange,
			label, change.Before, change.After, change.Description))
	}
}
