// =============================================================================
// BOM Check - Workbook Parser
// =============================================================================
//
// This module reads .xlsx workbooks and extracts version 3 BOM boards into the
// structured model in internal/bom. A workbook may contain any number of
// sheets; only sheets that carry the version 3 component table are parsed,
// everything else (summary sheets, change history, blank tabs) is ignored.
//
// SHEET RECOGNITION:
//   A sheet qualifies as a version 3 board BOM when a single row contains all
//   of the template identifier labels (see bom.TemplateIdentifiers). Matching
//   is tolerant: labels are compared lowercased with all whitespace removed,
//   so "Manufacturer P/N" matches "manufacturer p/n " and
//   "MANUFACTURER\nP/N" alike.
//
// SHEET LAYOUT (Expected Structure):
//   | Model No:  | HC-1234   |              | Rev:   | EB2        |
//   | Description:| Main Board| Manufacturer:| Foo Ltd| Date: | 2024-03-01 |
//   | Material   | 0.85      | OHP          | 0.10   | Total | 0.95       |
//   | Item | Component | ... | Qty | Designator | U/P ... | Sub-Total ... |
//   | 1    | Resistor  | ... | 2   | R1,R2      | 0.01    | 0.02          |
//
//   Everything above the identifier row is the board metadata block; the
//   identifier row itself supplies the column headers; everything below it is
//   the component table.
//
// =============================================================================

package bomparser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

// rowNotFound marks a failed identifier-row search. Valid row indexes are
// zero or higher.
const rowNotFound = -1

// =============================================================================
// PUBLIC API
// =============================================================================

// Parse reads an .xlsx workbook and returns the version 3 boards it contains.
// Sheets that do not match the version 3 template are skipped. It returns an
// error if the file cannot be opened or if no sheet parses into a board.
func Parse(path string) (bom.Bom, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return bom.Bom{}, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	return ParseFile(f, filepath.Base(path))
}

// ParseFile parses an already open workbook. fileName is recorded on the
// returned Bom for report context.
func ParseFile(f *excelize.File, fileName string) (bom.Bom, error) {
	var boards []bom.Board

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return bom.Bom{}, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}

		if !isBoardSheet(rows) {
			continue
		}

		board, err := parseBoardSheet(sheetName, rows)
		if err != nil {
			return bom.Bom{}, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		boards = append(boards, board)
	}

	if len(boards) == 0 {
		return bom.Bom{}, fmt.Errorf("%q has no version 3 board sheets", fileName)
	}

	return bom.Bom{
		Boards:    boards,
		FileName:  fileName,
		IsCostBom: isCostBom(boards),
	}, nil
}

// IsV3Bom reports whether any sheet in the workbook at path uses the
// version 3 BOM template.
func IsV3Bom(path string) (bool, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to open workbook %q: %w", path, err)
	}
	defer f.Close()

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return false, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		if isBoardSheet(rows) {
			return true, nil
		}
	}
	return false, nil
}

// =============================================================================
// SHEET RECOGNITION
// =============================================================================

// isBoardSheet reports whether the sheet carries all version 3 template
// identifiers in a single row. Row detection is substring based; the final
// check requires each identifier to match a cell exactly after normalization.
func isBoardSheet(rows [][]string) bool {
	identifiers := bom.TemplateIdentifiers()

	best := bestIdentifierRow(rows, identifiers)
	if best == rowNotFound {
		return false
	}

	for _, identifier := range identifiers {
		if !rowContainsIdentifier(rows[best], identifier) {
			return false
		}
	}
	return true
}

// bestIdentifierRow returns the index of the row with the highest number of
// identifier substring matches, or rowNotFound when no row matches anything.
// Each identifier counts at most once per row.
func bestIdentifierRow(rows [][]string, identifiers []string) int {
	bestIndex := rowNotFound
	maxMatches := 0

	for i, row := range rows {
		matches := 0
		for _, identifier := range identifiers {
			want := normalizeIdentifier(identifier)
			for _, cell := range row {
				if strings.Contains(normalizeIdentifier(cell), want) {
					matches++
					break
				}
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			bestIndex = i
		}
	}

	return bestIndex
}

// rowContainsIdentifier reports whether any cell of the row equals the
// identifier after normalization.
func rowContainsIdentifier(row []string, identifier string) bool {
	want := normalizeIdentifier(identifier)
	for _, cell := range row {
		if normalizeIdentifier(cell) == want {
			return true
		}
	}
	return false
}

// normalizeIdentifier lowercases a label and strips every whitespace rune so
// that header comparison survives stray spaces, tabs and newlines.
func normalizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// =============================================================================
// BOARD PARSING
// =============================================================================

// parseBoardSheet splits a recognized sheet into its metadata block and
// component table and converts both into the structured board model.
func parseBoardSheet(sheetName string, rows [][]string) (bom.Board, error) {
	headerRowIndex := bestIdentifierRow(rows, bom.TemplateIdentifiers())
	if headerRowIndex <= 0 {
		return bom.Board{}, fmt.Errorf("unable to locate the component table header row")
	}

	header, err := parseHeaderBlock(rows[:headerRowIndex])
	if err != nil {
		return bom.Board{}, err
	}

	tableRows, err := parseTableBlock(rows[headerRowIndex], rows[headerRowIndex+1:])
	if err != nil {
		return bom.Board{}, err
	}

	return bom.Board{
		Header:    header,
		Rows:      tableRows,
		SheetName: sheetName,
	}, nil
}

// parseHeaderBlock maps the metadata block above the component table into a
// Header. The block is flattened row by row into a single list; each known
// label is located by normalized exact match and its value is the next
// non-empty entry. A missing label yields an empty field, but a label with no
// value following it is an error since every present label should carry one.
func parseHeaderBlock(block [][]string) (bom.Header, error) {
	var flat []string
	for _, row := range block {
		flat = append(flat, row...)
	}

	var header bom.Header
	for _, label := range bom.HeaderLabels() {
		value, err := valueAfterIdentifier(flat, label)
		if err != nil {
			return bom.Header{}, err
		}
		header = header.WithField(label, value)
	}
	return header, nil
}

// valueAfterIdentifier returns the first non-empty entry after the identifier
// in a flattened label/value list, or "" when the identifier is absent.
func valueAfterIdentifier(entries []string, identifier string) (string, error) {
	index := rowNotFound
	want := normalizeIdentifier(identifier)
	for i, entry := range entries {
		if normalizeIdentifier(entry) == want {
			index = i
			break
		}
	}
	if index == rowNotFound {
		return "", nil
	}

	for i := index + 1; i < len(entries); i++ {
		if value := strings.TrimSpace(entries[i]); value != "" {
			return value, nil
		}
	}
	return "", fmt.Errorf("no value found for label %q at index %d", identifier, index)
}

// parseTableBlock converts the component table into Row values. Columns are
// mapped by normalized label match against the header row, so column order in
// the workbook does not matter. Fully blank rows are skipped.
func parseTableBlock(headerRow []string, dataRows [][]string) ([]bom.Row, error) {
	columns := make(map[string]int)
	for _, label := range bom.RowLabels() {
		want := normalizeIdentifier(label)
		for i, cell := range headerRow {
			if normalizeIdentifier(cell) == want {
				columns[label] = i
				break
			}
		}
	}

	var parsed []bom.Row
	for _, cells := range dataRows {
		if isRowEmpty(cells) {
			continue
		}

		getCell := func(index int) string {
			if index < len(cells) {
				return strings.TrimSpace(cells[index])
			}
			return ""
		}

		var row bom.Row
		for label, index := range columns {
			row = row.WithField(label, getCell(index))
		}
		parsed = append(parsed, row)
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("component table has no data rows")
	}
	return parsed, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// COST CLASSIFICATION
// =============================================================================

// isCostBom classifies the parsed boards. Any board with both material and
// total cost blank or zero marks the workbook as not costed; otherwise the
// workbook is assumed to be a cost BOM.
func isCostBom(boards []bom.Board) bool {
	for _, board := range boards {
		if isEmptyOrZero(board.Header.MaterialCost) && isEmptyOrZero(board.Header.TotalCost) {
			return false
		}
	}
	return true
}

func isEmptyOrZero(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return v == 0
}
