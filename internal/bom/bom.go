// =============================================================================
// BOM Check - Data Model
// =============================================================================
//
// This package contains the shared value types used across the audit pipeline
// to avoid import cycles. Types defined here are used by:
//   - bomparser
//   - checker
//   - fixer
//   - corrector / validator
//
// All numeric-looking fields are stored exactly as they appear in the source
// workbook, as plain strings. Parsing to typed values happens at the point of
// use (see internal/numeric). Values are treated as immutable: a correction
// produces a new Row or Header via the With* helpers, it never mutates the
// original in place.
//
// =============================================================================

package bom

import "strings"

// =============================================================================
// FIELD LABELS
// =============================================================================
// Excel labels for the version 3 BOM template. These are the strings that
// appear in the source workbook and in every audit or violation message, so
// they are shared between the parser and the rule engine.

// Header block labels.
const (
	LabelModelNumber  = "Model No:"
	LabelBuildStage   = "Rev:"
	LabelBoardName    = "Description:"
	LabelManufacturer = "Manufacturer:"
	LabelBomDate      = "Date:"
	LabelMaterialCost = "Material"
	LabelOverheadCost = "OHP"
	LabelTotalCost    = "Total"
)

// Component table column labels.
const (
	LabelItem           = "Item"
	LabelComponentType  = "Component"
	LabelDevicePackage  = "Device Package"
	LabelDescription    = "Description"
	LabelUnit           = "Unit"
	LabelClassification = "Classification"
	LabelMfgName        = "Manufacturer"
	LabelMfgPartNumber  = "Manufacturer P/N"
	LabelULVDENumber    = "UL/VDE Number"
	LabelValidatedAt    = "Validated at"
	LabelQty            = "Qty"
	LabelDesignator     = "Designator"
	LabelUnitPrice      = "U/P (RMB W/ VAT)"
	LabelSubTotal       = "Sub-Total (RMB W/ VAT)"
)

// TemplateIdentifiers is the minimum set of column labels that must appear
// together in a single sheet row for the sheet to be recognized as a version 3
// BOM board table.
func TemplateIdentifiers() []string {
	return []string{
		LabelClassification,
		LabelDesignator,
		LabelMfgName,
		LabelMfgPartNumber,
	}
}

// =============================================================================
// ROW
// =============================================================================

// Row represents a single line in the BOM component table.
// All fields are strings; the zero value is a fully blank row.
type Row struct {
	Item           string
	ComponentType  string
	DevicePackage  string
	Description    string
	Unit           string
	Classification string
	Manufacturer   string
	MfgPartNumber  string
	ULVDENumber    string
	ValidatedAt    string
	Qty            string
	Designator     string
	UnitPrice      string
	SubTotal       string
}

// RowLabels returns the table column labels in template order.
func RowLabels() []string {
	return []string{
		LabelItem,
		LabelComponentType,
		LabelDevicePackage,
		LabelDescription,
		LabelUnit,
		LabelClassification,
		LabelMfgName,
		LabelMfgPartNumber,
		LabelULVDENumber,
		LabelValidatedAt,
		LabelQty,
		LabelDesignator,
		LabelUnitPrice,
		LabelSubTotal,
	}
}

// Field returns the row value stored under the given Excel label.
// Unknown labels return "".
func (r Row) Field(label string) string {
	switch label {
	case LabelItem:
		return r.Item
	case LabelComponentType:
		return r.ComponentType
	case LabelDevicePackage:
		return r.DevicePackage
	case LabelDescription:
		return r.Description
	case LabelUnit:
		return r.Unit
	case LabelClassification:
		return r.Classification
	case LabelMfgName:
		return r.Manufacturer
	case LabelMfgPartNumber:
		return r.MfgPartNumber
	case LabelULVDENumber:
		return r.ULVDENumber
	case LabelValidatedAt:
		return r.ValidatedAt
	case LabelQty:
		return r.Qty
	case LabelDesignator:
		return r.Designator
	case LabelUnitPrice:
		return r.UnitPrice
	case LabelSubTotal:
		return r.SubTotal
	}
	return ""
}

// WithField returns a copy of the row with the field under the given Excel
// label replaced. Unknown labels return the row unchanged.
func (r Row) WithField(label, value string) Row {
	switch label {
	case LabelItem:
		r.Item = value
	case LabelComponentType:
		r.ComponentType = value
	case LabelDevicePackage:
		r.DevicePackage = value
	case LabelDescription:
		r.Description = value
	case LabelUnit:
		r.Unit = value
	case LabelClassification:
		r.Classification = value
	case LabelMfgName:
		r.Manufacturer = value
	case LabelMfgPartNumber:
		r.MfgPartNumber = value
	case LabelULVDENumber:
		r.ULVDENumber = value
	case LabelValidatedAt:
		r.ValidatedAt = value
	case LabelQty:
		r.Qty = value
	case LabelDesignator:
		r.Designator = value
	case LabelUnitPrice:
		r.UnitPrice = value
	case LabelSubTotal:
		r.SubTotal = value
	}
	return r
}

// SplitDesignators splits a designator cell on commas, trims each token and
// drops blanks. "R1, R2,,R3" yields ["R1" "R2" "R3"]; a blank cell yields nil.
func SplitDesignators(designator string) []string {
	var tokens []string
	for _, part := range strings.Split(designator, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// =============================================================================
// HEADER
// =============================================================================

// Header represents the board-level metadata block of a single board BOM.
type Header struct {
	ModelNo      string
	BoardName    string
	Manufacturer string
	BuildStage   string
	Date         string
	MaterialCost string
	OverheadCost string
	TotalCost    string
}

// HeaderLabels returns the header block labels in template order.
func HeaderLabels() []string {
	return []string{
		LabelModelNumber,
		LabelBuildStage,
		LabelBoardName,
		LabelManufacturer,
		LabelBomDate,
		LabelMaterialCost,
		LabelOverheadCost,
		LabelTotalCost,
	}
}

// Field returns the header value stored under the given Excel label.
func (h Header) Field(label string) string {
	switch label {
	case LabelModelNumber:
		return h.ModelNo
	case LabelBuildStage:
		return h.BuildStage
	case LabelBoardName:
		return h.BoardName
	case LabelManufacturer:
		return h.Manufacturer
	case LabelBomDate:
		return h.Date
	case LabelMaterialCost:
		return h.MaterialCost
	case LabelOverheadCost:
		return h.OverheadCost
	case LabelTotalCost:
		return h.TotalCost
	}
	return ""
}

// WithField returns a copy of the header with the field under the given Excel
// label replaced. Unknown labels return the header unchanged.
func (h Header) WithField(label, value string) Header {
	switch label {
	case LabelModelNumber:
		h.ModelNo = value
	case LabelBuildStage:
		h.BuildStage = value
	case LabelBoardName:
		h.BoardName = value
	case LabelManufacturer:
		h.Manufacturer = value
	case LabelBomDate:
		h.Date = value
	case LabelMaterialCost:
		h.MaterialCost = value
	case LabelOverheadCost:
		h.OverheadCost = value
	case LabelTotalCost:
		h.TotalCost = value
	}
	return h
}

// =============================================================================
// BOARD AND BOM
// =============================================================================

// Board is one board BOM: its header plus the ordered component rows, tagged
// with the worksheet it was parsed from.
type Board struct {
	Header    Header
	Rows      []Row
	SheetName string
}

// Bom is a complete parsed workbook: one or more boards plus the source file
// name used for report context. IsCostBom records whether the workbook carries
// cost data; a board with both material and total cost blank or zero marks the
// whole workbook as not costed.
type Bom struct {
	Boards    []Board
	FileName  string
	IsCostBom bool
}
