// =============================================================================
// BOM Check - Field Coercion Rule Sets
// =============================================================================
//
// The reusable rules and the per-field sequences they are grouped into. Each
// field gets a deterministic ordered list of cleanup steps; the fixer applies
// the list for a field before any value or logic checks run against it.
//
// =============================================================================

package coerce

import (
	"strings"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

// General transformations.
var (
	ToUpper = NewTransform(strings.ToUpper, "Converted to uppercase.")

	RemoveControlChars = NewRule(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`, "",
		"Removed control characters carried over from the workbook.")
)

// Chinese punctuation variants.
var (
	ChineseComma      = NewRule(`[，]`, ",", "Converted Chinese comma to ASCII comma.")
	ChineseLeftParen  = NewRule(`[（]`, "(", "Converted Chinese left parenthesis to ASCII (.")
	ChineseRightParen = NewRule(`[）]`, ")", "Converted Chinese right parenthesis to ASCII ).")
	ChineseSemicolon  = NewRule(`[；]`, ";", "Converted Chinese semicolon to ASCII ;.")
	ChineseColon      = NewRule(`[：]`, ":", "Converted Chinese colon to ASCII :.")
)

// Whitespace normalization.
var (
	RemoveWhitespaces = NewRule(`\s+`, "",
		"Removed whitespace characters (spaces, tabs, newlines, etc.).")
	RemoveWhitespacesExceptSpace = NewRule(`[\t\n\r\f\v]+`, "",
		"Removed whitespace characters (tabs, newlines, form feeds, etc.) but preserved spaces.")
	NbspToSpace         = NewRule(" ", " ", "Replaced non-breaking space with normal space.")
	StripEdgeSpaces     = NewRule(`^ +| +$`, "", "Removed leading and trailing spaces.")
	CollapseMultiSpaces = NewRule(` {2,}`, " ", "Collapsed multiple spaces into one.")
)

// Punctuation to comma, used for designator lists.
var (
	NewlineToComma     = NewRule("\n", ",", "Replaced newline with comma.")
	SemicolonToComma   = NewRule(`[;]`, ",", "Replaced semicolon with comma.")
	StripLeadingComma  = NewRule(`^,+`, "", "Removed leading commas.")
	StripTrailingComma = NewRule(`,+$`, "", "Removed trailing commas.")
	CollapseCommas     = NewRule(`,{2,}`, ",", "Collapsed multiple commas into one.")
)

// Numeric cell defaults.
var EmptyToZero = NewRule(`^\s*$`, "0", "Replaced empty or whitespace-only field with zero.")

// PreRules run against every cell before any field-specific rules.
var PreRules = []Rule{RemoveControlChars}

// =============================================================================
// PER-FIELD SEQUENCES
// =============================================================================

var headerRules = map[string][]Rule{
	bom.LabelModelNumber:  {ToUpper, RemoveWhitespaces},
	bom.LabelBoardName:    {RemoveWhitespacesExceptSpace, CollapseMultiSpaces, StripEdgeSpaces},
	bom.LabelManufacturer: {RemoveWhitespacesExceptSpace, CollapseMultiSpaces, StripEdgeSpaces},
	bom.LabelBuildStage:   {RemoveWhitespaces},
	bom.LabelBomDate:      {RemoveWhitespacesExceptSpace},
	bom.LabelMaterialCost: {RemoveWhitespaces, EmptyToZero},
	bom.LabelOverheadCost: {RemoveWhitespaces, EmptyToZero},
	bom.LabelTotalCost:    {RemoveWhitespaces, EmptyToZero},
}

var rowRules = map[string][]Rule{
	bom.LabelItem:           {RemoveWhitespaces},
	bom.LabelComponentType:  {RemoveWhitespacesExceptSpace},
	bom.LabelDevicePackage:  {RemoveWhitespacesExceptSpace},
	bom.LabelDescription:    {RemoveWhitespacesExceptSpace},
	bom.LabelUnit:           {RemoveWhitespaces},
	bom.LabelClassification: {RemoveWhitespaces},
	bom.LabelMfgName:        {RemoveWhitespacesExceptSpace},
	bom.LabelMfgPartNumber:  {RemoveWhitespacesExceptSpace},
	bom.LabelULVDENumber:    {RemoveWhitespacesExceptSpace},
	bom.LabelValidatedAt:    {RemoveWhitespaces},
	bom.LabelQty:            {RemoveWhitespaces},
	bom.LabelDesignator: {
		ChineseComma, ChineseSemicolon, ChineseColon,
		NewlineToComma, SemicolonToComma,
		RemoveWhitespaces, ToUpper,
		CollapseCommas, StripLeadingComma, StripTrailingComma,
	},
	bom.LabelUnitPrice: {RemoveWhitespaces, EmptyToZero},
	bom.LabelSubTotal:  {RemoveWhitespaces, EmptyToZero},
}

// HeaderRules returns the cleanup sequence for a header field, prefixed with
// the shared pre-rules. Unknown labels get the pre-rules only.
func HeaderRules(label string) []Rule {
	return append(append([]Rule(nil), PreRules...), headerRules[label]...)
}

// RowRules returns the cleanup sequence for a row field, prefixed with the
// shared pre-rules. Unknown labels get the pre-rules only.
func RowRules(label string) []Rule {
	return append(append([]Rule(nil), PreRules...), rowRules[label]...)
}
