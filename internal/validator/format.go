// =============================================================================
// BOM Check - Field Format Validators
// =============================================================================
//
// Single-cell format rules for every Row and Header field. Unlike the
// cross-field logic rules, these never skip: a value either matches its
// field's expected shape or the validator returns a *Violation describing the
// correct form.
//
// Patterns and rule sentences are kept together per field so parsers,
// checkers and the fixer all report the same guidance.
//
// =============================================================================

package validator

import (
	"fmt"
	"regexp"

	"github.com/biring/BomCheck-sub001/internal/bom"
)

const tmplFormatError = "Invalid '%s' = '%s' does not match expected format. "

// formatViolation builds a Violation for a value that failed its field
// pattern. The rule sentence receives the field label.
func formatViolation(label, value, rule string) *Violation {
	return &Violation{
		Field:   label,
		Value:   value,
		Message: fmt.Sprintf(tmplFormatError, label, value) + fmt.Sprintf(rule, label),
	}
}

// =============================================================================
// ROW FIELD PATTERNS
// =============================================================================

var (
	itemPattern = regexp.MustCompile(`^(?:[1-9][0-9]*)?$`)
	itemRule    = "Correct '%s' is either empty or a positive integer (e.g., '', '1', '45'). "

	// The component type grammar has two branches: the ALT keyword with an
	// optional positive ordinal, or a word phrase. A word phrase must not
	// start with "ALT" followed by a letter; RE2 has no lookahead, so that
	// exclusion is a separate pattern.
	componentAltPattern     = regexp.MustCompile(`^ALT(?:[1-9][0-9]*)?$`)
	componentWordPattern    = regexp.MustCompile(`^[A-Za-z]+(?:[ /][A-Za-z]+)*$`)
	componentAltWordPattern = regexp.MustCompile(`^ALT[A-Za-z]`)
	componentTypeRule       = "Correct '%s' is a string of alphabets with optional spaces " +
		"or '/' characters (e.g., 'Fuse', 'BJT', 'Diode/SCR', 'Battery Terminal') " +
		"or the keyword 'ALT' optionally followed by a positive integer " +
		"(e.g., 'ALT', 'ALT1', 'ALT2'). Values like 'ALT0' or 'ALTXYZ' are not allowed."

	devicePackagePattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*$|^$`)
	devicePackageRule    = "Valid '%s' is either empty or a string of alphabets and numbers " +
		"with optional '-' characters (e.g., '0603', 'QFN-32', 'SMA')."

	descriptionPattern = regexp.MustCompile(`^\S+$`)
	descriptionRule    = "Valid '%s' must not be empty and contain no whitespace " +
		"(e.g., '1k,1%%,0.5W', '1uF,10%%,50V', 'Rectifier,1A,50V')."

	unitsPattern = regexp.MustCompile(`^[A-Za-z]+\.?$|^$`)
	unitsRule    = "Valid '%s' is either empty or a string of alphabets with an optional dot " +
		"at the end (e.g., '', 'PCS', 'Each', 'grams', 'lb.')."

	classificationPattern = regexp.MustCompile(`^[ABC]$`)
	classificationRule    = "Valid '%s' is a single character: 'A', 'B', or 'C'."

	mfgNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ,.&-]*[A-Za-z0-9.]$`)
	mfgNameRule    = "Valid '%s' is a non-empty string starting with a letter or digit. " +
		"It may contain letters, digits, single spaces, and the symbols '.', '-', '&', " +
		"',' Examples: 'ST Microelectronics', 'Delta Pvt. Ltd', 'Hewlett-Packard', " +
		"'Procter & Gamble', '3M', 'TI-89'."

	mfgPartNoPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	mfgPartNoRule    = "Valid '%s' must contain at least one character and " +
		"consist of alphabets and numbers, with optional '-', '_', or '.' characters. " +
		"Whitespace and '*' are not allowed " +
		"(e.g., 'LM358N', 'SN74HC595N-TR', 'AT328P_U', 'BC547B')."

	ulVdePattern = regexp.MustCompile(`^[A-Za-z]{1,4}[- ]?[0-9]{1,8}$`)
	ulVdeRule    = "Valid '%s' starts with 1-4 alphabets followed by 1-8 digits, " +
		"optionally separated by a single '-' or space " +
		"(e.g., 'E1234', 'UL 567890', 'VDE-12345678')."

	stageToken         = `(?:P[0-9]+(?:\.[0-9]+)?|EB[0-9]+(?:\.[0-9]+)?|ECN[0-9]*|MB|MP|FOT)`
	validatedAtPattern = regexp.MustCompile(`^(?:` + stageToken + `(?:[/,]` + stageToken + `)*)?$`)
	validatedAtRule    = "Valid '%s' is either empty or a list of tokens separated " +
		"by '/' or ',' where each token is one of the following formats (case-sensitive): " +
		"'Pn', 'Pn.n', 'EBn', 'EBn.n', 'ECN', 'ECNn', 'MB', 'MP', or 'FOT' " +
		"(e.g., '', 'P1/EB0/MP')."

	quantityPattern = regexp.MustCompile(`^(?:0|[1-9][0-9]*)(?:\.[0-9]+)?$`)
	quantityRule    = "Valid '%s' is a non-negative number (greater than or equal to zero), " +
		"which may be an integer or a decimal with digits after the dot " +
		"(e.g., '0', '2', '0.34')."

	designatorToken   = `[A-Z]{1,5}(?:[0-9]{1,5}|[+-])?`
	designatorPattern = regexp.MustCompile(`^(?:` + designatorToken + `(?:,` + designatorToken + `)*)?$`)
	designatorRule    = "Valid '%s' is either empty or a list of tokens separated by ',' " +
		"where each token starts with 1-5 uppercase alphabets optionally followed by either " +
		"1-5 digits or a single '+' or '-' (e.g., '', 'ACN', 'R1', 'R1,C1,M+')."

	pricePattern = regexp.MustCompile(`^(?:0|[1-9][0-9]*)(?:\.[0-9]+)?$`)
	priceRule    = "Valid '%s' is a non-negative number (>= 0). " +
		"It may be an integer or a decimal number with digits after the dot " +
		"(e.g., '0', '2', '0.34')."
)

// =============================================================================
// HEADER FIELD PATTERNS
// =============================================================================

var (
	modelNumberPattern = regexp.MustCompile(`^[A-Z]{2,3}[0-9]{3,4}[A-Z]{0,3}$`)
	modelNumberRule    = "Correct '%s' starts with 2-3 capital letters, followed by 3-4 digits, " +
		"and may optionally end with up 0-3 capital letters."

	boardNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 ]*PCBA$`)
	boardNameRule    = "Correct '%s' starts with a letter, contains only letters, digits, and spaces, " +
		"and ends with 'PCBA' (uppercase, exact)."

	boardSupplierPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9 ]{2,}$`)
	boardSupplierRule    = "Correct '%s' starts with a capital letter, may contain letters, digits, and spaces, " +
		"and should be at least 3 characters long."

	buildStagePattern = regexp.MustCompile(`^(?:P\d+(?:\.\d+)?|EB\d+(?:\.\d+)?|ECN\d*|MP|MB|FOT)$`)
	buildStageRule    = "Correct '%s' formats are Pn, Pn.n, EBn, EBn.n, MB, MP, ECN, ECNn, or FOT."

	bomDatePattern = regexp.MustCompile(`^[0-9]{4}[-/][0-9]{1,2}[-/][0-9]{1,2}$`)
	bomDateRule    = "Correct '%s' is a calendar date written as YYYY-MM-DD or YYYY/MM/DD."

	costPattern = regexp.MustCompile(`^(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	costRule    = "Correct '%s' is a positive number"
)

// =============================================================================
// ROW FIELD VALIDATORS
// =============================================================================

// Item validates the item number cell: empty or a positive integer.
func Item(value string) error {
	if !itemPattern.MatchString(value) {
		return formatViolation(bom.LabelItem, value, itemRule)
	}
	return nil
}

// ComponentTypeFormat validates the component type cell.
func ComponentTypeFormat(value string) error {
	if componentAltPattern.MatchString(value) {
		return nil
	}
	if componentWordPattern.MatchString(value) && !componentAltWordPattern.MatchString(value) {
		return nil
	}
	return formatViolation(bom.LabelComponentType, value, componentTypeRule)
}

// DevicePackage validates the device package cell.
func DevicePackage(value string) error {
	if !devicePackagePattern.MatchString(value) {
		return formatViolation(bom.LabelDevicePackage, value, devicePackageRule)
	}
	return nil
}

// Description validates the description cell.
func Description(value string) error {
	if !descriptionPattern.MatchString(value) {
		return formatViolation(bom.LabelDescription, value, descriptionRule)
	}
	return nil
}

// Units validates the unit-of-measure cell.
func Units(value string) error {
	if !unitsPattern.MatchString(value) {
		return formatViolation(bom.LabelUnit, value, unitsRule)
	}
	return nil
}

// Classification validates the classification cell.
func Classification(value string) error {
	if !classificationPattern.MatchString(value) {
		return formatViolation(bom.LabelClassification, value, classificationRule)
	}
	return nil
}

// MfgName validates the manufacturer name cell.
func MfgName(value string) error {
	if !mfgNamePattern.MatchString(value) {
		return formatViolation(bom.LabelMfgName, value, mfgNameRule)
	}
	return nil
}

// MfgPartNo validates the manufacturer part number cell.
func MfgPartNo(value string) error {
	if !mfgPartNoPattern.MatchString(value) {
		return formatViolation(bom.LabelMfgPartNumber, value, mfgPartNoRule)
	}
	return nil
}

// ULVDENumber validates the UL/VDE certification number cell.
func ULVDENumber(value string) error {
	if !ulVdePattern.MatchString(value) {
		return formatViolation(bom.LabelULVDENumber, value, ulVdeRule)
	}
	return nil
}

// ValidatedAt validates the validated-at build stage list cell.
func ValidatedAt(value string) error {
	if !validatedAtPattern.MatchString(value) {
		return formatViolation(bom.LabelValidatedAt, value, validatedAtRule)
	}
	return nil
}

// Quantity validates the quantity cell.
func Quantity(value string) error {
	if !quantityPattern.MatchString(value) {
		return formatViolation(bom.LabelQty, value, quantityRule)
	}
	return nil
}

// Designator validates the designator list cell.
func Designator(value string) error {
	if !designatorPattern.MatchString(value) {
		return formatViolation(bom.LabelDesignator, value, designatorRule)
	}
	return nil
}

// UnitPrice validates the unit price cell.
func UnitPrice(value string) error {
	if !pricePattern.MatchString(value) {
		return formatViolation(bom.LabelUnitPrice, value, priceRule)
	}
	return nil
}

// SubTotal validates the sub-total cell.
func SubTotal(value string) error {
	if !pricePattern.MatchString(value) {
		return formatViolation(bom.LabelSubTotal, value, priceRule)
	}
	return nil
}

// =============================================================================
// HEADER FIELD VALIDATORS
// =============================================================================

// ModelNumber validates the model number header cell.
func ModelNumber(value string) error {
	if !modelNumberPattern.MatchString(value) {
		return formatViolation(bom.LabelModelNumber, value, modelNumberRule)
	}
	return nil
}

// BoardName validates the board name header cell.
func BoardName(value string) error {
	if !boardNamePattern.MatchString(value) {
		return formatViolation(bom.LabelBoardName, value, boardNameRule)
	}
	return nil
}

// BoardSupplier validates the board manufacturer header cell.
func BoardSupplier(value string) error {
	if !boardSupplierPattern.MatchString(value) {
		return formatViolation(bom.LabelManufacturer, value, boardSupplierRule)
	}
	return nil
}

// BuildStage validates the build stage header cell.
func BuildStage(value string) error {
	if !buildStagePattern.MatchString(value) {
		return formatViolation(bom.LabelBuildStage, value, buildStageRule)
	}
	return nil
}

// BomDate validates the BOM date header cell.
func BomDate(value string) error {
	if !bomDatePattern.MatchString(value) {
		return formatViolation(bom.LabelBomDate, value, bomDateRule)
	}
	return nil
}

// MaterialCostFormat validates the material cost header cell.
func MaterialCostFormat(value string) error {
	if !costPattern.MatchString(value) {
		return formatViolation(bom.LabelMaterialCost, value, costRule)
	}
	return nil
}

// OverheadCostFormat validates the overhead cost header cell.
func OverheadCostFormat(value string) error {
	if !costPattern.MatchString(value) {
		return formatViolation(bom.LabelOverheadCost, value, costRule)
	}
	return nil
}

// TotalCostFormat validates the total cost header cell.
func TotalCostFormat(value string) error {
	if !costPattern.MatchString(value) {
		return formatViolation(bom.LabelTotalCost, value, costRule)
	}
	return nil
}

// =============================================================================
// AGGREGATION
// =============================================================================

// RowFormat runs every field format validator against a row, in template
// column order, and collects the violations.
func RowFormat(row bom.Row) []error {
	checks := []struct {
		fn    func(string) error
		value string
	}{
		{Item, row.Item},
		{ComponentTypeFormat, row.ComponentType},
		{DevicePackage, row.DevicePackage},
		{Description, row.Description},
		{Units, row.Unit},
		{Classification, row.Classification},
		{MfgName, row.Manufacturer},
		{MfgPartNo, row.MfgPartNumber},
		{ULVDENumber, row.ULVDENumber},
		{ValidatedAt, row.ValidatedAt},
		{Quantity, row.Qty},
		{Designator, row.Designator},
		{UnitPrice, row.UnitPrice},
		{SubTotal, row.SubTotal},
	}

	var errs []error
	for _, check := range checks {
		if err := check.fn(check.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// HeaderFormat runs every header format validator, in template order, and
// collects the violations.
func HeaderFormat(header bom.Header) []error {
	checks := []struct {
		fn    func(string) error
		value string
	}{
		{ModelNumber, header.ModelNo},
		{BoardName, header.BoardName},
		{BoardSupplier, header.Manufacturer},
		{BuildStage, header.BuildStage},
		{BomDate, header.Date},
		{MaterialCostFormat, header.MaterialCost},
		{OverheadCostFormat, header.OverheadCost},
		{TotalCostFormat, header.TotalCost},
	}

	var errs []error
	for _, check := range checks {
		if err := check.fn(check.value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
