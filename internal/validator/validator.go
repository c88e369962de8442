// =============================================================================
// BOM Check - Cross Field Logic Validators
// =============================================================================
//
// Validators enforce multi-cell constraints within a Row or Header. Each
// validator returns nil when the rule holds and a *Violation when it does
// not.
//
// Skip-on-invalid: when a base field the rule needs cannot be parsed to the
// required numeric type, the validator returns nil without checking anything.
// Format-level problems are not this package's concern; a rule only fires
// when its inputs are readable and the relationship between them is wrong.
//
// =============================================================================

package validator

import (
	"fmt"

	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/internal/numeric"
)

// Message templates. The value-error prefix is shared; each rule appends its
// own sentence.
const (
	tmplValueError = "'%s' = '%s' is not correct. "

	tmplQtyZeroRule            = "'%s' must be more than zero when '%s' is blank. "
	tmplDesignatorRequiredRule = "'%s' must be listed when '%s' is '%s' (an integer more than zero). "
	tmplDesignatorCountRule    = "'%s' count of '%s' must match '%s' value of '%s'. "
	tmplUnitPriceRule          = "'%s' must be more than zero when '%s' is '%s' (more than zero)."
	tmplSubTotalZeroRule       = "'%s' must be zero when '%s' is '%s' (zero). "
	tmplSubTotalCalcRule       = "'%s' must be equal to the product of '%s' = '%s' and '%s' = '%s'. "
	tmplMaterialCostCalcRule   = "'%s' must be equal to the aggregate of '%s'. "
	tmplTotalCostCalcRule      = "'%s' must be equal to the sum of '%s' = '%s' and '%s' = '%s'. "
)

// =============================================================================
// VIOLATION
// =============================================================================

// Violation reports one broken cross-field rule. Field and Value identify the
// offending cell; Message is the complete human-readable description.
type Violation struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return v.Message
}

// violation builds a Violation with the shared value-error prefix followed by
// the rule sentence.
func violation(field, value, rule string) *Violation {
	return &Violation{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(tmplValueError, field, value) + rule,
	}
}

// =============================================================================
// ROW RULES
// =============================================================================

// QuantityZero checks that a row with a blank item number carries a zero
// quantity. Rows without an item number are spacers or section markers and
// must not contribute parts.
func QuantityZero(row bom.Row) error {
	qty, err := numeric.ParseFloat(row.Qty)
	if err != nil {
		return nil
	}

	if row.Item == "" && qty != 0.0 {
		return violation(bom.LabelQty, row.Qty,
			fmt.Sprintf(tmplQtyZeroRule, bom.LabelQty, bom.LabelItem))
	}
	return nil
}

// DesignatorRequired checks that a row with an integer quantity of one or
// more lists at least one designator.
func DesignatorRequired(row bom.Row) error {
	qty, err := numeric.ParseInt(row.Qty)
	if err != nil {
		return nil
	}

	if qty >= 1 && row.Designator == "" {
		return violation(bom.LabelDesignator, row.Designator,
			fmt.Sprintf(tmplDesignatorRequiredRule, bom.LabelDesignator, bom.LabelQty, row.Qty))
	}
	return nil
}

// DesignatorCount checks that the number of comma-separated designators
// equals the integer quantity when the quantity is positive. Blank tokens
// from doubled or trailing commas are not counted.
func DesignatorCount(row bom.Row) error {
	qty, err := numeric.ParseInt(row.Qty)
	if err != nil {
		return nil
	}

	count := len(bom.SplitDesignators(row.Designator))
	if qty > 0 && qty != count {
		return violation(bom.LabelDesignator, row.Designator,
			fmt.Sprintf(tmplDesignatorCountRule, bom.LabelDesignator, row.Designator, bom.LabelQty, row.Qty))
	}
	return nil
}

// UnitPriceSpecified checks that a row with a positive quantity carries a
// positive unit price.
func UnitPriceSpecified(row bom.Row) error {
	qty, err := numeric.ParseFloat(row.Qty)
	if err != nil {
		return nil
	}
	unitPrice, err := numeric.ParseFloat(row.UnitPrice)
	if err != nil {
		return nil
	}

	if qty > 0.0 && unitPrice <= 0.0 {
		return violation(bom.LabelUnitPrice, row.UnitPrice,
			fmt.Sprintf(tmplUnitPriceRule, bom.LabelUnitPrice, bom.LabelQty, row.Qty))
	}
	return nil
}

// SubTotalZero checks that a row with a zero quantity carries a zero
// sub-total.
func SubTotalZero(row bom.Row) error {
	qty, err := numeric.ParseFloat(row.Qty)
	if err != nil {
		return nil
	}
	subTotal, err := numeric.ParseFloat(row.SubTotal)
	if err != nil {
		return nil
	}

	if qty == 0.0 && subTotal != 0.0 {
		return violation(bom.LabelSubTotal, row.SubTotal,
			fmt.Sprintf(tmplSubTotalZeroRule, bom.LabelSubTotal, bom.LabelQty, row.Qty))
	}
	return nil
}

// SubTotalCalculation checks that the sub-total equals quantity times unit
// price within tolerance.
func SubTotalCalculation(row bom.Row) error {
	qty, err := numeric.ParseFloat(row.Qty)
	if err != nil {
		return nil
	}
	unitPrice, err := numeric.ParseFloat(row.UnitPrice)
	if err != nil {
		return nil
	}
	subTotal, err := numeric.ParseFloat(row.SubTotal)
	if err != nil {
		return nil
	}

	if !numeric.FloatsEqual(subTotal, qty*unitPrice) {
		return violation(bom.LabelSubTotal, row.SubTotal,
			fmt.Sprintf(tmplSubTotalCalcRule, bom.LabelSubTotal,
				bom.LabelQty, row.Qty, bom.LabelUnitPrice, row.UnitPrice))
	}
	return nil
}

// =============================================================================
// HEADER RULES
// =============================================================================

// MaterialCostCalculation checks that the header material cost equals the
// aggregate of the parseable row sub-totals. Rows whose sub-total does not
// parse are left out of the aggregate; when no row parses at all the check is
// skipped.
func MaterialCostCalculation(rows []bom.Row, header bom.Header) error {
	aggregate := 0.0
	parsed := false
	for _, row := range rows {
		subTotal, err := numeric.ParseFloat(row.SubTotal)
		if err != nil {
			continue
		}
		aggregate += subTotal
		parsed = true
	}
	if !parsed {
		return nil
	}

	materialCost, err := numeric.ParseFloat(header.MaterialCost)
	if err != nil {
		return nil
	}

	if !numeric.FloatsEqual(materialCost, aggregate) {
		return violation(bom.LabelMaterialCost, header.MaterialCost,
			fmt.Sprintf(tmplMaterialCostCalcRule, bom.LabelMaterialCost, bom.LabelSubTotal))
	}
	return nil
}

// TotalCostCalculation checks that the header total cost equals material
// cost plus overhead cost within tolerance.
func TotalCostCalculation(header bom.Header) error {
	materialCost, err := numeric.ParseFloat(header.MaterialCost)
	if err != nil {
		return nil
	}
	overheadCost, err := numeric.ParseFloat(header.OverheadCost)
	if err != nil {
		return nil
	}
	totalCost, err := numeric.ParseFloat(header.TotalCost)
	if err != nil {
		return nil
	}

	if !numeric.FloatsEqual(totalCost, materialCost+overheadCost) {
		return violation(bom.LabelTotalCost, header.TotalCost,
			fmt.Sprintf(tmplTotalCostCalcRule, bom.LabelTotalCost,
				bom.LabelMaterialCost, header.MaterialCost,
				bom.LabelOverheadCost, header.OverheadCost))
	}
	return nil
}

// =============================================================================
// AGGREGATION
// =============================================================================

// rowRules lists every per-row validator in evaluation order.
var rowRules = []func(bom.Row) error{
	QuantityZero,
	DesignatorRequired,
	DesignatorCount,
	UnitPriceSpecified,
	SubTotalZero,
	SubTotalCalculation,
}

// Row runs every per-row validator and collects the violations.
func Row(row bom.Row) []error {
	var errs []error
	for _, rule := range rowRules {
		if err := rule(row); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Board runs every validator over a full board: all per-row rules for each
// row, then the header cost rules.
func Board(board bom.Board) []error {
	var errs []error
	for _, row := range board.Rows {
		errs = append(errs, Row(row)...)
	}
	if err := MaterialCostCalculation(board.Rows, board.Header); err != nil {
		errs = append(errs, err)
	}
	if err := TotalCostCalculation(board.Header); err != nil {
		errs = append(errs, err)
	}
	return errs
}
