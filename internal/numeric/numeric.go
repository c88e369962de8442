// =============================================================================
// BOM Check - Numeric Helpers
// =============================================================================
//
// Cell values coming out of a workbook are strings, often with stray
// whitespace and with float formatting quirks introduced by the spreadsheet
// application. This package centralizes the conversions the rule engine
// needs:
//   - strict string-to-number parsing
//   - tolerant float equality for money comparisons
//   - canonical float-to-string rendering for corrected cells
//
// =============================================================================

package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference below which two rounded floats are
// considered equal.
const Tolerance = 1e-6

// roundDecimals is the number of decimal places both operands are rounded to
// before comparison.
const roundDecimals = 6

// =============================================================================
// PARSING
// =============================================================================

// ParseFloat converts a cell value to a float64.
// Leading and trailing whitespace is ignored. NaN and infinities are rejected
// because they are never legitimate BOM quantities or prices.
func ParseFloat(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to float", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("cannot convert %q to float", s)
	}
	return v, nil
}

// ParseInt converts a cell value to an int.
// Leading and trailing whitespace is ignored. Decimal forms such as "1.0" are
// rejected: a quantity cell must hold a whole number literal.
func ParseInt(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to int", s)
	}
	return v, nil
}

// =============================================================================
// COMPARISON
// =============================================================================

// FloatsEqual reports whether a and b are equal for BOM cost purposes.
// Both operands are rounded to six decimal places first, then compared with a
// strict absolute tolerance. Values that differ only past the sixth decimal
// place compare equal; values whose rounded forms differ by a full tolerance
// step do not.
func FloatsEqual(a, b float64) bool {
	return math.Abs(Round6(a)-Round6(b)) < Tolerance
}

// Round6 rounds to six decimal places using the shortest correctly rounded
// decimal representation. Scaling by 1e6 and calling math.Round would drag
// binary representation error into the rounding decision for values near a
// half-step boundary.
func Round6(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', roundDecimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatFloat renders a float the way corrected cells are written back:
// shortest exact decimal form, always carrying a decimal point. Whole values
// render as "1.0" rather than "1" so a corrected cell is visibly a float.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
