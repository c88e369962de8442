// =============================================================================
// BOM Check - Auto Correction Rules
// =============================================================================
//
// Pure correction functions over BOM rows and headers. Each rule computes the
// corrected value for one field and returns it together with a one-line audit
// message; an empty message means no correction was applied. Inputs are never
// mutated.
//
// Error policy:
//   - Derived-cost rules (SubTotal, MaterialCost, TotalCost) require every
//     base field to parse as a float. A parse failure is a hard error naming
//     the field and the offending value.
//   - ExpandDesignators and ComponentType never fail. A designator token that
//     does not match the range grammar passes through verbatim, and a
//     component type with no agreed match is returned unchanged.
//
// =============================================================================

package corrector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/biring/BomCheck-sub001/internal/bom"
	"github.com/biring/BomCheck-sub001/internal/lookup"
	"github.com/biring/BomCheck-sub001/internal/numeric"
	"github.com/biring/BomCheck-sub001/internal/similarity"
)

// Config carries the tunables of the component type normalizer. A zero value
// disables masking and accepts any match score.
type Config struct {
	// IgnoreMask lists substrings stripped from the component type before
	// matching. Package markers such as "SMD" or "DIP" carry no type
	// information and only dilute the similarity scores.
	IgnoreMask []string

	// JaccardThreshold is the minimum Jaccard score for a usable match.
	JaccardThreshold float64

	// LevenshteinThreshold is the minimum Levenshtein ratio for a usable
	// match.
	LevenshteinThreshold float64
}

// Audit message layout shared by every correction rule.
const auditTemplate = "'%s' changed from '%s' to '%s'. %s"

// Reasons cited in audit messages.
const (
	reasonDesignatorExpand = "Designator range expanded to remove '-' dash."
	reasonSubTotalChange   = "Sub-total set to the product of Quantity and Designator."
	reasonMaterialChange   = "Material cost set to the sum of sub totals."
	reasonTotalChange      = "Total cost set to the product of material and overhead cost."
)

const errFloatParse = "%s value '%s' is not a valid floating point number: %v"

// =============================================================================
// DESIGNATOR RANGE EXPANSION
// =============================================================================

// designatorRangeRE matches one compact range token: an alphabetic prefix,
// a start index, a dash with no surrounding spaces, a second prefix, and an
// end index. The two prefixes must also be identical, which is checked
// separately because RE2 has no backreferences.
var designatorRangeRE = regexp.MustCompile(`^([A-Za-z]+)(\d+)-([A-Za-z]+)(\d+)$`)

// ExpandDesignators rewrites compact designator ranges as explicit
// comma-separated references. "R1, R3-R6" becomes "R1,R3,R4,R5,R6".
// Descending ranges expand in reverse order, so "R45-R43" becomes
// "R45,R44,R43". Tokens that do not match the strict range grammar, including
// ranges with spaces around the dash or with differing prefixes, pass through
// verbatim, as do ranges whose indexes do not fit in an int. The audit
// message is empty when the output equals the input.
func ExpandDesignators(row bom.Row) (string, string) {
	in := row.Designator

	var expanded []string
	for _, part := range strings.Split(in, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := designatorRangeRE.FindStringSubmatch(part)
		if m == nil || m[1] != m[3] {
			expanded = append(expanded, part)
			continue
		}
		prefix := m[1]
		start, startErr := strconv.Atoi(m[2])
		end, endErr := strconv.Atoi(m[4])
		if startErr != nil || endErr != nil {
			// Index overflows int; not a usable range.
			expanded = append(expanded, part)
			continue
		}
		step := 1
		if end < start {
			step = -1
		}
		for i := start; i != end+step; i += step {
			expanded = append(expanded, fmt.Sprintf("%s%d", prefix, i))
		}
	}

	out := strings.Join(expanded, ",")
	log := ""
	if out != in {
		log = fmt.Sprintf(auditTemplate, bom.LabelDesignator, in, out, reasonDesignatorExpand)
	}
	return out, log
}

// =============================================================================
// COMPONENT TYPE NORMALIZATION
// =============================================================================

// ComponentType maps a free-text component type to its canonical key using
// the lookup dictionary.
//
// The raw text, minus any ignore-mask substrings, is matched against the
// flattened alias list with both similarity algorithms. A correction is
// accepted only when both algorithms pick the exact same alias and that alias
// belongs to exactly one canonical key. Any other outcome, including an alias
// shared by several keys, returns the original text unchanged with an empty
// audit message.
func ComponentType(row bom.Row, dict *lookup.Dictionary, cfg Config) (string, string) {
	in := row.ComponentType

	test := in
	for _, mask := range cfg.IgnoreMask {
		test = strings.ReplaceAll(test, mask, "")
	}

	aliases := dict.Aliases()
	jaccardBest, jaccardScore := similarity.JaccardMatch(test, aliases, cfg.JaccardThreshold)
	levBest, levScore := similarity.LevenshteinMatch(test, aliases, cfg.LevenshteinThreshold)

	if jaccardBest == "" || levBest == "" || jaccardBest != levBest {
		return in, ""
	}

	keys := dict.KeysFor(jaccardBest)
	if len(keys) != 1 || in == keys[0] {
		return in, ""
	}

	out := keys[0]
	reason := fmt.Sprintf("%s = %.2f. %s = %.2f. ", jaccardBest, jaccardScore, levBest, levScore)
	log := fmt.Sprintf(auditTemplate, bom.LabelComponentType, in, out, reason)
	return out, log
}

// =============================================================================
// DERIVED COST FIELDS
// =============================================================================

// SubTotal recomputes the row sub-total as quantity times unit price, rounded
// to six decimal places. When the stored value already agrees within
// tolerance it is returned unchanged with an empty audit message.
func SubTotal(row bom.Row) (string, string, error) {
	qty, err := numeric.ParseFloat(row.Qty)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelQty, row.Qty, err)
	}
	unitPrice, err := numeric.ParseFloat(row.UnitPrice)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelUnitPrice, row.UnitPrice, err)
	}
	stored, err := numeric.ParseFloat(row.SubTotal)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelSubTotal, row.SubTotal, err)
	}

	computed := numeric.Round6(qty * unitPrice)
	if numeric.FloatsEqual(stored, computed) {
		return row.SubTotal, "", nil
	}

	out := numeric.FormatFloat(computed)
	log := fmt.Sprintf(auditTemplate, bom.LabelSubTotal,
		numeric.FormatFloat(stored), out, reasonSubTotalChange)
	return out, log, nil
}

// MaterialCost recomputes the header material cost as the sum of every row
// sub-total on the board.
func MaterialCost(board bom.Board) (string, string, error) {
	sum := 0.0
	for _, row := range board.Rows {
		subTotal, err := numeric.ParseFloat(row.SubTotal)
		if err != nil {
			return "", "", fmt.Errorf(errFloatParse, bom.LabelSubTotal, row.SubTotal, err)
		}
		sum += subTotal
	}

	stored, err := numeric.ParseFloat(board.Header.MaterialCost)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelMaterialCost, board.Header.MaterialCost, err)
	}

	if numeric.FloatsEqual(stored, sum) {
		return board.Header.MaterialCost, "", nil
	}

	out := numeric.FormatFloat(sum)
	log := fmt.Sprintf(auditTemplate, bom.LabelMaterialCost,
		numeric.FormatFloat(stored), out, reasonMaterialChange)
	return out, log, nil
}

// TotalCost recomputes the header total cost as material cost plus overhead
// cost, rounded to six decimal places.
func TotalCost(header bom.Header) (string, string, error) {
	materialCost, err := numeric.ParseFloat(header.MaterialCost)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelMaterialCost, header.MaterialCost, err)
	}
	overheadCost, err := numeric.ParseFloat(header.OverheadCost)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelOverheadCost, header.OverheadCost, err)
	}
	stored, err := numeric.ParseFloat(header.TotalCost)
	if err != nil {
		return "", "", fmt.Errorf(errFloatParse, bom.LabelTotalCost, header.TotalCost, err)
	}

	computed := numeric.Round6(materialCost + overheadCost)
	if numeric.FloatsEqual(stored, computed) {
		return header.TotalCost, "", nil
	}

	out := numeric.FormatFloat(computed)
	log := fmt.Sprintf(auditTemplate, bom.LabelTotalCost,
		numeric.FormatFloat(stored), out, reasonTotalChange)
	return out, log, nil
}
