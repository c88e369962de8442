// =============================================================================
// BOM Check - Text Coercion Engine
// =============================================================================
//
// Deterministic regex-based cleanup of raw cell text. A Rule pairs a pattern
// with its replacement and a human-readable description; rules run in order,
// the output of one feeding the next, and every substitution that changes the
// text is recorded so the cleanup is fully traceable in the audit log.
//
// Rules are idempotent: applying a rule set to its own output changes
// nothing.
//
// =============================================================================

package coerce

import "regexp"

// Rule is one text transformation step. Exactly one of repl or transform is
// used: repl is a regexp replacement template, transform rewrites the whole
// string.
type Rule struct {
	pattern   *regexp.Regexp
	repl      string
	transform func(string) string
	message   string
}

// NewRule builds a substitution rule. The pattern must compile; rule sets are
// package-level constants so a bad pattern fails at init.
func NewRule(pattern, repl, message string) Rule {
	return Rule{
		pattern: regexp.MustCompile(pattern),
		repl:    repl,
		message: message,
	}
}

// NewTransform builds a whole-string transformation rule.
func NewTransform(fn func(string) string, message string) Rule {
	return Rule{transform: fn, message: message}
}

// Message returns the human-readable description of the rule.
func (r Rule) Message() string {
	return r.message
}

// apply runs the rule against one value.
func (r Rule) apply(s string) string {
	if r.transform != nil {
		return r.transform(s)
	}
	return r.pattern.ReplaceAllString(s, r.repl)
}

// =============================================================================
// APPLICATION
// =============================================================================

// Log records one applied transformation.
type Log struct {
	Before      string
	After       string
	Description string
}

// Result holds the outcome of applying a rule sequence to one value.
type Result struct {
	ValueIn  string
	ValueOut string
	Changes  []Log
}

// Changed reports whether any rule altered the value.
func (r Result) Changed() bool {
	return r.ValueOut != r.ValueIn
}

// Apply runs the rules in order against the value and records a log entry for
// every rule that changed the text.
func Apply(value string, rules []Rule) Result {
	result := Result{ValueIn: value, ValueOut: value}

	current := value
	for _, rule := range rules {
		next := rule.apply(current)
		if next != current {
			result.Changes = append(result.Changes, Log{
				Before:      show(current),
				After:       show(next),
				Description: rule.message,
			})
		}
		current = next
	}

	result.ValueOut = current
	return result
}

// showMaxLen caps log snippets so one pathological cell cannot flood the
// audit log.
const showMaxLen = 32

var (
	newlineRE = regexp.MustCompile(`\n`)
	tabRE     = regexp.MustCompile(`\t`)
)

// show renders control characters visibly and truncates long values for log
// snippets.
func show(s string) string {
	visible := newlineRE.ReplaceAllString(s, `\n`)
	visible = tabRE.ReplaceAllString(visible, `\t`)
	runes := []rune(visible)
	if len(runes) > showMaxLen {
		return string(runes[:showMaxLen-1]) + "…"
	}
	return visible
}
