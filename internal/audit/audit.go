// =============================================================================
// BOM Check - Audit Change Log
// =============================================================================
//
// ChangeLog accumulates human-readable change and issue messages across the
// parsing, fixing and checking stages. Callers set a (module, file, sheet,
// section) context once and add plain messages; each entry captures the
// context active at the moment it is added, so one log can span several
// sheets and rows without losing attribution.
//
// =============================================================================

package audit

import (
	"fmt"
	"strings"
)

// entry is one recorded message with the context it was added under.
type entry struct {
	module  string
	file    string
	sheet   string
	section string
	message string
}

// ChangeLog collects messages under a shared context. The zero value is an
// empty log with blank context. Not safe for concurrent use.
type ChangeLog struct {
	module  string
	file    string
	sheet   string
	section string
	entries []entry
}

// NewChangeLog returns an empty log for the given module stage, for example
// "fixer" or "Checker".
func NewChangeLog(module string) *ChangeLog {
	return &ChangeLog{module: module}
}

// SetFileName sets the source file context for subsequent entries.
func (c *ChangeLog) SetFileName(file string) {
	c.file = file
}

// SetSheetName sets the worksheet context for subsequent entries.
func (c *ChangeLog) SetSheetName(sheet string) {
	c.sheet = sheet
}

// SetSectionName sets the section context for subsequent entries, for
// example "Row: 4" or "Header".
func (c *ChangeLog) SetSectionName(section string) {
	c.section = section
}

// AddEntry appends one message under the current context. Empty and
// whitespace-only messages are ignored so rule functions can return their
// message unconditionally.
func (c *ChangeLog) AddEntry(message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	c.entries = append(c.entries, entry{
		module:  c.module,
		file:    c.file,
		sheet:   c.sheet,
		section: c.section,
		message: message,
	})
}

// AddError records an error as an entry. A nil error is ignored.
func (c *ChangeLog) AddError(err error) {
	if err == nil {
		return
	}
	c.AddEntry(err.Error())
}

// Len returns the number of recorded entries.
func (c *ChangeLog) Len() int {
	return len(c.entries)
}

// Render flattens every entry to
// "module | file | sheet | section | message", in insertion order.
func (c *ChangeLog) Render() []string {
	rows := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		rows = append(rows, fmt.Sprintf("%s | %s | %s | %s | %s",
			e.module, e.file, e.sheet, e.section, e.message))
	}
	return rows
}
