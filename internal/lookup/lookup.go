// =============================================================================
// BOM Check - Component Type Lookup Dictionary
// =============================================================================
//
// The lookup dictionary maps canonical component type keys to the alias
// spellings seen in supplier BOM files, for example:
//
//	Resistor:
//	  - Resistor
//	  - RES
//	  - resister
//	Capacitor:
//	  - Capacitor
//	  - CAP
//
// A Dictionary is loaded once before a correction pass and treated as an
// immutable snapshot for the duration of the pass. The rule engine receives
// the snapshot explicitly; nothing here reads ambient global state.
//
// =============================================================================

package lookup

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Dictionary is a read-only canonical-key to aliases mapping.
type Dictionary struct {
	entries map[string][]string
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// New builds a Dictionary from an in-memory mapping. The input is copied so
// later mutation of the argument cannot affect the snapshot.
func New(entries map[string][]string) *Dictionary {
	copied := make(map[string][]string, len(entries))
	for key, aliases := range entries {
		copied[key] = append([]string(nil), aliases...)
	}
	return &Dictionary{entries: copied}
}

// Load reads a Dictionary from a YAML file.
//
// The file is a flat mapping from canonical key to a list of alias strings.
// An empty alias list is allowed; an empty file yields an empty Dictionary.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup file: %w", err)
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse lookup file %s: %w", path, err)
	}

	return New(entries), nil
}

// =============================================================================
// QUERIES
// =============================================================================

// Len returns the number of canonical keys.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Keys returns the canonical keys in sorted order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Aliases returns every alias of every canonical key as one flattened list,
// grouped by canonical key in sorted key order. This is the candidate list
// the similarity matchers scan.
func (d *Dictionary) Aliases() []string {
	var all []string
	for _, key := range d.Keys() {
		all = append(all, d.entries[key]...)
	}
	return all
}

// KeysFor returns every canonical key that lists the given alias, in sorted
// order. A well-formed dictionary maps each alias to exactly one key; more
// than one result means the dictionary is ambiguous for that alias.
func (d *Dictionary) KeysFor(alias string) []string {
	var matches []string
	for _, key := range d.Keys() {
		for _, candidate := range d.entries[key] {
			if candidate == alias {
				matches = append(matches, key)
				break
			}
		}
	}
	return matches
}
