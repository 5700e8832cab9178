// Package weights manages the pattern→weight table that drives root scoring.
//
// A Table preserves insertion order so that compiled rule sets, breakdowns,
// and the weights listing are reproducible across runs with identical inputs.
// Re-assigning an existing pattern overwrites its weight in place without
// moving it. Tables are assembled in layers of increasing precedence:
// built-in defaults, a weights file, an inline JSON object, and individual
// override strings.
package weights

import "fmt"

// Entry is one pattern→weight pair in table order.
type Entry struct {
	Pattern string `json:"pattern"`
	Weight  int    `json:"weight"`
}

// Table is an insertion-ordered mapping from pattern string to weight.
// The zero value is not usable; use NewTable or Defaults.
type Table struct {
	weights map[string]int
	order   []string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{weights: make(map[string]int)}
}

// Set assigns a weight to a pattern. A pattern seen before keeps its
// original position; a new pattern is appended.
func (t *Table) Set(pattern string, weight int) {
	if _, seen := t.weights[pattern]; !seen {
		t.order = append(t.order, pattern)
	}
	t.weights[pattern] = weight
}

// Get returns the weight for a pattern and whether it is present.
func (t *Table) Get(pattern string) (int, bool) {
	w, ok := t.weights[pattern]
	return w, ok
}

// Len returns the number of patterns in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns the table contents in insertion order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, p := range t.order {
		entries = append(entries, Entry{Pattern: p, Weight: t.weights[p]})
	}
	return entries
}

// Apply sets every entry on the table, in the order given.
func (t *Table) Apply(entries []Entry) {
	for _, e := range entries {
		t.Set(e.Pattern, e.Weight)
	}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		weights: make(map[string]int, len(t.weights)),
		order:   make([]string, len(t.order)),
	}
	copy(c.order, t.order)
	for p, w := range t.weights {
		c.weights[p] = w
	}
	return c
}

// Build assembles the effective table from all weight sources. Layers are
// applied in increasing precedence, each overwriting matching patterns from
// the previous: defaults (unless noDefaults), the weights file, the inline
// JSON object, then the individual overrides in flag order.
func Build(noDefaults bool, file, inlineJSON string, overrides []string) (*Table, error) {
	var table *Table
	if noDefaults {
		table = NewTable()
	} else {
		table = Defaults()
	}

	if file != "" {
		entries, err := LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("weights file %s: %w", file, err)
		}
		table.Apply(entries)
	}

	if inlineJSON != "" {
		entries, err := ParseJSON([]byte(inlineJSON))
		if err != nil {
			return nil, fmt.Errorf("weights JSON: %w", err)
		}
		table.Apply(entries)
	}

	if err := ApplyOverrides(table, overrides); err != nil {
		return nil, err
	}

	return table, nil
}
