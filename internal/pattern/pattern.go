// Package pattern compiles weight-table patterns into reusable matchers.
//
// Classification is purely lexical and happens once, at compile time:
// a "./" prefix makes a child pattern (matched against a candidate's
// immediate entries), a trailing "/" makes a parent pattern (matched against
// each ancestor's name), anything else is a name pattern (matched against the
// candidate's own base name). The glob dialect has exactly two wildcards:
// "**" matches any substring including path separators, "*" matches any
// substring excluding them. Every other character is literal, including
// regex metacharacters.
package pattern

import (
	"regexp"
	"strings"

	"github.com/dotcommander/projroot/internal/weights"
)

// Kind categorizes a pattern by what it is matched against.
type Kind int

const (
	KindName Kind = iota
	KindChild
	KindParent
)

// String returns the human-readable name of the pattern kind.
func (k Kind) String() string {
	switch k {
	case KindChild:
		return "child"
	case KindParent:
		return "parent"
	default:
		return "name"
	}
}

// Rule is one compiled weight-table entry: the original pattern, its kind,
// its weight, and the matcher. Rules are immutable once compiled and are
// reused for every candidate scored in a run.
type Rule struct {
	Pattern string
	Kind    Kind
	Weight  int
	re      *regexp.Regexp
}

// Match reports whether the rule's matcher accepts the subject. The match is
// anchored: the whole subject must match, not a substring.
func (r Rule) Match(subject string) bool {
	return r.re.MatchString(subject)
}

// Set holds the compiled rules grouped by kind, each group in table order.
type Set struct {
	Child  []Rule
	Name   []Rule
	Parent []Rule
}

// Len returns the total number of compiled rules.
func (s *Set) Len() int {
	return len(s.Child) + len(s.Name) + len(s.Parent)
}

// Compile turns a weight table into a rule set. Compilation is a pure
// function of the table: every string is a legal pattern (the empty name
// pattern matches a candidate whose name is empty, i.e. the filesystem
// root), so there is no error path.
func Compile(table *weights.Table) *Set {
	set := &Set{}
	for _, e := range table.Entries() {
		kind, glob := Classify(e.Pattern)
		rule := Rule{
			Pattern: e.Pattern,
			Kind:    kind,
			Weight:  e.Weight,
			re:      translate(glob),
		}
		switch kind {
		case KindChild:
			set.Child = append(set.Child, rule)
		case KindParent:
			set.Parent = append(set.Parent, rule)
		default:
			set.Name = append(set.Name, rule)
		}
	}
	return set
}

// Classify determines a pattern's kind from its surface syntax and returns
// the glob text the matcher is compiled from. The checks are mutually
// exclusive and ordered: "./" prefix first, trailing "/" second, name last,
// so "./x/" is a child pattern for the entry name "x/".
func Classify(p string) (Kind, string) {
	if strings.HasPrefix(p, "./") {
		return KindChild, strings.TrimPrefix(p, "./")
	}
	if strings.HasSuffix(p, "/") {
		return KindParent, strings.TrimSuffix(p, "/")
	}
	return KindName, p
}

// translate converts a glob into an anchored regexp. QuoteMeta first so
// every non-wildcard character is literal, then "**" before "*" so the
// two-character token is never half-consumed by the one-character rule.
func translate(glob string) *regexp.Regexp {
	expr := regexp.QuoteMeta(glob)
	expr = strings.ReplaceAll(expr, `\*\*`, `.*`)
	expr = strings.ReplaceAll(expr, `\*`, `[^/]*`)
	return regexp.MustCompile(`^` + expr + `$`)
}
