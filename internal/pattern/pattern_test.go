package pattern

import (
	"testing"

	"github.com/dotcommander/projroot/internal/weights"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantKind Kind
		wantGlob string
	}{
		{"child prefix", "./package.json", KindChild, "package.json"},
		{"child dotfile", "./.git", KindChild, ".git"},
		{"parent suffix", "node_modules/", KindParent, "node_modules"},
		{"parent wildcard", "*cache*/", KindParent, "*cache*"},
		{"plain name", "node_modules", KindName, "node_modules"},
		{"empty string", "", KindName, ""},
		{"child wins over parent", "./x/", KindChild, "x/"},
		{"name with inner slash", "a/b", KindName, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, glob := Classify(tt.pattern)
			if kind != tt.wantKind {
				t.Errorf("Classify(%q) kind = %v, want %v", tt.pattern, kind, tt.wantKind)
			}
			if glob != tt.wantGlob {
				t.Errorf("Classify(%q) glob = %q, want %q", tt.pattern, glob, tt.wantGlob)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindChild, "child"},
		{KindName, "name"},
		{KindParent, "parent"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// compileOne compiles a single name pattern and returns its rule.
func compileOne(t *testing.T, pattern string) Rule {
	t.Helper()
	table := weights.NewTable()
	table.Set(pattern, 1)
	set := Compile(table)
	if len(set.Name) != 1 {
		t.Fatalf("expected one name rule for %q, got %+v", pattern, set)
	}
	return set.Name[0]
}

func TestLiteralMatching(t *testing.T) {
	rule := compileOne(t, "Makefile")

	if !rule.Match("Makefile") {
		t.Error("literal pattern should match the exact string")
	}
	for _, subject := range []string{"Makefile.bak", "makefile", "xMakefile", ""} {
		if rule.Match(subject) {
			t.Errorf("literal pattern should not match %q", subject)
		}
	}
}

func TestSingleStarWildcard(t *testing.T) {
	rule := compileOne(t, "*env")

	for _, subject := range []string{"env", ".env", "myenv"} {
		if !rule.Match(subject) {
			t.Errorf("*env should match %q", subject)
		}
	}
	for _, subject := range []string{"environment/sub", "envx/y", "envx"} {
		if rule.Match(subject) {
			t.Errorf("*env should not match %q", subject)
		}
	}
}

func TestDoubleStarWildcard(t *testing.T) {
	rule := compileOne(t, "**cache**")

	for _, subject := range []string{"cache", "a/cache/b", ".cache-dir", "deep/path/mycache"} {
		if !rule.Match(subject) {
			t.Errorf("**cache** should match %q", subject)
		}
	}
	if rule.Match("cach") {
		t.Error("**cache** should not match a string without the literal part")
	}
}

func TestRegexSpecialsAreLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		match   string
		noMatch string
	}{
		{"file[1]", "file[1]", "file1"},
		{"a.b", "a.b", "axb"},
		{"x+y", "x+y", "xxy"},
		{"(group)", "(group)", "group"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			rule := compileOne(t, tt.pattern)
			if !rule.Match(tt.match) {
				t.Errorf("pattern %q should match %q", tt.pattern, tt.match)
			}
			if rule.Match(tt.noMatch) {
				t.Errorf("pattern %q should not match %q", tt.pattern, tt.noMatch)
			}
		})
	}
}

func TestEmptyPattern(t *testing.T) {
	rule := compileOne(t, "")

	if !rule.Match("") {
		t.Error("empty pattern should match the empty name")
	}
	if rule.Match("x") {
		t.Error("empty pattern should only match the empty name")
	}
}

func TestCompileGrouping(t *testing.T) {
	table := weights.NewTable()
	table.Set("./go.mod", 40)
	table.Set("./package.json", 40)
	table.Set("node_modules", -100)
	table.Set(".venv/", -200)

	set := Compile(table)

	if len(set.Child) != 2 || len(set.Name) != 1 || len(set.Parent) != 1 {
		t.Fatalf("unexpected grouping: child=%d name=%d parent=%d",
			len(set.Child), len(set.Name), len(set.Parent))
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}

	// Group order follows table order.
	if set.Child[0].Pattern != "./go.mod" || set.Child[1].Pattern != "./package.json" {
		t.Errorf("child rules out of table order: %+v", set.Child)
	}
	if set.Parent[0].Weight != -200 {
		t.Errorf("parent rule weight = %d, want -200", set.Parent[0].Weight)
	}
}

func TestCompileDeterministic(t *testing.T) {
	table := weights.NewTable()
	table.Set("./a", 1)
	table.Set("b*", 2)
	table.Set("c/", 3)

	first := Compile(table)
	second := Compile(table)

	subjects := []string{"a", "b", "bx", "c", "", "b/x"}
	for _, subject := range subjects {
		for i := range first.Name {
			if first.Name[i].Match(subject) != second.Name[i].Match(subject) {
				t.Errorf("recompiled name rule %d disagrees on %q", i, subject)
			}
		}
	}
	if first.Len() != second.Len() {
		t.Errorf("recompilation changed rule count: %d vs %d", first.Len(), second.Len())
	}
}
