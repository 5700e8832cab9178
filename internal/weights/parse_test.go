package weights

import (
	"errors"
	"testing"
)

func TestParseOverride(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPattern string
		wantWeight  int
		wantErr     bool
	}{
		{"colon separator", "./Cargo.toml:100", "./Cargo.toml", 100, false},
		{"equals separator", "./Cargo.toml=100", "./Cargo.toml", 100, false},
		{"negative weight", "node_modules:-100", "node_modules", -100, false},
		{"pattern containing colon", "a:b:5", "a:b", 5, false},
		{"equals preferred over colon", "a:b=5", "a:b", 5, false},
		{"rightmost equals", "a=b=5", "a=b", 5, false},
		{"empty pattern", ":5", "", 5, false},
		{"no separator", "pattern", "", 0, true},
		{"non-integer value", "pattern:abc", "", 0, true},
		{"equals with trailing colon value", "a=b:5", "", 0, true},
		{"empty value", "pattern:", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, weight, err := ParseOverride(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOverride(%q) expected error, got %q %d", tt.input, pattern, weight)
				}
				if !errors.Is(err, ErrBadOverride) {
					t.Errorf("error should wrap ErrBadOverride, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOverride(%q) failed: %v", tt.input, err)
			}
			if pattern != tt.wantPattern || weight != tt.wantWeight {
				t.Errorf("ParseOverride(%q) = %q,%d, want %q,%d",
					tt.input, pattern, weight, tt.wantPattern, tt.wantWeight)
			}
		})
	}
}

func TestApplyOverridesOrder(t *testing.T) {
	table := NewTable()
	if err := ApplyOverrides(table, []string{"a:1", "a:2", "b:3"}); err != nil {
		t.Fatalf("ApplyOverrides failed: %v", err)
	}

	if w, _ := table.Get("a"); w != 2 {
		t.Errorf("later override should win: a = %d, want 2", w)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestApplyOverridesStopsOnError(t *testing.T) {
	table := NewTable()
	err := ApplyOverrides(table, []string{"a:1", "broken", "b:2"})
	if err == nil {
		t.Fatal("expected error for malformed override")
	}
	if _, ok := table.Get("b"); ok {
		t.Error("overrides after the failing one should not be applied")
	}
}
