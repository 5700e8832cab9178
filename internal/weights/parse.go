package weights

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadOverride marks a weight override string that cannot be parsed.
var ErrBadOverride = errors.New("invalid weight override")

// ParseOverride splits an override of the form "pattern=value" or
// "pattern:value" into its parts. The split happens at the rightmost "=" if
// one exists, else the rightmost ":", so patterns that themselves contain
// either separator survive intact. The value must be a signed base-10
// integer.
func ParseOverride(s string) (string, int, error) {
	sep := strings.LastIndex(s, "=")
	if sep < 0 {
		sep = strings.LastIndex(s, ":")
	}
	if sep < 0 {
		return "", 0, fmt.Errorf("%w: %q (expected 'pattern:value' or 'pattern=value')", ErrBadOverride, s)
	}

	pattern, value := s[:sep], s[sep+1:]
	weight, err := strconv.Atoi(value)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: value %q is not an integer", ErrBadOverride, s, value)
	}
	return pattern, weight, nil
}

// ApplyOverrides parses each override string and sets it on the table, in
// order, so later overrides win over earlier ones.
func ApplyOverrides(t *Table, overrides []string) error {
	for _, s := range overrides {
		pattern, weight, err := ParseOverride(s)
		if err != nil {
			return err
		}
		t.Set(pattern, weight)
	}
	return nil
}
