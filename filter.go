package confedit

import (
	"fmt"
	"regexp"
	"strings"
)

// compileValueFilter compiles the value filter convention shared by Find,
// SetAll and UnSetAll. An empty filter matches every value. A filter
// starting with '!' matches when the remainder, as a regular expression,
// does NOT match the value. Anything else is a plain regular expression.
// Bare flags are matched against the empty string.
func compileValueFilter(filter string) (func(string) bool, error) {
	if filter == "" {
		return func(string) bool { return true }, nil
	}

	pattern, negate := strings.CutPrefix(filter, "!")
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid value filter %q: %w", filter, err)
	}

	if negate {
		return func(v string) bool { return !re.MatchString(v) }, nil
	}

	return re.MatchString, nil
}
