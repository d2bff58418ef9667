package walker

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fsbox-cli/fsbox/internal/domain"
)

// MatchFunc is a compiled name predicate applied to base names, not full paths
type MatchFunc func(name string) bool

// CompileMatch compiles a glob pattern into a case-insensitive name
// predicate. A pattern without wildcards matches as a substring, so
// `fsbox find conf` behaves like a plain search. Compilation happens
// once per run rather than per entry.
func CompileMatch(pattern string) (MatchFunc, error) {
	if pattern == "" || pattern == "*" {
		return func(string) bool { return true }, nil
	}

	lower := strings.ToLower(pattern)
	if !strings.ContainsAny(lower, "*?[") {
		return func(name string) bool {
			return strings.Contains(strings.ToLower(name), lower)
		}, nil
	}

	if !doublestar.ValidatePattern(lower) {
		return nil, fmt.Errorf("%w: %q", domain.ErrBadPattern, pattern)
	}

	return func(name string) bool {
		ok, err := doublestar.Match(lower, strings.ToLower(name))
		return err == nil && ok
	}, nil
}
