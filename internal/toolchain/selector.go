package toolchain

import (
	"strings"

	"rookup/internal/version"
)

// SuperPrefix marks a selector as a super-version criterion. Alias
// names therefore never begin with it.
const SuperPrefix = ":"

// Selector is a parsed toolchain criterion: either a named alias or a
// super-version prefix.
type Selector struct {
	text  string
	super bool
}

// ParseSelector parses the textual form: a leading ':' makes the rest
// a super-version, anything else is an alias name.
func ParseSelector(s string) Selector {
	if rest, ok := strings.CutPrefix(s, SuperPrefix); ok {
		return Selector{text: rest, super: true}
	}
	return Selector{text: s}
}

// IsAlias reports whether the selector names an alias.
func (s Selector) IsAlias() bool { return !s.super }

// Alias returns the alias name when the selector is one.
func (s Selector) Alias() (string, bool) {
	if s.super {
		return "", false
	}
	return s.text, true
}

// Super returns the super-version prefix when the selector is one.
func (s Selector) Super() (string, bool) {
	if !s.super {
		return "", false
	}
	return s.text, true
}

// Text returns the selector body without the marker.
func (s Selector) Text() string { return s.text }

// String restores the textual form the selector was parsed from.
func (s Selector) String() string {
	if s.super {
		return SuperPrefix + s.text
	}
	return s.text
}

// Test reports whether candidate satisfies the selector: an alias
// matches iff the alias table binds it to exactly candidate; a
// super-version matches iff candidate equals or refines it.
func (s Selector) Test(aliases map[string]string, candidate string) bool {
	if s.super {
		return version.IsSub(candidate, s.text)
	}
	bound, ok := aliases[s.text]
	return ok && bound == candidate
}
