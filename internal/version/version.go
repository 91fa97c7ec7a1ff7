// Package version implements comparison and prefix relations over
// dot-delimited version strings.
//
// Versions are treated as opaque sequences of dot-separated parts; no
// numeric parsing is performed. Parts are ordered by length first and
// byte-lexically second, which yields correct ascending order for
// canonical non-negative integer parts without leading zeros ("7" <
// "10" because it is shorter) and degrades to plain lexical order for
// textual parts. This deliberately misorders parts with leading zeros;
// drop-server branch and release names never carry them.
package version

import "strings"

// Separator splits a version string into parts.
const Separator = "."

// Relation describes how one version relates to another.
type Relation int

const (
	// Equal means every part matches (e.g. "1.12.0.7192" vs "1.12.0.7192").
	Equal Relation = iota
	// Different means some compared part differs (e.g. "1.12.0.7192" vs "1.12.0.7150").
	Different
	// IsSubVersionOf means the version refines the other, which is a
	// strict dot-prefix of it (e.g. "1.12.0.7192" vs "1.12").
	IsSubVersionOf
	// IsSuperVersionOf means the version is a strict dot-prefix of the
	// other (e.g. "1.12" vs "1.12.0.7192").
	IsSuperVersionOf
)

// String returns the relation name for diagnostics.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "Equal"
	case Different:
		return "Different"
	case IsSubVersionOf:
		return "IsSubVersionOf"
	case IsSuperVersionOf:
		return "IsSuperVersionOf"
	default:
		return "Unknown"
	}
}

// comparePart orders two version parts by (length, byte-lexical).
func comparePart(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// RelationTo walks both part sequences pairwise and reports the
// relation of a to b. The first differing pair decides Different; if
// the parts of b are a strict prefix of those of a, a is a sub-version
// of b, and vice versa.
//
// This is a prefix relation, not a magnitude relation: "1.9" and
// "1.10" are Different, while "1.2" is a sub-version of "1".
func RelationTo(a, b string) Relation {
	as := strings.Split(a, Separator)
	bs := strings.Split(b, Separator)
	for i := range max(len(as), len(bs)) {
		switch {
		case i >= len(as):
			return IsSuperVersionOf
		case i >= len(bs):
			return IsSubVersionOf
		case as[i] != bs[i]:
			return Different
		}
	}
	return Equal
}

// IsSub reports whether v is the super-version itself or a refinement
// of it.
func IsSub(v, super string) bool {
	r := RelationTo(v, super)
	return r == Equal || r == IsSubVersionOf
}

// Compare is a total order over version strings: parts are compared
// pairwise up to the shorter length and the first non-equal part
// decides. When one version is a strict prefix of the other the
// compared prefix is equal and Compare reports 0, so "maximum by
// Compare" can tie between a version and any of its own refinements.
// Callers selecting a maximum accept that ambiguity.
func Compare(a, b string) int {
	as := strings.Split(a, Separator)
	bs := strings.Split(b, Separator)
	for i := range min(len(as), len(bs)) {
		if c := comparePart(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Normalize rewrites the trailing "-git<N>" marker used in drop file
// names into an appended part, so the revision number participates in
// part-wise comparison: "1.12.0-git7192" becomes "1.12.0.7192".
// Strings without the marker pass through unchanged.
func Normalize(s string) string {
	if head, rev, ok := strings.Cut(s, "-git"); ok {
		return head + Separator + rev
	}
	return s
}
