package smdrop

import (
	"fmt"
	"sort"

	"rookup/internal/toolchain"
	"rookup/internal/version"
)

// SelectionError reports that no remote branch satisfies a selector.
// Alias is set when the cause is an alias with no bound version.
type SelectionError struct {
	Selector string
	Alias    string
}

func (e *SelectionError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("couldn't select branch with selector %q: alias %q is not defined", e.Selector, e.Alias)
	}
	return fmt.Sprintf("couldn't select branch with selector %q", e.Selector)
}

// SelectBranch turns a selector into a concrete remote branch.
//
//   - "latest" picks the branch with the maximum version-ordered name.
//   - "stable" sorts branches ascending and picks the one below the
//     most recent, which is treated as unreleased; it needs at least
//     two branches.
//   - any other alias resolves through the alias table to a version and
//     picks the first branch that version refines.
//   - a super-version selector picks the first branch it refines.
func (c *Client) SelectBranch(sel toolchain.Selector, aliases map[string]string) (Branch, error) {
	branches, err := c.Branches()
	if err != nil {
		return Branch{}, err
	}

	if super, ok := sel.Super(); ok {
		return firstBranchOf(branches, super, sel)
	}

	alias, _ := sel.Alias()
	switch alias {
	case "latest":
		if len(branches) == 0 {
			return Branch{}, &SelectionError{Selector: sel.String()}
		}
		best := branches[0]
		for _, b := range branches[1:] {
			if version.Compare(b.Name, best.Name) > 0 {
				best = b
			}
		}
		return best, nil

	case "stable":
		// The newest branch is the unreleased development line; stable
		// is the one below it.
		if len(branches) < 2 {
			return Branch{}, &SelectionError{Selector: sel.String()}
		}
		sort.Slice(branches, func(i, j int) bool {
			return version.Compare(branches[i].Name, branches[j].Name) < 0
		})
		return branches[len(branches)-2], nil

	default:
		bound, ok := aliases[alias]
		if !ok {
			return Branch{}, &SelectionError{Selector: sel.String(), Alias: alias}
		}
		return firstBranchOf(branches, bound, sel)
	}
}

// firstBranchOf returns the first branch that v equals or refines.
func firstBranchOf(branches []Branch, v string, sel toolchain.Selector) (Branch, error) {
	for _, b := range branches {
		if version.IsSub(v, b.Name) {
			return b, nil
		}
	}
	return Branch{}, &SelectionError{Selector: sel.String()}
}
