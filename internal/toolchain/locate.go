// Package toolchain locates installed SourcePawn toolchains across the
// two home roots and resolves selectors against them.
//
// The two roots are deliberately asymmetric: exact-version lookup
// stops at the first root containing the version (custom always wins),
// while super-version search pools the subdirectories of both roots
// into one candidate set. Both behaviors are part of the external
// contract.
package toolchain

import (
	"fmt"
	"os"
	"path/filepath"

	"rookup/internal/version"
)

// Found is a resolved toolchain install.
type Found struct {
	// Name is the directory name, usually a version string.
	Name string
	// Path is the toolchain directory.
	Path string
}

// LatestNotFoundError reports that no installed toolchain satisfies a
// super-version selector.
type LatestNotFoundError struct {
	Super string
}

func (e *LatestNotFoundError) Error() string {
	return fmt.Sprintf("latest toolchain compatible with version %s was not found", e.Super)
}

// NoAliasDefaultError reports an alias with no bound version.
type NoAliasDefaultError struct {
	Alias string
}

func (e *NoAliasDefaultError) Error() string {
	return fmt.Sprintf("alias %q has no default version set", e.Alias)
}

// NotFoundError reports that the version an alias resolved to is not
// installed.
type NotFoundError struct {
	Version string
	Alias   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("version %q (as specified by alias %q) was not found", e.Version, e.Alias)
}

// FindPath returns the directory of an installed toolchain with the
// exact given name. The custom root is consulted before the cache root
// and the first hit wins; the roots are never merged for exact lookup.
func FindPath(name string) (string, bool) {
	for _, home := range homes() {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// IsInstalled reports whether a toolchain directory with the exact
// given name exists under either root.
func IsInstalled(name string) bool {
	_, ok := FindPath(name)
	return ok
}

// FindLatestOf pools the subdirectory names of both roots, keeps those
// equal to or refining super, and returns the maximum by
// version.Compare along with the root it came from. Candidates that
// are prefix-refinements of each other compare equal, so which of them
// wins is unspecified.
func FindLatestOf(super string) (Found, bool) {
	var best Found
	found := false
	for _, home := range homes() {
		for _, name := range dirNames(home) {
			if !version.IsSub(name, super) {
				continue
			}
			if !found || version.Compare(name, best.Name) > 0 {
				best = Found{Name: name, Path: filepath.Join(home, name)}
				found = true
			}
		}
	}
	return best, found
}

// Find resolves a selector to an installed toolchain. Super selectors
// use the pooled latest-of search; alias selectors resolve through the
// alias table to a concrete version which must be installed exactly.
func Find(sel Selector, aliases map[string]string) (Found, error) {
	if super, ok := sel.Super(); ok {
		found, ok := FindLatestOf(super)
		if !ok {
			return Found{}, &LatestNotFoundError{Super: super}
		}
		return found, nil
	}

	alias, _ := sel.Alias()
	bound, ok := aliases[alias]
	if !ok {
		return Found{}, &NoAliasDefaultError{Alias: alias}
	}
	path, ok := FindPath(bound)
	if !ok {
		return Found{}, &NotFoundError{Version: bound, Alias: alias}
	}
	return Found{Name: bound, Path: path}, nil
}

// HomeListing pairs a home root with the toolchains installed in it.
type HomeListing struct {
	Home     string
	Versions []string
}

// List enumerates both home roots with their installed toolchain
// names, in search order. Roots that cannot be read list as empty.
func List() []HomeListing {
	var listings []HomeListing
	for _, home := range homes() {
		listings = append(listings, HomeListing{Home: home, Versions: dirNames(home)})
	}
	return listings
}

// dirNames returns the subdirectory names of root. A missing or
// unreadable root yields nil; the search treats that as "nothing
// installed here", not as an error.
func dirNames(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}
