package install

import (
	"path"
	"strings"
	"unicode/utf8"

	"rookup/internal/platform"
)

// Root is the subtree of a SourceMod package that holds the SourcePawn
// toolchain. Only entries under it are installed.
const Root = "addons/sourcemod/scripting/"

// filterPath decides whether an archive entry installs and where. The
// raw path must be valid UTF-8, live under Root, and survive cleaning
// without escaping above the stripped root; of the survivors only the
// include/ tree and the platform's compiler executable are kept. The
// returned path is slash-separated and relative to the install
// destination.
func filterPath(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	name := string(raw)

	rest, ok := strings.CutPrefix(name, Root)
	if !ok || rest == "" {
		return "", false
	}

	cleaned := path.Clean(rest)
	// Cleaning collapses "."/".." segments; anything still reaching
	// above the root, or absolute, is a traversal attempt.
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") || strings.HasPrefix(cleaned, "/") {
		return "", false
	}

	if cleaned == "include" || strings.HasPrefix(cleaned, "include/") {
		return cleaned, true
	}
	if platform.IsCompiler(path.Base(cleaned)) {
		return cleaned, true
	}
	return "", false
}
