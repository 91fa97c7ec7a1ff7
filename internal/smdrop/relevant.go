package smdrop

import (
	"strings"

	"rookup/internal/version"
)

// latestSentinel is the pseudo-version the drop server publishes as a
// rolling pointer; it never participates in version selection.
const latestSentinel = "latest"

// RelevantURL is an archive URL narrowed to the running platform, with
// the version text normalized so it participates in part-wise
// comparison.
type RelevantURL struct {
	URL string
	// Version is the normalized version ("1.12.0-git7192" file text
	// becomes "1.12.0.7192").
	Version string
}

// fileTarget extracts the target platform from a drop file name of the
// form <product>-<version>-<target>.<ext>: the text after the last '-'
// up to the first '.' of the suffix.
func fileTarget(fileName string) (string, bool) {
	i := strings.LastIndexByte(fileName, '-')
	if i < 0 {
		return "", false
	}
	suffix := fileName[i+1:]
	if dot := strings.IndexByte(suffix, '.'); dot >= 0 {
		suffix = suffix[:dot]
	}
	return suffix, true
}

// fileVersion extracts the raw version text from a drop file name: the
// text between the first and last '-'.
func fileVersion(fileName string) (string, bool) {
	first := strings.IndexByte(fileName, '-')
	if first < 0 {
		return "", false
	}
	rest := fileName[first+1:]
	last := strings.LastIndexByte(rest, '-')
	if last < 0 {
		return "", false
	}
	return rest[:last], true
}

// NewRelevantURL classifies one version file against a target platform
// identifier. Files for other targets and the "latest" sentinel are
// not relevant.
func NewRelevantURL(file VersionFile, target string) (RelevantURL, bool) {
	name := file.FileName()

	fileTgt, ok := fileTarget(name)
	if !ok || fileTgt != target {
		return RelevantURL{}, false
	}
	raw, ok := fileVersion(name)
	if !ok || raw == latestSentinel {
		return RelevantURL{}, false
	}

	return RelevantURL{URL: file.URL, Version: version.Normalize(raw)}, true
}

// Relevant filters version files down to those relevant for target.
func Relevant(files []VersionFile, target string) []RelevantURL {
	var urls []RelevantURL
	for _, file := range files {
		if u, ok := NewRelevantURL(file, target); ok {
			urls = append(urls, u)
		}
	}
	return urls
}

// MaxRelevant returns the entry with the maximum normalized version.
// Prefix-related versions compare equal, in which case the earlier
// entry is kept.
func MaxRelevant(urls []RelevantURL) (RelevantURL, bool) {
	if len(urls) == 0 {
		return RelevantURL{}, false
	}
	best := urls[0]
	for _, u := range urls[1:] {
		if version.Compare(u.Version, best.Version) > 0 {
			best = u
		}
	}
	return best, true
}
