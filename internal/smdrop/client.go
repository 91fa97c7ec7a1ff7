// Package smdrop talks to a SourceMod drop server: an anonymous static
// file server whose HTML autoindex pages list release branches as
// directories and toolchain archives as files.
package smdrop

import (
	"fmt"
	"net/http"
	"strings"
)

// UserAgent identifies rookup on every drop-server request.
const UserAgent = "rookup/1.0"

// StatusError reports a non-OK response from the drop server.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// Client fetches and parses drop-server listings.
type Client struct {
	// RootURL is the server root, with trailing slash.
	RootURL string

	http *http.Client
}

// NewClient creates a client for the drop server at rootURL.
func NewClient(rootURL string) *Client {
	return &Client{
		RootURL: rootURL,
		http:    &http.Client{},
	}
}

// Branch is a remote top-level release line, named version-like
// ("1.12").
type Branch struct {
	Name string
}

// URL returns the branch's directory URL, with trailing slash.
func (b Branch) URL(c *Client) string {
	return c.RootURL + b.Name + "/"
}

// VersionFile is one archive file listed under a branch.
type VersionFile struct {
	// URL is the branch root concatenated with the file name.
	URL string
}

// FileName returns the last URL segment.
func (v VersionFile) FileName() string {
	if i := strings.LastIndexByte(v.URL, '/'); i >= 0 {
		return v.URL[i+1:]
	}
	return v.URL
}

// Branches fetches the root listing and returns every directory entry
// as a Branch. Absolute hrefs are excluded; on autoindex pages the only
// absolute directory link is the parent-directory entry.
func (c *Client) Branches() ([]Branch, error) {
	items, err := c.fetchListing(c.RootURL)
	if err != nil {
		return nil, fmt.Errorf("fetch branches: %w", err)
	}

	var branches []Branch
	for _, item := range items {
		if !item.Dir || strings.HasPrefix(item.Href, "/") {
			continue
		}
		branches = append(branches, Branch{Name: strings.TrimSuffix(item.Href, "/")})
	}
	return branches, nil
}

// Versions fetches a branch's listing and returns every file entry.
func (c *Client) Versions(branch Branch) ([]VersionFile, error) {
	root := branch.URL(c)
	items, err := c.fetchListing(root)
	if err != nil {
		return nil, fmt.Errorf("fetch versions for branch %q: %w", branch.Name, err)
	}

	var files []VersionFile
	for _, item := range items {
		if item.Dir {
			continue
		}
		files = append(files, VersionFile{URL: root + item.Href})
	}
	return files, nil
}

// Get issues a GET for url with the rookup User-Agent. The caller owns
// the response body.
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) fetchListing(url string) ([]Item, error) {
	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	items, err := parseListing(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read listing at %s: %w", url, err)
	}
	return items, nil
}
