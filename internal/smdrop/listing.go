package smdrop

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Item is one entry of an autoindex listing: the href of an anchor,
// classified by the trailing-separator convention common to autoindex
// servers. That convention, not any HTML semantics, decides whether an
// href names a directory.
type Item struct {
	Href string
	Dir  bool
}

// parseListing extracts every anchor href from an HTML directory
// listing in one forward pass over the tag stream. All other markup is
// ignored and malformed tags are skipped; the only reported errors are
// read failures from r.
func parseListing(r io.Reader) ([]Item, error) {
	var items []Item

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return items, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "a" || !hasAttr {
				continue
			}
			for {
				key, val, more := z.TagAttr()
				if string(key) == "href" {
					href := string(val)
					items = append(items, Item{
						Href: href,
						Dir:  strings.HasSuffix(href, "/"),
					})
					break
				}
				if !more {
					break
				}
			}
		}
	}
}
