// Package archive reads toolchain archives behind one format-agnostic
// entry iterator. The format is decided from the source URL suffix
// before any transfer happens; zip archives are buffered because the
// format needs random access, tar.gz archives stream in one forward
// pass.
package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrUnsupportedFormat is returned for source URLs whose suffix names
// no known archive format.
var ErrUnsupportedFormat = errors.New("unsupported archive format")

// Kind is the archive container format.
type Kind int

const (
	// KindZip is a standard zip archive with a central directory.
	KindZip Kind = iota
	// KindTarGz is a gzip-compressed tar stream.
	KindTarGz
)

// KindOf detects the archive format from a source URL suffix. It runs
// before any network transfer so unsupported formats fail without
// touching the server.
func KindOf(url string) (Kind, error) {
	switch {
	case strings.HasSuffix(url, ".zip"):
		return KindZip, nil
	case strings.HasSuffix(url, ".tar.gz"):
		return KindTarGz, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, url)
	}
}

// Entry is one archive member, uniform across formats: the raw path
// bytes as stored in the archive, a byte stream, and a directory flag.
type Entry struct {
	RawPath []byte
	IsDir   bool
	Body    io.Reader
}

// Archive iterates archive entries. Next returns io.EOF after the last
// entry. Entries from a streaming archive must be consumed before the
// next call.
type Archive interface {
	Next() (*Entry, error)
}

// New opens body as an archive of the given kind. For zip the body is
// read fully (the caller bounds it); for tar.gz reading is lazy.
func New(body io.Reader, kind Kind) (Archive, error) {
	switch kind {
	case KindZip:
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, fmt.Errorf("buffer zip body: %w", err)
		}
		return NewZip(data)
	case KindTarGz:
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &tarGzArchive{tr: tar.NewReader(gz)}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// NewZip opens an in-memory zip archive.
func NewZip(data []byte) (Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip directory: %w", err)
	}
	return &zipArchive{files: zr.File}, nil
}

type zipArchive struct {
	files []*zip.File
	next  int
}

// Next materializes the next zip entry into its own buffer.
func (a *zipArchive) Next() (*Entry, error) {
	if a.next >= len(a.files) {
		return nil, io.EOF
	}
	file := a.files[a.next]
	a.next++

	entry := &Entry{
		RawPath: []byte(file.Name),
		IsDir:   file.FileInfo().IsDir(),
	}
	if entry.IsDir {
		entry.Body = bytes.NewReader(nil)
		return entry, nil
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open zip entry %q: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read zip entry %q: %w", file.Name, err)
	}
	entry.Body = bytes.NewReader(data)
	return entry, nil
}

type tarGzArchive struct {
	tr *tar.Reader
}

// Next advances the tar stream. Non-file, non-directory entries
// (symlinks, devices) are passed through; the install filter decides
// what to keep.
func (a *tarGzArchive) Next() (*Entry, error) {
	for {
		header, err := a.tr.Next()
		if err != nil {
			return nil, err
		}
		switch header.Typeflag {
		case tar.TypeReg, tar.TypeDir:
			return &Entry{
				RawPath: []byte(header.Name),
				IsDir:   header.Typeflag == tar.TypeDir,
				Body:    a.tr,
			}, nil
		default:
			// Skip entry types that never install.
			continue
		}
	}
}
