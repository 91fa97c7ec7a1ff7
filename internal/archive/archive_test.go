package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// buildTarGz builds an in-memory tar.gz with the given file contents.
// Names ending in "/" become directory entries.
func buildTarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	for name, content := range files {
		header := &tar.Header{Name: name, Mode: 0o644, Size: int64(len(content))}
		if strings.HasSuffix(name, "/") {
			header.Typeflag = tar.TypeDir
			header.Size = 0
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("write tar header %q: %v", name, err)
		}
		if header.Typeflag != tar.TypeDir {
			if _, err := tw.Write([]byte(content)); err != nil {
				t.Fatalf("write tar content %q: %v", name, err)
			}
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// buildZip builds an in-memory zip with the given file contents.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %q: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %q: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		url     string
		want    Kind
		wantErr bool
	}{
		{"http://x/sourcemod-1.12.0-git7192-windows.zip", KindZip, false},
		{"http://x/sourcemod-1.12.0-git7192-linux.tar.gz", KindTarGz, false},
		{"http://x/sourcemod-latest-linux", 0, true},
		{"http://x/archive.tar.bz2", 0, true},
	}

	for _, tt := range tests {
		kind, err := KindOf(tt.url)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("KindOf(%q) error = %v, want ErrUnsupportedFormat", tt.url, err)
			}
			continue
		}
		if err != nil || kind != tt.want {
			t.Errorf("KindOf(%q) = %v, %v; want %v", tt.url, kind, err, tt.want)
		}
	}
}

func collect(t *testing.T, a Archive) map[string]string {
	t.Helper()

	entries := map[string]string{}
	for {
		entry, err := a.Next()
		if err == io.EOF {
			return entries
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if entry.IsDir {
			entries[string(entry.RawPath)] = "<dir>"
			continue
		}
		data, err := io.ReadAll(entry.Body)
		if err != nil {
			t.Fatalf("read entry %q: %v", entry.RawPath, err)
		}
		entries[string(entry.RawPath)] = string(data)
	}
}

func TestTarGzEntries(t *testing.T) {
	data := buildTarGz(t, map[string]string{
		"addons/":                    "",
		"addons/sourcemod/a.txt":     "alpha",
		"addons/sourcemod/sub/b.inc": "beta",
	})

	a, err := New(bytes.NewReader(data), KindTarGz)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	entries := collect(t, a)
	if entries["addons/"] != "<dir>" {
		t.Errorf("directory entry missing: %v", entries)
	}
	if entries["addons/sourcemod/a.txt"] != "alpha" || entries["addons/sourcemod/sub/b.inc"] != "beta" {
		t.Errorf("entries = %v", entries)
	}
}

func TestZipEntries(t *testing.T) {
	data := buildZip(t, map[string]string{
		"addons/sourcemod/a.txt": "alpha",
		"include/b.inc":          "beta",
	})

	a, err := New(bytes.NewReader(data), KindZip)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	entries := collect(t, a)
	if entries["addons/sourcemod/a.txt"] != "alpha" || entries["include/b.inc"] != "beta" {
		t.Errorf("entries = %v", entries)
	}
}

func TestNewRejectsGarbage(t *testing.T) {
	if _, err := New(strings.NewReader("not an archive"), KindTarGz); err == nil {
		t.Error("New accepted garbage as gzip")
	}
	if _, err := New(strings.NewReader("not an archive"), KindZip); err == nil {
		t.Error("New accepted garbage as zip")
	}
}

func TestBoundReader(t *testing.T) {
	t.Run("body_within_limit", func(t *testing.T) {
		r := BoundReader(strings.NewReader("0123456789"), 10)
		data, err := io.ReadAll(r)
		if err != nil || string(data) != "0123456789" {
			t.Errorf("ReadAll = %q, %v", data, err)
		}
	})

	t.Run("body_exceeds_limit", func(t *testing.T) {
		r := BoundReader(strings.NewReader("0123456789"), 4)
		_, err := io.ReadAll(r)
		if !errors.Is(err, ErrBodyTooLarge) {
			t.Errorf("ReadAll error = %v, want ErrBodyTooLarge", err)
		}
	})

	t.Run("limit_fails_before_decompression", func(t *testing.T) {
		data := buildTarGz(t, map[string]string{"f": strings.Repeat("x", 4096)})
		a, err := New(BoundReader(bytes.NewReader(data), int64(len(data)/2)), KindTarGz)
		if err == nil {
			// gzip header fit under the bound; the failure surfaces on
			// the first entry read instead.
			_, err = a.Next()
			for err == nil {
				_, err = a.Next()
			}
		}
		if !errors.Is(err, ErrBodyTooLarge) {
			t.Errorf("error = %v, want ErrBodyTooLarge", err)
		}
	})
}
