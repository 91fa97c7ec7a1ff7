// Package install downloads a toolchain archive and materializes its
// relevant subtree under a toolchain home.
//
// Writes are not transactional: a failure aborts the run with the
// offending path attached and leaves files already written on disk.
package install

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"rookup/internal/archive"
	"rookup/internal/platform"
	"rookup/internal/smdrop"
	"rookup/internal/verify"
)

// Options configures one install run.
type Options struct {
	// URL is the archive to download; its suffix decides the format.
	URL string
	// MaxBytes bounds the transfer.
	MaxBytes int64
	// Dest is the toolchain directory to populate.
	Dest string
	// Keyring optionally names an armored public keyring file. When
	// set, the archive must carry a valid detached signature at
	// URL + ".asc".
	Keyring string
	// Log receives per-file progress. Optional.
	Log *log.Logger
}

// Run downloads, optionally verifies, and installs a toolchain
// archive. The format check happens before any transfer.
func Run(client *smdrop.Client, opts Options) error {
	kind, err := archive.KindOf(opts.URL)
	if err != nil {
		return err
	}

	resp, err := client.Get(opts.URL)
	if err != nil {
		return fmt.Errorf("fetch archive at %s: %w", opts.URL, err)
	}
	defer resp.Body.Close()

	body := archive.BoundReader(resp.Body, opts.MaxBytes)

	var a archive.Archive
	if opts.Keyring != "" {
		// Signature verification needs the whole (bounded) body up
		// front; the streaming tar.gz path is given up in exchange.
		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("download %s: %w", opts.URL, err)
		}
		if err := verifySignature(client, opts.URL, data, opts.Keyring); err != nil {
			return err
		}
		a, err = archive.New(bytes.NewReader(data), kind)
		if err != nil {
			return fmt.Errorf("open archive at %s: %w", opts.URL, err)
		}
	} else {
		a, err = archive.New(body, kind)
		if err != nil {
			return fmt.Errorf("open archive at %s: %w", opts.URL, err)
		}
	}

	return Extract(a, opts.Dest, opts.Log)
}

// verifySignature fetches the detached signature next to the archive
// and checks it against the configured keyring.
func verifySignature(client *smdrop.Client, url string, data []byte, keyring string) error {
	sigResp, err := client.Get(url + ".asc")
	if err != nil {
		return fmt.Errorf("fetch signature for %s: %w", url, err)
	}
	defer sigResp.Body.Close()

	if err := verify.Detached(keyring, bytes.NewReader(data), sigResp.Body); err != nil {
		return fmt.Errorf("verify %s: %w", url, err)
	}
	return nil
}

// Extract writes every filtered archive entry under dest. Directory
// entries are skipped; directories appear implicitly as files are
// written. The first write failure aborts the run with no rollback.
func Extract(a archive.Archive, dest string, logger *log.Logger) error {
	for {
		entry, err := a.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive entry: %w", err)
		}

		rel, ok := filterPath(entry.RawPath)
		if !ok || entry.IsDir {
			continue
		}

		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := writeEntry(target, rel, entry.Body); err != nil {
			return err
		}
		if logger != nil {
			logger.Debug("installed", "path", rel, "to", target)
		}
	}
}

func writeEntry(target, rel string, body io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directories up to %s: %w", target, err)
	}

	// The compiler executable must be runnable by anyone; permission
	// bits beyond that are ignored on windows.
	perm := os.FileMode(0o644)
	if platform.IsCompiler(path.Base(rel)) {
		perm = 0o777
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		return fmt.Errorf("pipe data of %s to %s: %w", rel, target, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}
	return nil
}
