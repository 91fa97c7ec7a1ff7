// Package verify checks detached PGP signatures over downloaded
// archives. Verification is opt-in: it runs only when the
// configuration names a public keyring, since the stock drop server
// publishes bare archives.
package verify

import (
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// Detached verifies an armored detached signature over signed using
// the armored public keyring at keyringPath.
func Detached(keyringPath string, signed, armoredSig io.Reader) error {
	keyringFile, err := os.Open(keyringPath)
	if err != nil {
		return fmt.Errorf("open keyring %s: %w", keyringPath, err)
	}
	defer keyringFile.Close()

	keyring, err := openpgp.ReadArmoredKeyRing(keyringFile)
	if err != nil {
		return fmt.Errorf("read keyring %s: %w", keyringPath, err)
	}

	if _, err := openpgp.CheckArmoredDetachedSignature(keyring, signed, armoredSig, nil); err != nil {
		return fmt.Errorf("signature check failed: %w", err)
	}
	return nil
}
