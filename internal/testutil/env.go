// Package testutil isolates rookup tests from the real user profile.
package testutil

import (
	"path/filepath"
	"testing"

	"rookup/internal/config"
	"rookup/internal/toolchain"
)

// Homes are the isolated rookup directories a test runs against.
type Homes struct {
	// ConfigHome holds the config file.
	ConfigHome string
	// CustomRoot is the custom toolchain root, already suffixed
	// rookup/toolchains.
	CustomRoot string
	// CacheRoot is the cache toolchain root, already suffixed
	// rookup/toolchains.
	CacheRoot string
}

// SetupHomes points every rookup directory override at per-test temp
// space so tests never read or write the user's actual configuration
// and toolchains. Cleanup is handled by t.TempDir.
func SetupHomes(t *testing.T) Homes {
	t.Helper()

	configHome := t.TempDir()
	customBase := t.TempDir()
	cacheBase := t.TempDir()

	t.Setenv(config.EnvConfigHome, configHome)
	t.Setenv(toolchain.EnvCustomHome, customBase)
	t.Setenv(toolchain.EnvCacheHome, cacheBase)

	return Homes{
		ConfigHome: configHome,
		CustomRoot: filepath.Join(customBase, "rookup", "toolchains"),
		CacheRoot:  filepath.Join(cacheBase, "rookup", "toolchains"),
	}
}
