package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// EnvCacheHome overrides the cache toolchain home root.
const EnvCacheHome = "ROOKUP_TOOLCHAIN_HOME"

// EnvCustomHome overrides the custom toolchain home root.
const EnvCustomHome = "ROOKUP_CUSTOM_TOOLCHAIN_HOME"

const (
	homeDir       = "rookup"
	toolchainsDir = "toolchains"
)

// ErrNoHome is returned when neither an override nor a platform
// directory yields a usable home root.
var ErrNoHome = errors.New("couldn't determine toolchain home directory")

// CustomHome returns the root for user-managed toolchains:
// $ROOKUP_CUSTOM_TOOLCHAIN_HOME when set, else the per-user data
// directory, suffixed rookup/toolchains.
func CustomHome() (string, error) {
	if dir := os.Getenv(EnvCustomHome); dir != "" {
		return filepath.Join(dir, homeDir, toolchainsDir), nil
	}
	base, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, homeDir, toolchainsDir), nil
}

// CacheHome returns the root for downloaded toolchains:
// $ROOKUP_TOOLCHAIN_HOME when set, else the per-user cache directory,
// suffixed rookup/toolchains. Downloads always land here; the contents
// can be re-created by re-downloading from the drop server.
func CacheHome() (string, error) {
	if dir := os.Getenv(EnvCacheHome); dir != "" {
		return filepath.Join(dir, homeDir, toolchainsDir), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", ErrNoHome
	}
	return filepath.Join(base, homeDir, toolchainsDir), nil
}

// homes returns the available roots in search order: custom first,
// cache second. A root whose location cannot be determined is skipped
// rather than failing the search.
func homes() []string {
	var roots []string
	if custom, err := CustomHome(); err == nil {
		roots = append(roots, custom)
	}
	if cache, err := CacheHome(); err == nil {
		roots = append(roots, cache)
	}
	return roots
}

// dataDir is the per-user data directory. The standard library has no
// UserDataDir, so this mirrors os.UserConfigDir's platform rules for
// the data variant.
func dataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("AppData"); dir != "" {
			return dir, nil
		}
		return "", ErrNoHome
	case "darwin", "ios":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ErrNoHome
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", ErrNoHome
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}
