// Package config owns the rookup configuration file: the default
// toolchain selector, the alias table, and the drop-server source
// parameters. The file is TOML under the per-user config directory and
// is materialized from defaults on first use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigHome overrides the directory holding the config file.
const EnvConfigHome = "ROOKUP_CONFIG_HOME"

// EnvToolchain overrides the selector used by compiler proxies.
const EnvToolchain = "ROOKUP_TOOLCHAIN"

const (
	homeDir  = "rookup"
	fileName = "config.toml"
)

// ErrNoConfigHome is returned when no config directory can be
// determined for the current user.
var ErrNoConfigHome = errors.New("couldn't determine config directory")

// Data is the decoded configuration.
type Data struct {
	// Default is the selector used when no explicit selector is given.
	Default string `toml:"default"`
	// Aliases maps alias names to concrete version strings.
	Aliases map[string]string `toml:"aliases"`
	// Source configures the remote drop server.
	Source Source `toml:"source"`
}

// Source holds drop-server download parameters.
type Source struct {
	// RootURL is the root of the static file server, with trailing slash.
	RootURL string `toml:"root-url"`
	// MaxDownloadSize bounds, in bytes, any single download.
	MaxDownloadSize int64 `toml:"max-download-size"`
	// SigningKeyring optionally names an armored public keyring file;
	// when set, downloaded archives must carry a valid detached
	// signature from it.
	SigningKeyring string `toml:"signing-keyring,omitempty"`
}

// Defaults returns the configuration written on first use.
func Defaults() Data {
	return Data{
		Default: "stable",
		Aliases: map[string]string{},
		Source: Source{
			RootURL:         "https://sm.alliedmods.net/smdrop/",
			MaxDownloadSize: 75_000_000,
		},
	}
}

// Path returns the config file location: $ROOKUP_CONFIG_HOME/config.toml
// when the override is set, else <user config dir>/rookup/config.toml.
func Path() (string, error) {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return filepath.Join(dir, fileName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigHome, err)
	}
	return filepath.Join(base, homeDir, fileName), nil
}

// File is an open configuration handle.
type File struct {
	// Path is where the configuration was read from and is saved to.
	Path string
	// Data is the decoded configuration.
	Data Data
}

// Open reads the configuration file, creating it from Defaults first
// when it does not exist.
func Open() (*File, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := &File{Path: path, Data: Defaults()}
		if err := f.Save(); err != nil {
			return nil, fmt.Errorf("create default config at %s: %w", path, err)
		}
		return f, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	f := &File{Path: path, Data: Defaults()}
	if err := toml.Unmarshal(raw, &f.Data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.Data.Aliases == nil {
		f.Data.Aliases = map[string]string{}
	}
	return f, nil
}

// SetDefault replaces the default selector.
func (f *File) SetDefault(selector string) {
	f.Data.Default = selector
}

// SetAlias binds an alias name to a version.
func (f *File) SetAlias(alias, version string) {
	if f.Data.Aliases == nil {
		f.Data.Aliases = map[string]string{}
	}
	f.Data.Aliases[alias] = version
}

// Save re-encodes the configuration over its file, creating parent
// directories as needed.
func (f *File) Save() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f.Data); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

// ToolchainSource says where the current selector came from.
type ToolchainSource int

const (
	// SourceEnv means the ROOKUP_TOOLCHAIN environment variable.
	SourceEnv ToolchainSource = iota
	// SourceConfig means the configuration file's default.
	SourceConfig
)

// Describe names the source for error messages.
func (s ToolchainSource) Describe() string {
	if s == SourceEnv {
		return "the `" + EnvToolchain + "` environment variable"
	}
	return "the rookup configuration file"
}

// CurrentToolchain resolves the selector the proxy should use: the
// ROOKUP_TOOLCHAIN environment variable when set, else the config
// default.
func CurrentToolchain(data *Data) (string, ToolchainSource) {
	if sel := os.Getenv(EnvToolchain); sel != "" {
		return sel, SourceEnv
	}
	return data.Default, SourceConfig
}
