package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"rookup/internal/config"
	"rookup/internal/install"
	"rookup/internal/platform"
	"rookup/internal/smdrop"
	"rookup/internal/toolchain"
)

// relevantIn lists a branch's archive files and keeps the ones built
// for the running platform.
func relevantIn(client *smdrop.Client, branch smdrop.Branch) ([]smdrop.RelevantURL, error) {
	files, err := client.Versions(branch)
	if err != nil {
		return nil, err
	}
	urls := smdrop.Relevant(files, platform.Target())
	if len(urls) == 0 {
		return nil, fmt.Errorf("branch %q has no downloads for target %q", branch.Name, platform.Target())
	}
	return urls, nil
}

// installRemote downloads one archive and installs it under the cache
// home, named after its normalized version.
func installRemote(logger *log.Logger, client *smdrop.Client, source config.Source, u smdrop.RelevantURL) error {
	cacheRoot, err := toolchain.CacheHome()
	if err != nil {
		return err
	}
	dest := filepath.Join(cacheRoot, u.Version)

	logger.Info("downloading", "version", u.Version, "url", u.URL)
	err = install.Run(client, install.Options{
		URL:      u.URL,
		MaxBytes: source.MaxDownloadSize,
		Dest:     dest,
		Keyring:  source.SigningKeyring,
		Log:      logger,
	})
	if err != nil {
		return fmt.Errorf("install %s: %w", u.Version, err)
	}

	logger.Info("installed", "version", u.Version, "path", dest)
	return nil
}
