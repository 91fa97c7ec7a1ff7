package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/toolchain"
)

// newPurgeCmd creates the "purge" command: delete cache toolchains not
// referenced by the default selector or any alias.
func newPurgeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove cache toolchains no selector references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := config.Open()
			if err != nil {
				return err
			}
			defaultSel := toolchain.ParseSelector(f.Data.Default)

			keep := func(name string) bool {
				if defaultSel.Test(f.Data.Aliases, name) {
					return true
				}
				for _, bound := range f.Data.Aliases {
					if bound == name {
						return true
					}
				}
				return false
			}

			cacheRoot, err := toolchain.CacheHome()
			if err != nil {
				return err
			}
			entries, err := os.ReadDir(cacheRoot)
			if err != nil {
				if os.IsNotExist(err) {
					logger.Info("nothing installed")
					return nil
				}
				return err
			}

			for _, entry := range entries {
				if !entry.IsDir() || keep(entry.Name()) {
					continue
				}
				path := filepath.Join(cacheRoot, entry.Name())
				if dryRun {
					logger.Info("would remove", "version", entry.Name(), "path", path)
					continue
				}
				if err := os.RemoveAll(path); err != nil {
					return err
				}
				logger.Info("removed", "version", entry.Name(), "path", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print what would be removed without removing")
	return cmd
}
