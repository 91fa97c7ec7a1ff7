package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/toolchain"
)

// newRemoveCmd creates the "remove" command: delete installed cache
// toolchains matching a selector. Custom-root toolchains are
// user-managed and never touched.
func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <selector>",
		Short: "Remove installed toolchains matching a selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := config.Open()
			if err != nil {
				return err
			}
			sel := toolchain.ParseSelector(args[0])

			cacheRoot, err := toolchain.CacheHome()
			if err != nil {
				return err
			}
			entries, err := os.ReadDir(cacheRoot)
			if err != nil {
				if os.IsNotExist(err) {
					logger.Info("nothing installed", "selector", sel.String())
					return nil
				}
				return err
			}

			removed := 0
			for _, entry := range entries {
				if !entry.IsDir() || !sel.Test(f.Data.Aliases, entry.Name()) {
					continue
				}
				path := filepath.Join(cacheRoot, entry.Name())
				if err := os.RemoveAll(path); err != nil {
					return err
				}
				logger.Info("removed", "version", entry.Name(), "path", path)
				removed++
			}
			if removed == 0 {
				logger.Warn("no installed toolchain matched", "selector", sel.String())
			}
			return nil
		},
	}
}
