package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/smdrop"
	"rookup/internal/toolchain"
	"rookup/internal/version"
)

// newInstallCmd creates the "install" command: install the best remote
// match for a selector without touching the alias table.
func newInstallCmd() *cobra.Command {
	var redownload bool

	cmd := &cobra.Command{
		Use:   "install <selector>",
		Short: "Install the newest toolchain matching a selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := config.Open()
			if err != nil {
				return err
			}
			sel := toolchain.ParseSelector(args[0])

			client := smdrop.NewClient(f.Data.Source.RootURL)
			branch, err := client.SelectBranch(sel, f.Data.Aliases)
			if err != nil {
				return err
			}

			urls, err := relevantIn(client, branch)
			if err != nil {
				return err
			}

			// A super-version selector narrows within the branch too:
			// ":1.11.0" must not install a 1.11.1 build just because
			// both live under the 1.11 branch.
			if super, ok := sel.Super(); ok {
				var narrowed []smdrop.RelevantURL
				for _, u := range urls {
					if version.IsSub(u.Version, super) {
						narrowed = append(narrowed, u)
					}
				}
				if len(narrowed) == 0 {
					return fmt.Errorf("branch %q has no downloads matching %q", branch.Name, sel.String())
				}
				urls = narrowed
			}

			best, _ := smdrop.MaxRelevant(urls)
			if toolchain.IsInstalled(best.Version) && !redownload {
				logger.Info("already installed", "version", best.Version)
				return nil
			}
			return installRemote(logger, client, f.Data.Source, best)
		},
	}

	cmd.Flags().BoolVar(&redownload, "redownload", false, "reinstall even when already installed")
	return cmd
}
