package cli

import (
	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/smdrop"
	"rookup/internal/toolchain"
	"rookup/internal/version"
)

// newUpdateCmd creates the "update" command: resolve a selector to a
// remote branch, install the branch's newest release when it is newer
// than what is installed, and rebind the alias the selector named.
func newUpdateCmd() *cobra.Command {
	var redownload bool

	cmd := &cobra.Command{
		Use:   "update [selector] [alias]",
		Short: "Update the toolchain a selector points at",
		Long: "Update resolves the selector (default: the configured default) to a remote " +
			"branch, installs the branch's newest release for this platform when it is " +
			"newer than the installed one, and binds the alias to the resulting version. " +
			"An explicit alias argument overrides which alias gets bound.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := config.Open()
			if err != nil {
				return err
			}

			selText := f.Data.Default
			if len(args) > 0 {
				selText = args[0]
			}
			sel := toolchain.ParseSelector(selText)

			client := smdrop.NewClient(f.Data.Source.RootURL)
			branch, err := client.SelectBranch(sel, f.Data.Aliases)
			if err != nil {
				return err
			}
			logger.Debug("branch selected", "selector", sel.String(), "branch", branch.Name)

			urls, err := relevantIn(client, branch)
			if err != nil {
				return err
			}
			best, _ := smdrop.MaxRelevant(urls)

			current := best.Version
			installed, haveInstalled := toolchain.FindLatestOf(branch.Name)
			switch {
			case haveInstalled && !redownload && version.Compare(best.Version, installed.Name) <= 0:
				logger.Info("already up to date", "branch", branch.Name, "version", installed.Name)
				current = installed.Name
			default:
				if err := installRemote(logger, client, f.Data.Source, best); err != nil {
					return err
				}
			}

			// Bind the alias so the compiler proxy resolves to the
			// version this update settled on. An explicit second
			// argument wins over the selector's own alias name.
			aliasName := ""
			if len(args) > 1 {
				aliasName = args[1]
			} else if alias, ok := sel.Alias(); ok {
				aliasName = alias
			}
			if aliasName == "" {
				return nil
			}

			f.SetAlias(aliasName, current)
			if err := f.Save(); err != nil {
				return err
			}
			logger.Info("alias updated", "alias", aliasName, "version", current)
			return nil
		},
	}

	cmd.Flags().BoolVar(&redownload, "redownload", false, "reinstall even when already up to date")
	return cmd
}
