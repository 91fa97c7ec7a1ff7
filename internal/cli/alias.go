package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/toolchain"
)

// newAliasCmd creates the "alias" command: with one argument it prints
// the version an alias is bound to, with two it binds the alias.
func newAliasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alias <name> [version]",
		Short: "Get or set an alias binding",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if strings.HasPrefix(name, toolchain.SuperPrefix) {
				return fmt.Errorf("%q is not a valid alias name: names must not begin with %q", name, toolchain.SuperPrefix)
			}

			f, err := config.Open()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				bound, ok := f.Data.Aliases[name]
				if !ok {
					return fmt.Errorf("alias %q is not defined", name)
				}
				fmt.Println(bound)
				return nil
			}

			f.SetAlias(name, args[1])
			if err := f.Save(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("alias updated", "alias", name, "version", args[1])
			return nil
		},
	}
}
