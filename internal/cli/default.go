package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rookup/internal/config"
)

// newDefaultCmd creates the "default" command: with no argument it
// prints the default selector, with one it replaces it.
func newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default [selector]",
		Short: "Get or set the default toolchain selector",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Open()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Println(f.Data.Default)
				return nil
			}

			f.SetDefault(args[0])
			if err := f.Save(); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("default updated", "selector", args[0])
			return nil
		},
	}
}
