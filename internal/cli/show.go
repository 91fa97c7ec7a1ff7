package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rookup/internal/config"
	"rookup/internal/platform"
	"rookup/internal/toolchain"
)

// newShowCmd creates the "show" command: host platform, current
// selector, and the toolchains installed under each home root.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show installed toolchains and the active selector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Open()
			if err != nil {
				return err
			}

			if info, err := platform.Describe(cmd.Context()); err == nil {
				fmt.Printf("host: %s\n", info)
			}

			selector, source := config.CurrentToolchain(&f.Data)
			fmt.Printf("toolchain: %s (from %s)\n", selector, source.Describe())
			fmt.Println()

			sel := toolchain.ParseSelector(selector)
			for _, listing := range toolchain.List() {
				fmt.Printf("%s:\n", listing.Home)
				if len(listing.Versions) == 0 {
					fmt.Println("  (none installed)")
					continue
				}
				for _, name := range listing.Versions {
					marker := " "
					if sel.Test(f.Data.Aliases, name) {
						marker = "*"
					}
					fmt.Printf("  %s %s\n", marker, name)
				}
			}
			return nil
		},
	}
}
