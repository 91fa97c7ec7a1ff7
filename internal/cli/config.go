package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"rookup/internal/config"
)

// newConfigCmd creates the "config" command: print the config file
// location and its effective contents.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the configuration file path and contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Open()
			if err != nil {
				return err
			}

			fmt.Printf("# %s\n", f.Path)
			if err := toml.NewEncoder(os.Stdout).Encode(f.Data); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}
