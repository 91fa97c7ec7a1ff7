// Package cli implements the rookup command-line interface.
//
// The commands manage SourcePawn toolchains the way rustup manages Rust
// ones: a default selector and alias table live in a TOML config file,
// installed toolchains live under two home roots, and the update and
// install commands pull archives from a SourceMod drop server.
//
// The CLI is built with cobra; logging goes through charmbracelet/log
// and is passed to commands via context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Execute runs the rookup CLI and returns an error if any command
// fails. Commands print their own failure details; main only needs the
// exit status.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rookup",
		Short:        "rookup manages SourcePawn toolchains",
		Long:         "rookup installs, updates, and switches between SourcePawn toolchains downloaded from a SourceMod drop server.",
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConfigCmd())
	root.AddCommand(newDefaultCmd())
	root.AddCommand(newAliasCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newUpdateCmd())
	root.AddCommand(newInstallCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newPurgeCmd())

	return root.ExecuteContext(context.Background())
}
