package commands

import (
	"github.com/spf13/cobra"

	"github.com/structkit/structkit"
	"github.com/structkit/structkit/internal/output"
)

// RootCmd creates and returns the root command for the structkit CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "structkit",
		Short: "Generate directory structures from YAML definitions",
		Long: `structkit materializes files and directories from a declarative
YAML structure definition, with a configurable policy for targets that
already exist (overwrite, skip, append, rename, backup).

Example:
  structkit generate structure.yaml ./myapp`,
		Version: structkit.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
