package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/structkit/structkit/internal/generator"
	"github.com/structkit/structkit/internal/output"
	"github.com/structkit/structkit/internal/structure"
)

// ValidateCmd creates and returns the 'validate' command. It loads and
// path-checks a structure definition without touching the filesystem.
func ValidateCmd() *cobra.Command {
	env := newEnv()

	var structuresPath string

	cmd := &cobra.Command{
		Use:   "validate [structure]",
		Short: "Check a structure definition without generating anything",
		Long: `Parses a YAML structure definition and validates every node path
(no absolute paths, no parent-directory segments). Nothing is written.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			structurePath, err := resolveStructurePath(args[0], structuresPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			nodes, err := structure.Load(structurePath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := generator.CheckPaths(nodes, ""); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			files, dirs := structure.Count(nodes)
			output.Success(fmt.Sprintf("%s is valid", structurePath))
			output.Step(fmt.Sprintf("%d files, %d directories", files, dirs))
		},
	}

	cmd.Flags().StringVar(&structuresPath, "structures-path",
		envDefault(env, "structures_path", ""),
		"Directory of named structure definitions to resolve against")

	return cmd
}
