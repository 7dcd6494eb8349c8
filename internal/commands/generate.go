package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/structkit/structkit/internal/generator"
	"github.com/structkit/structkit/internal/input"
	"github.com/structkit/structkit/internal/inputstore"
	"github.com/structkit/structkit/internal/output"
	"github.com/structkit/structkit/internal/render"
	"github.com/structkit/structkit/internal/structure"
)

// Output modes: file materializes the structure on disk, console
// prints every rendered file instead.
const (
	outputModeFile    = "file"
	outputModeConsole = "console"
)

// GenerateCmd creates and returns the 'generate' command.
func GenerateCmd() *cobra.Command {
	env := newEnv()

	var (
		fileStrategy       string
		backupPath         string
		globalSystemPrompt string
		inputStorePath     string
		structuresPath     string
		outputMode         string
		nonInteractive     bool
		dryRun             bool
	)

	// Whether the environment picked a strategy; an env-set strategy
	// counts as explicit, like a flag.
	envStrategy := envDefault(env, "file_strategy", "")

	cmd := &cobra.Command{
		Use:   "generate [structure] [base-path]",
		Short: "Materialize a structure definition on disk",
		Long: `Reads a YAML structure definition and creates its files and
directories under the base path.

Existing targets are handled according to the file strategy:
  overwrite  - replace the existing content (default)
  skip       - leave the existing target untouched
  append     - add the rendered content at end-of-file
  rename     - write next to the original (name_1.ext, name_2.ext, …)
  backup     - copy the original under the backup root, then overwrite

Every flag can also be set through a STRUCTKIT_* environment variable
(e.g. STRUCTKIT_FILE_STRATEGY); explicit flags win.

Examples:
  structkit generate structure.yaml ./myapp
  structkit generate structure.yaml ./myapp -f skip
  structkit generate structure.yaml ./myapp -b ~/.structkit/backups
  structkit generate structure.yaml ./myapp --dry-run
  structkit generate structure.yaml ./myapp -o console`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			strategy, err := generator.ParseStrategy(fileStrategy)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if outputMode != outputModeFile && outputMode != outputModeConsole {
				output.Error(fmt.Sprintf("invalid output mode %q (valid: %s, %s)",
					outputMode, outputModeFile, outputModeConsole))
				os.Exit(1)
			}

			structurePath, err := resolveStructurePath(args[0], structuresPath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			basePath, err := filepath.Abs(args[1])
			if err != nil {
				output.Error(fmt.Sprintf("Invalid base path: %v", err))
				os.Exit(1)
			}

			nodes, err := structure.Load(structurePath)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			// A standalone --backup flag (or STRUCTKIT_BACKUP_PATH)
			// switches the run to the backup strategy unless a
			// strategy was chosen explicitly.
			explicitStrategy := cmd.Flags().Changed("file-strategy") || envStrategy != ""
			if backupPath != "" && !explicitStrategy {
				strategy = generator.StrategyBackup
			}
			if strategy == generator.StrategyBackup && backupPath == "" {
				backupPath = defaultBackupRoot()
				output.Verbose(fmt.Sprintf("No backup root given, using %s", backupPath))
			}

			interactive := !nonInteractive && term.IsTerminal(int(os.Stdin.Fd()))
			renderer := render.New()

			vars := collectVars(renderer, nodes, inputStorePath, globalSystemPrompt, interactive)

			// Console mode renders to stdout and never touches the
			// filesystem, so conflict handling does not apply.
			if outputMode == outputModeConsole {
				if err := printStructure(cmd.OutOrStdout(), nodes, renderer, vars); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				return
			}

			// With no explicit strategy, the first existing target
			// raises a menu and its choice applies to the whole run.
			if interactive && !explicitStrategy && backupPath == "" {
				if conflictPath, info, found := firstConflict(nodes, basePath); found {
					chosen, ok, err := input.ChooseStrategy(conflictPath, info)
					if err != nil {
						output.Error(err.Error())
						os.Exit(1)
					}
					if !ok {
						output.Info("Cancelled, nothing written")
						return
					}
					strategy = chosen
					if strategy == generator.StrategyBackup && backupPath == "" {
						backupPath = defaultBackupRoot()
					}
				}
			}

			// An explicitly requested overwrite still gets one chance
			// to back out before the first destructive write.
			if interactive && explicitStrategy && strategy == generator.StrategyOverwrite && !dryRun {
				if conflictPath, _, found := firstConflict(nodes, basePath); found {
					if !input.Confirm(fmt.Sprintf("%s already exists, overwrite existing targets?", conflictPath), true) {
						output.Info("Cancelled, nothing written")
						return
					}
				}
			}

			output.Verbose(fmt.Sprintf("Generating %s into %s (strategy=%s, dry-run=%v)",
				structurePath, basePath, strategy, dryRun))

			opts := generator.Options{
				BasePath:   basePath,
				Strategy:   strategy,
				BackupRoot: backupPath,
				DryRun:     dryRun,
				Vars:       vars,
			}

			report, err := generator.Walk(nodes, opts, renderer)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Summary(cmd.OutOrStdout(), report)

			if dryRun {
				output.Info("Dry-run complete. Run without --dry-run to create files.")
			}
			if failed := report.Failed(); failed > 0 {
				output.Error(fmt.Sprintf("%d of %d nodes failed", failed, report.Len()))
				os.Exit(1)
			}
			if !dryRun {
				output.Success(fmt.Sprintf("Generated structure in %s", basePath))
			}
		},
	}

	cmd.Flags().StringVarP(&fileStrategy, "file-strategy", "f",
		envDefault(env, "file_strategy", "overwrite"),
		"How to handle existing targets (overwrite, skip, append, rename, backup)")
	cmd.Flags().StringVarP(&backupPath, "backup", "b",
		envDefault(env, "backup_path", ""),
		"Back up existing targets under this directory before overwriting")
	cmd.Flags().StringVar(&globalSystemPrompt, "global-system-prompt",
		envDefault(env, "global_system_prompt", ""),
		"Value exposed to content templates as {{ .global_system_prompt }}")
	cmd.Flags().StringVarP(&inputStorePath, "input-store", "n",
		envDefault(env, "input_store", inputstore.DefaultPath()),
		"JSON file remembering previously entered variable values")
	cmd.Flags().StringVar(&structuresPath, "structures-path",
		envDefault(env, "structures_path", ""),
		"Directory of named structure definitions to resolve against")
	cmd.Flags().StringVarP(&outputMode, "output", "o",
		envDefault(env, "output_mode", outputModeFile),
		"Where rendered content goes: file (write to disk) or console (print)")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive",
		envBool(env, "non_interactive"),
		"Never prompt; missing variables render as empty strings")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Report what would be done without touching the filesystem")

	return cmd
}

// resolveStructurePath finds the structure definition: the literal
// path first, then a lookup in the structures library directory.
func resolveStructurePath(name, structuresPath string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if structuresPath != "" {
		candidate := filepath.Join(structuresPath, name)
		if _, err := os.Stat(candidate); err == nil {
			output.Verbose(fmt.Sprintf("Using structures path: %s", structuresPath))
			return candidate, nil
		}
	}
	return "", fmt.Errorf("structure definition not found: %s", name)
}

// defaultBackupRoot is used when the backup strategy is selected
// without an explicit backup root.
func defaultBackupRoot() string {
	return filepath.Join(os.TempDir(), "structkit", "backup")
}

// collectVars assembles the variable mapping for content rendering:
// stored answers first, then the global system prompt, then (in
// interactive mode) prompts for anything the templates reference
// that is still missing. New answers are persisted to the store.
func collectVars(renderer *render.Renderer, nodes []*structure.Node, storePath, globalSystemPrompt string, interactive bool) map[string]string {
	store, err := inputstore.Load(storePath)
	if err != nil {
		output.Verbose(fmt.Sprintf("Ignoring unreadable input store: %v", err))
		store = inputstore.New(storePath)
	}

	vars := store.Values()
	if globalSystemPrompt != "" {
		vars["global_system_prompt"] = globalSystemPrompt
	}

	if !interactive {
		return vars
	}

	asked := false
	walkFiles(nodes, func(node *structure.Node) {
		names, err := renderer.Vars(node.Path, node.Content)
		if err != nil {
			// Parse errors surface once rendering runs.
			return
		}
		for _, name := range names {
			if _, ok := vars[name]; ok {
				continue
			}
			value := input.Prompt(name, "")
			vars[name] = value
			store.Set(name, value)
			asked = true
		}
	})

	if asked {
		if err := store.Save(); err != nil {
			output.Verbose(fmt.Sprintf("Could not save input store: %v", err))
		}
	}
	return vars
}

// printStructure writes every rendered file to w, each under a header
// naming its base-relative path. Directories contribute only their
// children.
func printStructure(w io.Writer, nodes []*structure.Node, renderer *render.Renderer, vars map[string]string) error {
	for _, node := range nodes {
		if node.Kind == structure.KindDirectory {
			if err := printStructure(w, node.Children, renderer, vars); err != nil {
				return err
			}
			continue
		}

		content, err := renderer.Render(node.Path, node.Content, vars)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "--- %s ---\n%s\n", node.Path, content)
	}
	return nil
}

// walkFiles visits every file node depth-first.
func walkFiles(nodes []*structure.Node, visit func(*structure.Node)) {
	for _, node := range nodes {
		if node.Kind == structure.KindDirectory {
			walkFiles(node.Children, visit)
		} else {
			visit(node)
		}
	}
}

// firstConflict finds the first declared node whose target already
// exists under basePath.
func firstConflict(nodes []*structure.Node, basePath string) (string, os.FileInfo, bool) {
	for _, node := range nodes {
		absPath, err := generator.Resolve(basePath, node.Path)
		if err == nil {
			if info, statErr := os.Stat(absPath); statErr == nil {
				// An existing directory is only a conflict for
				// file nodes; directories are created in place.
				if node.Kind == structure.KindFile {
					return absPath, info, true
				}
			}
		}
		if path, info, found := firstConflict(node.Children, basePath); found {
			return path, info, true
		}
	}
	return "", nil, false
}
