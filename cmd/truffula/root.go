package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/truffula/internal/logger"
	"github.com/joshuapare/truffula/tree"
	"github.com/joshuapare/truffula/tree/color"
	"github.com/joshuapare/truffula/tree/fsys"
)

var (
	// Global flags
	showHidden bool
	noColor    bool
	debug      bool
	mode       = colorModeAlways
	colors     = color.Default()
)

var rootCmd = &cobra.Command{
	Use:   "truffula <directory>",
	Short: "Print a directory as an indented, colorized tree",
	Long: `truffula prints the contents of a directory as an indented tree.
Entries are sorted case-insensitively, each level is indented by three spaces
and lines are colored by depth, cycling through a sequence of colors.

Example:
  truffula myFolder
  truffula myFolder --hidden
  truffula myFolder --no-color
  truffula myFolder --colors red,green,blue`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Enabled: debug,
			Output:  os.Stderr,
			Level:   slog.LevelDebug,
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTree(args)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Show hidden files and directories")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().Var(&mode, "color", "When to color output: always, auto or never")
	rootCmd.Flags().Var(color.Value{Seq: &colors}, "colors", "Comma-separated colors cycled by depth")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log diagnostics to stderr")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func runTree(args []string) error {
	root := args[0]
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	opts := tree.Options{
		Root:       root,
		ShowHidden: showHidden,
		UseColor:   !noColor && mode.enabled(os.Stdout),
		Colors:     colors,
	}
	logger.Debug("rendering tree",
		"root", opts.Root,
		"hidden", opts.ShowHidden,
		"color", opts.UseColor,
		"colors", opts.Colors.String(),
	)

	if err := tree.New(fsys.OS(), os.Stdout, opts).Render(); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
