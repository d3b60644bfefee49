// Package cli implements the headless subcommands: one-shot rendering, PNG
// export and CSV normalization.
package cli

import (
	"github.com/spf13/cobra"

	"gantterm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "gantterm",
	Short:   "Editable Gantt charts in the terminal",
	Long:    `Gantterm renders CSV task data as a Gantt chart. Run with no arguments (or a CSV path) for the interactive editor, or use a subcommand for headless rendering and conversion.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(convertCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
