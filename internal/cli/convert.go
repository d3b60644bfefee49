package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gantterm/internal/config"
	"gantterm/internal/tabular"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert <file.csv>",
	Short: "Normalize any recognized CSV encoding to the canonical columns",
	Long:  `Convert reads a CSV in any recognized encoding (explicit dates, week offsets or day offsets) and writes it back with the canonical columns: id,name,start,end,assignee,progress,dependencies.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		tasks, err := loadTasks(args[0], cfg)
		if err != nil {
			return err
		}

		if convertOut == "" || convertOut == "-" {
			return tabular.WriteTasks(cmd.OutOrStdout(), tasks)
		}

		f, err := os.Create(convertOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", convertOut, err)
		}
		defer f.Close()
		if err := tabular.WriteTasks(f, tasks); err != nil {
			return err
		}
		logger.Info("wrote normalized csv", "path", convertOut, "tasks", len(tasks))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default stdout)")
}
