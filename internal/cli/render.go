package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gantterm/internal/chart"
	"gantterm/internal/config"
	"gantterm/internal/timeline"
)

var (
	renderWidth int
	renderWeeks bool
	renderFrom  string
	renderTo    string
)

var renderCmd = &cobra.Command{
	Use:   "render <file.csv>",
	Short: "Print the chart once to stdout",
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

		w, err := resolveWindow(tasks, cfg, renderFrom, renderTo)
		if err != nil {
			return err
		}
		if renderWeeks {
			w = w.RoundToWeeks()
		}

		out := chart.Render(
			chart.Layout(tasks, w, renderWidth),
			w,
			chart.RenderOptions{
				Width:    renderWidth,
				Gutter:   24,
				Selected: -1,
				Today:    timeline.Midnight(time.Now()),
			},
		)
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 120, "timeline width in columns")
	renderCmd.Flags().BoolVar(&renderWeeks, "weeks", false, "round the window to whole weeks")
	renderCmd.Flags().StringVar(&renderFrom, "from", "", "window start (YYYY-MM-DD), overrides fit")
	renderCmd.Flags().StringVar(&renderTo, "to", "", "window end (YYYY-MM-DD), overrides fit")
}
