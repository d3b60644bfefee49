package cli

import (
	"time"

	"github.com/spf13/cobra"

	"gantterm/internal/config"
	"gantterm/internal/export"
)

var (
	exportOut       string
	exportWidth     int
	exportRowHeight int
	exportFrom      string
	exportTo        string
	exportLight     bool
)

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Render the chart to a PNG image",
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

		w, err := resolveWindow(tasks, cfg, exportFrom, exportTo)
		if err != nil {
			return err
		}

		rowHeight := cfg.RowHeight
		if exportRowHeight > 0 {
			rowHeight = exportRowHeight
		}
		opts := export.Options{
			Width:     exportWidth,
			RowHeight: rowHeight,
			Colors:    export.DarkColors,
			Today:     time.Now(),
		}
		if exportLight || cfg.Theme == "light" {
			opts.Colors = export.LightColors
		}

		if err := export.WriteFile(exportOut, tasks, w, opts); err != nil {
			return err
		}
		logger.Info("wrote image", "path", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "gantt.png", "output image path")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "image width in pixels (default 1200)")
	exportCmd.Flags().IntVar(&exportRowHeight, "row-height", 0, "row height in pixels (default from config)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "window start (YYYY-MM-DD), overrides fit")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "window end (YYYY-MM-DD), overrides fit")
	exportCmd.Flags().BoolVar(&exportLight, "light", false, "use the light palette")
}
