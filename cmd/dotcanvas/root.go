package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dotcanvas/internal/shell"
	"dotcanvas/internal/tui"
)

type rootFlags struct {
	dev        bool
	configPath string
	cellWidth  int
	cellHeight int
	fps        int
	logPath    string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "dotcanvas",
		Short: "Pannable, zoomable infinite dot canvas for the terminal",
		Long: `dotcanvas draws an infinite grid of dots. Drag with the left mouse button
to pan, hold ctrl and scroll to zoom, right-click for the overlay menu.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := openLogger(f.logPath, f.verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			mode := shell.DetectMode(os.Getenv)
			if f.dev {
				mode = shell.Development
			}
			return shell.Run(cmd.Context(), shell.Options{
				Mode:       mode,
				ConfigPath: f.configPath,
				Logger:     logger,
				UI: tui.Options{
					CellWidth:  f.cellWidth,
					CellHeight: f.cellHeight,
					FPS:        f.fps,
				},
			})
		},
	}

	cmd.Flags().BoolVar(&f.dev, "dev", false, "Development mode: read ./dotcanvas.yaml and reload it on change")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Config file (overrides the mode default)")
	cmd.Flags().IntVar(&f.cellWidth, "cell-width", 8, "Pixels per terminal column")
	cmd.Flags().IntVar(&f.cellHeight, "cell-height", 16, "Pixels per terminal row")
	cmd.Flags().IntVar(&f.fps, "fps", 60, "Redraw rate while dragging")
	cmd.Flags().StringVar(&f.logPath, "log", "", "Write logs to this file")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Include debug logs")

	return cmd
}

// openLogger routes slog output to a file, since the terminal belongs to the
// UI. Without a path logs are discarded.
func openLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "dotcanvas")
	if err != nil {
		return nil, nil, err
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
