package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"dotcanvas/internal/settings"
	"dotcanvas/internal/tui"
)

type Options struct {
	Mode       Mode
	ConfigPath string
	UI         tui.Options
	Logger     *slog.Logger
	// ProgramOptions are appended to the defaults, mostly to redirect I/O.
	ProgramOptions []tea.ProgramOption
}

// Run loads the config, starts the canvas and blocks until the user quits or
// ctx is cancelled. Every watcher and listener it registers is released
// before it returns.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	src, err := Resolve(opts.Mode, opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := src.Load()
	if err != nil {
		return err
	}
	log.Info("starting", "mode", src.Mode.String(), "config", src.Path)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = settings.Provide(ctx, settings.NewStore(cfg))

	ui := opts.UI
	if ui.Logger == nil {
		ui.Logger = log
	}
	popts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	p := tea.NewProgram(tui.New(ctx, ui), popts...)

	if src.Mode == Development {
		w, err := Watch(ctx, src.Path,
			func(c settings.GridConfig) { p.Send(tui.ConfigReloadedMsg{Config: c}) },
			func(err error) { p.Send(tui.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			return err
		}
		defer w.Close()
		log.Info("watching config", "path", src.Path)
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run canvas: %w", err)
	}
	log.Info("stopped")
	return nil
}
