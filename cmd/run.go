package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"renamefiles/internal/logging"
	"renamefiles/internal/pattern"
	"renamefiles/internal/processor"
	"renamefiles/internal/tui"
)

func run(cmd *cobra.Command, cfg config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	opts := processor.Options{
		Root:        cfg.dir,
		Pattern:     cfg.pattern,
		Replacement: cfg.replacement,
		Recurse:     cfg.recurse,
		Preview:     cfg.preview,
		Logger:      logging.New(cmd.ErrOrStderr(), cfg.logLevel),
	}

	printer := tui.NewPrinter(out)
	fsys := afero.NewOsFs()

	var summary processor.Summary
	var err error
	if !cfg.plain && isTerminal(out) {
		summary, err = runInteractive(ctx, fsys, opts, out, printer)
	} else {
		summary, err = processor.Run(ctx, fsys, opts, printer)
	}

	// Configuration errors stop the run before traversal; there is no
	// count to report.
	if isConfigError(err) {
		tui.NewPrinter(cmd.ErrOrStderr()).Hint(err)
		return err
	}

	printer.Summary(summary)
	return err
}

func isConfigError(err error) bool {
	return errors.Is(err, pattern.ErrInvalidPattern) || errors.Is(err, pattern.ErrAmbiguousSyntax)
}

// runInteractive drives the live view. If the view cannot start or exits
// early, report lines go to fallback instead.
func runInteractive(ctx context.Context, fsys afero.Fs, opts processor.Options, out io.Writer, fallback processor.Reporter, programOpts ...tea.ProgramOption) (processor.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan processor.Event, 64)
	programOpts = append([]tea.ProgramOption{tea.WithOutput(out)}, programOpts...)
	program := tea.NewProgram(tui.NewModel(events, cancel), programOpts...)

	var uiErr error
	uiDone := make(chan struct{})
	go func() {
		_, uiErr = program.Run()
		close(uiDone)
	}()

	reporter := tui.ChannelReporter{Events: events, Done: uiDone, Fallback: fallback}
	summary, err := processor.Run(ctx, fsys, opts, reporter)
	close(events)
	<-uiDone

	if uiErr != nil {
		logger := opts.Logger
		if logger == nil {
			logger = logging.Discard()
		}
		logger.Warn("live view unavailable, printing plain report", "err", uiErr)
		reporter.Drain()
	}
	return summary, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
