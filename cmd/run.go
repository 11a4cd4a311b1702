package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"img2pdf/internal/config"
	"img2pdf/internal/processor"
	"img2pdf/internal/tui"
)

func runConvert(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	input := cfg.Input
	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}
	fmt.Fprintf(out, "Input folder: %s\n", input)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	updates := make(chan processor.ProgressUpdate, 64)
	uiDone := make(chan struct{})

	if interactive(out) && !cfg.Debug {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()

		program := tea.NewProgram(tui.NewModel(updates, cancel), tea.WithOutput(out))
		go func() {
			showProgress(out, updates, func() error {
				_, err := program.Run()
				return err
			})
			close(uiDone)
		}()
	} else {
		go func() {
			printProgress(out, updates)
			close(uiDone)
		}()
	}

	summary, err := processor.Run(ctx, cfg, updates)
	close(updates)
	<-uiDone
	if err != nil {
		return err
	}

	output := cfg.Output
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	rows := []tui.SummaryRow{
		{Label: "Files found", Value: fmt.Sprintf("%d", summary.Found)},
		{Label: "Pages added", Value: fmt.Sprintf("%d", summary.Added)},
		{Label: "Files skipped", Value: fmt.Sprintf("%d", summary.Skipped)},
		{Label: "Pages in document", Value: fmt.Sprintf("%d", summary.Pages)},
	}
	fmt.Fprintln(out, tui.RenderSummary(rows))
	fmt.Fprintf(out, "PDF written to: %s\n", output)
	return nil
}

// showProgress runs display until it returns. If display fails, the
// remaining updates are printed as plain lines so the sender never blocks.
func showProgress(out io.Writer, updates <-chan processor.ProgressUpdate, display func() error) {
	if err := display(); err != nil {
		slog.Warn("Progress display stopped", "error", err)
		printProgress(out, updates)
	}
}

// printProgress lists every processed file, one line each, until updates is
// closed.
func printProgress(out io.Writer, updates <-chan processor.ProgressUpdate) {
	for update := range updates {
		res := update.Current
		if res == nil {
			continue
		}
		reason := ""
		if !res.Added && res.Err != nil {
			reason = res.Err.Error()
		}
		fmt.Fprintln(out, tui.RenderFileLine(res.Path, res.File.Properties(), reason))
	}
}

func interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
