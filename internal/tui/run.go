package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/logger"
	"github.com/alexisbeaulieu97/vsalert/internal/ui/components"
)

// RunOptions configures Run.
type RunOptions struct {
	Width  int
	Height int
	Theme  *components.Theme
	Logger *logger.Logger
	Input  io.Reader
	Output io.Writer
	// AltScreen draws the dialog on the alternate screen buffer.
	AltScreen bool
	Hints     bool
}

// Run presents d in a bubbletea program and blocks until an action is
// activated or the dialog is dismissed. Presentation errors, including
// NotImplementedError for action sheets, are returned before any drawing.
func Run(ctx context.Context, d *alert.Dialog, opts RunOptions) (Result, error) {
	host := NewHost(opts.Width, opts.Height, opts.Logger)
	if err := d.Present(host); err != nil {
		return Result{}, err
	}

	modelOpts := []ModelOption{WithHints(opts.Hints)}
	if opts.Theme != nil {
		modelOpts = append(modelOpts, WithTheme(*opts.Theme))
	}
	model := NewModel(host, modelOpts...)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		d.Dismiss()
		return Result{}, fmt.Errorf("run alert program: %w", err)
	}

	result := final.(Model).Result()
	if !final.(Model).Done() {
		d.Dismiss()
		result.Dismissed = true
	}
	return result, nil
}
