package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/tui"
)

type layoutOptions struct {
	alert   alertFlags
	width   int
	height  int
	preview bool
}

func newLayoutCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compose an alert without showing it and print its layout",
		Long: `Compose an alert for a terminal of the given size and print the resulting
slots, extents and action order as YAML. Nothing waits for input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, rootFlags, opts)
		},
	}

	bindAlertFlags(cmd, &opts.alert)
	cmd.Flags().IntVar(&opts.width, "width", 0, "Viewport width (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Viewport height (defaults to the terminal height)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Print the rendered alert instead of the layout")

	return cmd
}

func runLayout(cmd *cobra.Command, rootFlags *rootFlags, opts *layoutOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return err
	}

	d, err := dialogFromFlags(rootFlags, &opts.alert, nil)
	if err != nil {
		return err
	}

	width, height := viewportSize(cmd, opts.width, opts.height)
	host := tui.NewHost(width, height, log)
	if err := d.Present(host); err != nil {
		return newCommandError("compose alert", d.Style().String()+" style", err, "Use the alert or walkthrough style.")
	}
	defer d.Dismiss()

	if opts.preview {
		view := tui.NewModel(host, tui.WithHints(false)).View()
		_, err := fmt.Fprintln(cmd.OutOrStdout(), view)
		return err
	}

	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(newLayoutReport(d.Layout(), height))
}

// viewportSize prefers explicit flags, then the terminal, then a fixed size.
func viewportSize(cmd *cobra.Command, width, height int) (int, int) {
	termWidth, termHeight, ok := terminalSize(cmd.OutOrStdout())
	if !ok {
		termWidth, termHeight = fallbackWidth, fallbackHeight
	}
	if width <= 0 {
		width = termWidth
	}
	if height <= 0 {
		height = termHeight
	}
	return width, height
}

type layoutReport struct {
	Style          string       `yaml:"style"`
	Width          int          `yaml:"width"`
	ContentWidth   int          `yaml:"content_width"`
	Height         int          `yaml:"height"`
	Overflows      bool         `yaml:"overflows"`
	TextColor      string       `yaml:"text_color"`
	TitleTextColor string       `yaml:"title_text_color"`
	Actions        []string     `yaml:"actions,omitempty"`
	Slots          []slotReport `yaml:"slots"`
}

type slotReport struct {
	Kind        string   `yaml:"kind"`
	Top         int      `yaml:"top"`
	Height      int      `yaml:"height"`
	Lines       []string `yaml:"lines,omitempty"`
	ActionKind  string   `yaml:"action_kind,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Secure      bool     `yaml:"secure,omitempty"`
}

func newLayoutReport(l *alert.Layout, viewportHeight int) layoutReport {
	report := layoutReport{
		Style:          l.Style.String(),
		Width:          l.Width,
		ContentWidth:   l.ContentWidth,
		Height:         l.Height,
		Overflows:      l.Overflows(viewportHeight),
		TextColor:      string(l.Resolved.TextColor),
		TitleTextColor: string(l.Resolved.TitleTextColor),
		Actions:        l.ActionLabels(),
		Slots:          make([]slotReport, 0, len(l.Slots)),
	}
	for _, slot := range l.Slots {
		entry := slotReport{
			Kind:   slot.Kind.String(),
			Top:    slot.Top,
			Height: slot.Height,
			Lines:  slot.Lines,
		}
		if slot.Action != nil {
			entry.ActionKind = slot.Action.Kind().String()
		}
		if slot.Field != nil {
			entry.Placeholder = slot.Field.Placeholder()
			entry.Secure = slot.Field.Secure()
		}
		report.Slots = append(report.Slots, entry)
	}
	return report
}
