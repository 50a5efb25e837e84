package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/config"
	"github.com/alexisbeaulieu97/vsalert/internal/logger"
	"github.com/alexisbeaulieu97/vsalert/internal/tui"
	alerterrors "github.com/alexisbeaulieu97/vsalert/pkg/errors"
)

type showOptions struct {
	alert      alertFlags
	altScreen  bool
	noHints    bool
	yamlOutput bool
	reveal     bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an alert and print the chosen action",
		Long: `Show an alert in the terminal and wait for the user to pick an action.

The alert is drawn on stderr; the chosen action and the text field values are
printed on stdout. Dismissing the alert with esc exits with status 0 and
prints nothing for the action.`,
		Example: `  vsalert show -t "Delete item?" -d "This cannot be undone." -a Delete:destructive -a Cancel:cancel
  vsalert show -c alert.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts)
		},
	}

	bindAlertFlags(cmd, &opts.alert)
	cmd.Flags().BoolVar(&opts.altScreen, "alt-screen", false, "Draw on the alternate screen")
	cmd.Flags().BoolVar(&opts.noHints, "no-hints", false, "Hide the key hints under the alert")
	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Print the result as YAML")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "Print the values of secure fields")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions) error {
	log, err := rootFlags.logger(cmd)
	if err != nil {
		return err
	}

	d, err := dialogFromFlags(rootFlags, &opts.alert, actionLogger(log))
	if err != nil {
		return err
	}
	if len(d.Actions()) == 0 {
		if err := d.AddAction(alert.NewAction("OK", alert.KindDefault, nil)); err != nil {
			return err
		}
	}

	width, height, ok := terminalSize(cmd.ErrOrStderr())
	if !ok {
		width, height = fallbackWidth, fallbackHeight
	}

	result, err := tui.Run(cmd.Context(), d, tui.RunOptions{
		Width:     width,
		Height:    height,
		Logger:    log,
		Input:     cmd.InOrStdin(),
		Output:    cmd.ErrOrStderr(),
		AltScreen: opts.altScreen,
		Hints:     !opts.noHints,
	})
	if err != nil {
		suggestion := "Run vsalert from an interactive terminal."
		if errors.Is(err, alerterrors.ErrNotImplemented) {
			suggestion = "Use the alert or walkthrough style."
		}
		return newCommandError("show alert", d.Style().String()+" style", err, suggestion)
	}
	if result.Err != nil {
		return fmt.Errorf("action %q: %w", result.Action, result.Err)
	}

	report := newShowReport(d, result, opts.reveal)
	if opts.yamlOutput {
		return yaml.NewEncoder(cmd.OutOrStdout()).Encode(report)
	}
	return renderShowText(cmd, report)
}

// actionLogger gives every declared action a handler that records the choice.
func actionLogger(log *logger.Logger) config.HandlerFunc {
	return func(spec config.ActionSpec) alert.Handler {
		return func() error {
			log.WithFields(map[string]any{"label": spec.Label, "kind": spec.Kind}).Info("action selected")
			return nil
		}
	}
}

type showReport struct {
	Action    string        `yaml:"action,omitempty"`
	Dismissed bool          `yaml:"dismissed"`
	Fields    []fieldReport `yaml:"fields,omitempty"`
}

type fieldReport struct {
	Placeholder string `yaml:"placeholder,omitempty"`
	Secure      bool   `yaml:"secure,omitempty"`
	Value       string `yaml:"value"`
}

func newShowReport(d *alert.Dialog, result tui.Result, reveal bool) showReport {
	report := showReport{Action: result.Action, Dismissed: result.Dismissed}
	for i, field := range d.TextFields() {
		value := field.Value()
		if i < len(result.Fields) {
			value = result.Fields[i]
		}
		if field.Secure() && !reveal {
			value = ""
		}
		report.Fields = append(report.Fields, fieldReport{
			Placeholder: field.Placeholder(),
			Secure:      field.Secure(),
			Value:       value,
		})
	}
	return report
}

func renderShowText(cmd *cobra.Command, report showReport) error {
	out := cmd.OutOrStdout()
	if report.Action != "" {
		fmt.Fprintln(out, report.Action)
	}
	for _, field := range report.Fields {
		fmt.Fprintln(out, field.Value)
	}
	return nil
}
