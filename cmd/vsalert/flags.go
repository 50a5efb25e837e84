package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/config"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// alertFlags describe a dialog on the command line. Set flags override the
// alert section of the configuration file.
type alertFlags struct {
	title          string
	description    string
	imagePath      string
	style          string
	textColor      string
	titleTextColor string
	actions        []string
	fields         []string
}

func bindAlertFlags(cmd *cobra.Command, f *alertFlags) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Alert title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Alert description")
	cmd.Flags().StringVar(&f.imagePath, "image", "", "File holding text art drawn above the title")
	cmd.Flags().StringVarP(&f.style, "style", "s", "", "Presentation style (alert, walkthrough, action_sheet)")
	cmd.Flags().StringVar(&f.textColor, "text-color", "", "Text color for this alert")
	cmd.Flags().StringVar(&f.titleTextColor, "title-color", "", "Title color for this alert")
	cmd.Flags().StringArrayVarP(&f.actions, "action", "a", nil, "Action as label[:kind], kind is default, destructive or cancel (repeatable)")
	cmd.Flags().StringArrayVarP(&f.fields, "field", "f", nil, "Text field as placeholder[:secure] (repeatable)")
}

// spec merges the flags over base. A nil base starts from an empty alert.
func (f *alertFlags) spec(base *config.AlertSpec) (*config.AlertSpec, error) {
	spec := config.AlertSpec{}
	if base != nil {
		spec = *base
	}

	setIfNotEmpty(&spec.Title, f.title)
	setIfNotEmpty(&spec.Description, f.description)
	setIfNotEmpty(&spec.Style, f.style)
	setIfNotEmpty(&spec.TextColor, f.textColor)
	setIfNotEmpty(&spec.TitleTextColor, f.titleTextColor)

	if f.imagePath != "" {
		art, err := os.ReadFile(f.imagePath)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		spec.Image = string(art)
	}

	if len(f.actions) > 0 {
		spec.Actions = make([]config.ActionSpec, 0, len(f.actions))
		for _, raw := range f.actions {
			spec.Actions = append(spec.Actions, parseActionFlag(raw))
		}
	}

	if len(f.fields) > 0 {
		spec.TextFields = make([]config.FieldSpec, 0, len(f.fields))
		for i, raw := range f.fields {
			field, err := parseFieldFlag(raw)
			if err != nil {
				return nil, err
			}
			field.Name = fmt.Sprintf("field%d", i+1)
			spec.TextFields = append(spec.TextFields, field)
		}
	}

	if err := config.ValidateConfig(&config.Config{Alert: &spec}); err != nil {
		return nil, err
	}
	return &spec, nil
}

// parseActionFlag splits "label:kind". A suffix that is not a known kind is
// part of the label.
func parseActionFlag(raw string) config.ActionSpec {
	if i := strings.LastIndex(raw, ":"); i >= 0 {
		if _, err := alert.ParseKind(raw[i+1:]); err == nil && raw[i+1:] != "" {
			return config.ActionSpec{Label: raw[:i], Kind: raw[i+1:]}
		}
	}
	return config.ActionSpec{Label: raw}
}

func parseFieldFlag(raw string) (config.FieldSpec, error) {
	placeholder, option, found := strings.Cut(raw, ":")
	if !found {
		return config.FieldSpec{Placeholder: raw}, nil
	}
	switch option {
	case "secure":
		return config.FieldSpec{Placeholder: placeholder, Secure: true}, nil
	case "":
		return config.FieldSpec{Placeholder: placeholder}, nil
	default:
		return config.FieldSpec{}, fmt.Errorf("field %q: unknown option %q", raw, option)
	}
}

// dialogFromFlags loads the configuration and builds the dialog it and the
// flags describe, along with the terminal metrics to present it with.
func dialogFromFlags(flags *rootFlags, af *alertFlags, handlers config.HandlerFunc) (*alert.Dialog, error) {
	cfg, err := flags.loadConfig()
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Check the file exists and is valid YAML.")
	}

	spec, err := af.spec(cfg.Alert)
	if err != nil {
		return nil, newCommandError("read alert", "command line flags", err, "Run with --help to see the accepted flag formats.")
	}

	defaults := alert.NewDefaults()
	cfg.Style.Apply(defaults)

	d, err := spec.Build(handlers, alert.WithDefaults(defaults), alert.WithMetrics(cfg.Metrics.Resolve()))
	if err != nil {
		return nil, newCommandError("build alert", "alert definition", err, "Check the style and action kinds.")
	}
	return d, nil
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// terminalSize reports the size of w when it is a terminal.
func terminalSize(w io.Writer) (int, int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
