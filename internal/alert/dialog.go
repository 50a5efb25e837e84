package alert

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	alerterrors "github.com/alexisbeaulieu97/vsalert/pkg/errors"
)

// State is a dialog's position in its lifecycle.
type State int

const (
	StateUnpresented State = iota
	StatePresented
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateUnpresented:
		return "unpresented"
	case StatePresented:
		return "presented"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Host renders dialogs. It supplies the viewport and the text field
// controls, and reports user activations back through Dialog.Activate.
type Host interface {
	Viewport() (width, height int)
	NewTextField() TextField
	Show(d *Dialog, layout *Layout) error
	Hide(d *Dialog)
}

// Option customizes a Dialog at construction.
type Option func(*Dialog)

// WithDefaults makes the dialog fall back to defaults instead of GlobalDefaults.
func WithDefaults(defaults *Defaults) Option {
	return func(d *Dialog) {
		if defaults != nil {
			d.defaults = defaults
		}
	}
}

// WithMetrics replaces DefaultMetrics for this dialog.
func WithMetrics(m Metrics) Option {
	return func(d *Dialog) {
		d.metrics = m
	}
}

// Dialog is a single modal alert.
type Dialog struct {
	title        string
	description  string
	image        *Image
	style        Style
	actions      []*Action
	fieldConfigs []FieldConfigurator

	defaults  *Defaults
	overrides Overrides
	metrics   Metrics

	state      State
	activating bool
	host       Host
	layout *Layout
	fields []TextField
}

// New creates a dialog. Empty title or description and a nil image are left
// out of the layout entirely.
func New(title, description string, image *Image, style Style, opts ...Option) *Dialog {
	d := &Dialog{
		title:       title,
		description: description,
		image:       image,
		style:       style,
		defaults:    GlobalDefaults(),
		metrics:     DefaultMetrics(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Create is the factory form of New.
func Create(title, description string, image *Image, style Style, opts ...Option) *Dialog {
	return New(title, description, image, style, opts...)
}

// Title returns the dialog title.
func (d *Dialog) Title() string { return d.title }

// Description returns the dialog body text.
func (d *Dialog) Description() string { return d.description }

// Style returns the presentation style.
func (d *Dialog) Style() Style { return d.style }

// State returns the lifecycle state.
func (d *Dialog) State() State { return d.state }

// Actions returns the actions in registration order.
func (d *Dialog) Actions() []*Action {
	return append([]*Action(nil), d.actions...)
}

// Layout returns the layout composed at presentation, or nil before it.
func (d *Dialog) Layout() *Layout { return d.layout }

// TextFields returns the text field handles created at presentation, in
// registration order. It is empty before Present.
func (d *Dialog) TextFields() []TextField {
	return append([]TextField(nil), d.fields...)
}

// AddAction appends an action. Duplicates are kept; nil is rejected.
func (d *Dialog) AddAction(action *Action) error {
	if err := d.requireUnpresented("add action"); err != nil {
		return err
	}
	if action == nil {
		return alerterrors.NewValidationError("action", "is nil", nil)
	}
	d.actions = append(d.actions, action)
	return nil
}

// AddTextField registers a text field. configure runs once when the field's
// control is created during presentation; nil leaves the field at its defaults.
func (d *Dialog) AddTextField(configure FieldConfigurator) error {
	if err := d.requireUnpresented("add text field"); err != nil {
		return err
	}
	d.fieldConfigs = append(d.fieldConfigs, configure)
	return nil
}

// SetTextColor overrides the text color for this dialog only.
func (d *Dialog) SetTextColor(c lipgloss.Color) error {
	if err := d.requireUnpresented("set text color"); err != nil {
		return err
	}
	d.overrides.TextColor = c
	return nil
}

// SetTitleTextColor overrides the title color for this dialog only.
func (d *Dialog) SetTitleTextColor(c lipgloss.Color) error {
	if err := d.requireUnpresented("set title text color"); err != nil {
		return err
	}
	d.overrides.TitleTextColor = c
	return nil
}

// Present resolves the style, orders the actions, composes the layout and
// hands it to host. An action sheet dialog fails with a NotImplementedError
// and the host is never asked to show anything.
//
// When host.Show fails the dialog stays unpresented and may be presented
// again. Each attempt asks the host for fresh text field controls, so every
// configurator runs once per control, and once again on the retry.
func (d *Dialog) Present(host Host) error {
	if err := d.requireUnpresented("present"); err != nil {
		return err
	}
	if host == nil {
		return fmt.Errorf("present: host is nil")
	}

	width, height := host.Viewport()
	layout, err := Compose(d, Resolve(d), Environment{
		ViewportWidth:  width,
		ViewportHeight: height,
		Metrics:        d.metrics,
		NewField:       host.NewTextField,
	})
	if err != nil {
		return fmt.Errorf("present: %w", err)
	}

	if err := host.Show(d, layout); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	d.host = host
	d.layout = layout
	d.fields = layout.Fields()
	d.state = StatePresented
	return nil
}

// Activate selects the index-th action in rendered order. The handler runs
// exactly once, the dialog is dismissed, and the handler's error is returned
// unchanged. Activating again from inside a handler fails.
func (d *Dialog) Activate(index int) error {
	if d.activating {
		return alerterrors.NewInvalidStateError("activate", "activating")
	}
	if d.state != StatePresented {
		return alerterrors.NewInvalidStateError("activate", d.state.String())
	}
	actions := d.layout.Actions()
	if index < 0 || index >= len(actions) {
		return fmt.Errorf("activate: action index %d out of range [0,%d)", index, len(actions))
	}

	d.activating = true
	defer func() {
		d.activating = false
		d.Dismiss()
	}()
	return actions[index].invoke()
}

// Dismiss removes the dialog without running any handler. Dismissing an
// unpresented dialog prevents it from ever being presented.
func (d *Dialog) Dismiss() {
	switch d.state {
	case StateDismissed:
		return
	case StatePresented:
		d.state = StateDismissed
		if d.host != nil {
			d.host.Hide(d)
		}
	default:
		d.state = StateDismissed
	}
}

func (d *Dialog) requireUnpresented(op string) error {
	if d.state != StateUnpresented {
		return alerterrors.NewInvalidStateError(op, d.state.String())
	}
	return nil
}
