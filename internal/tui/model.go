package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/ui/components"
)

// Result describes how a presented dialog ended.
type Result struct {
	// Action is the label of the activated action; empty when dismissed.
	Action    string
	Dismissed bool
	// Fields holds the text field values in registration order.
	Fields []string
	// Err is the error returned by the activated action's handler.
	Err error
}

// Model is the bubbletea model that draws a presented dialog and routes keys
// to its fields and actions.
type Model struct {
	host   *Host
	dialog *alert.Dialog
	theme  components.Theme
	hints  bool

	focus  int
	width  int
	height int
	result Result
	done   bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithTheme sets the component theme.
func WithTheme(theme components.Theme) ModelOption {
	return func(m *Model) {
		m.theme = theme.Normalize()
	}
}

// WithHints toggles the key hint line under the dialog.
func WithHints(show bool) ModelOption {
	return func(m *Model) {
		m.hints = show
	}
}

// NewModel creates a model for the dialog currently shown on host.
func NewModel(host *Host, opts ...ModelOption) Model {
	width, height := host.Viewport()
	m := Model{
		host:   host,
		dialog: host.Dialog(),
		theme:  components.DefaultTheme(),
		hints:  true,
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init focuses the first text field, or the first action when there are none.
func (m Model) Init() tea.Cmd {
	return m.setFocus(0)
}

// Result returns the outcome once the dialog is gone.
func (m Model) Result() Result {
	return m.result
}

// Done reports whether the dialog was activated or dismissed.
func (m Model) Done() bool {
	return m.done
}

// Focus returns the focused position: text fields first, then actions in
// rendered order.
func (m Model) Focus() int {
	return m.focus
}

func (m Model) focusables() int {
	layout := m.host.Layout()
	if layout == nil {
		return 0
	}
	return len(m.host.fields) + len(layout.Actions())
}

func (m Model) focusedField() *Field {
	if m.focus < len(m.host.fields) {
		return m.host.fields[m.focus]
	}
	return nil
}

// setFocus moves focus to index and returns the textinput focus command.
func (m *Model) setFocus(index int) tea.Cmd {
	count := m.focusables()
	if count == 0 {
		m.focus = 0
		return nil
	}
	m.focus = ((index % count) + count) % count

	for _, f := range m.host.fields {
		f.blur()
	}
	if f := m.focusedField(); f != nil {
		return f.focus()
	}
	return nil
}

func (m *Model) finish() {
	m.done = true
	values := make([]string, 0, len(m.host.fields))
	for _, f := range m.host.fields {
		values = append(values, f.Value())
	}
	m.result.Fields = values
}
