package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
)

const secureEchoCharacter = '•'

// Field is a text field control backed by bubbles/textinput.
type Field struct {
	input    textinput.Model
	delegate alert.FieldDelegate
}

var _ alert.TextField = (*Field)(nil)

// NewField returns an empty, unfocused field with secure entry off.
func NewField() *Field {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	return &Field{input: input}
}

func (f *Field) Placeholder() string { return f.input.Placeholder }

func (f *Field) SetPlaceholder(placeholder string) { f.input.Placeholder = placeholder }

func (f *Field) Secure() bool { return f.input.EchoMode == textinput.EchoPassword }

// SetSecure masks the value with bullets when secure is true.
func (f *Field) SetSecure(secure bool) {
	if secure {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = secureEchoCharacter
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

func (f *Field) Delegate() alert.FieldDelegate { return f.delegate }

func (f *Field) SetDelegate(delegate alert.FieldDelegate) { f.delegate = delegate }

func (f *Field) Value() string { return f.input.Value() }

// SetValue replaces the value and notifies the delegate when it changed.
func (f *Field) SetValue(value string) {
	before := f.input.Value()
	f.input.SetValue(value)
	f.notifyIfChanged(before)
}

// Focused reports whether the field has keyboard focus.
func (f *Field) Focused() bool { return f.input.Focused() }

func (f *Field) focus() tea.Cmd { return f.input.Focus() }

func (f *Field) blur() { f.input.Blur() }

func (f *Field) submit() {
	if f.delegate != nil {
		f.delegate.FieldSubmitted(f)
	}
}

func (f *Field) update(msg tea.Msg) tea.Cmd {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.notifyIfChanged(before)
	return cmd
}

func (f *Field) view(width int) string {
	// one column is reserved for the cursor
	f.input.Width = max(width-1, 1)
	return f.input.View()
}

func (f *Field) notifyIfChanged(before string) {
	if f.delegate != nil && f.input.Value() != before {
		f.delegate.FieldChanged(f)
	}
}
