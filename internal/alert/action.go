package alert

import (
	"fmt"
	"strings"
)

// Kind classifies an action for ordering and visual treatment.
type Kind int

const (
	KindDefault Kind = iota
	KindDestructive
	KindCancel
)

var kindNames = map[Kind]string{
	KindDefault:     "default",
	KindDestructive: "destructive",
	KindCancel:      "cancel",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a textual kind into a Kind. The empty string and
// "normal" map to KindDefault.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "normal":
		return KindDefault, nil
	case "destructive":
		return KindDestructive, nil
	case "cancel":
		return KindCancel, nil
	default:
		return KindDefault, fmt.Errorf("unknown action kind %q", s)
	}
}

// Handler runs when the user selects an action. A returned error is passed
// back to whoever triggered the activation.
type Handler func() error

// Action is one selectable choice on a dialog. Actions are immutable once
// constructed and compared by identity.
type Action struct {
	label   string
	kind    Kind
	handler Handler
}

// NewAction creates an action. A nil handler is allowed and does nothing when
// the action is selected.
func NewAction(label string, kind Kind, handler Handler) *Action {
	return &Action{label: label, kind: kind, handler: handler}
}

// Label returns the action's text.
func (a *Action) Label() string {
	return a.label
}

// Kind returns the action's kind.
func (a *Action) Kind() Kind {
	return a.kind
}

func (a *Action) invoke() error {
	if a.handler == nil {
		return nil
	}
	return a.handler()
}
