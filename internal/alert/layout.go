package alert

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	alerterrors "github.com/alexisbeaulieu97/vsalert/pkg/errors"
)

// Style selects the dialog's presentation.
type Style int

const (
	// StyleAlert is a fixed-width centered alert.
	StyleAlert Style = iota
	// StyleWalkthroughAlert stretches to the viewport width minus a margin.
	StyleWalkthroughAlert
	// StyleActionSheet is declared but has no layout; presenting it fails.
	StyleActionSheet
)

func (s Style) String() string {
	switch s {
	case StyleAlert:
		return "alert"
	case StyleWalkthroughAlert:
		return "walkthrough"
	case StyleActionSheet:
		return "action_sheet"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// ParseStyle converts a textual style name into a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alert":
		return StyleAlert, nil
	case "walkthrough", "walkthrough_alert":
		return StyleWalkthroughAlert, nil
	case "action_sheet", "actionsheet":
		return StyleActionSheet, nil
	default:
		return StyleAlert, fmt.Errorf("unknown alert style %q", s)
	}
}

// Metrics are the fixed extents used by composition, in terminal cells.
type Metrics struct {
	// AlertWidth is the outer width of StyleAlert dialogs.
	AlertWidth int
	// WalkthroughMargin is the gap kept on each side of a walkthrough alert.
	WalkthroughMargin int
	// MinWidth is the narrowest a walkthrough alert may become.
	MinWidth int
	// HorizontalInset is the border plus padding on each side of the content.
	HorizontalInset int
	// SlotSpacing separates two adjacent present slots.
	SlotSpacing int
	// ActionSpacing separates two adjacent action rows.
	ActionSpacing int
	// TextFieldHeight is the height of every text field slot.
	TextFieldHeight int
	// ActionHeight is the minimum height of an action row.
	ActionHeight int
	// MaxImageHeight caps the image slot; zero means no cap.
	MaxImageHeight int
}

// DefaultMetrics returns the stock extents.
func DefaultMetrics() Metrics {
	return Metrics{
		AlertWidth:        44,
		WalkthroughMargin: 4,
		MinWidth:          24,
		HorizontalInset:   2,
		SlotSpacing:       1,
		ActionSpacing:     0,
		TextFieldHeight:   1,
		ActionHeight:      1,
		MaxImageHeight:    8,
	}
}

// Image is a block of text art displayed above the title.
type Image struct {
	lines []string
}

// NewImage splits art into rows. Trailing newlines are dropped.
func NewImage(art string) *Image {
	art = strings.TrimRight(art, "\n")
	if art == "" {
		return &Image{}
	}
	return &Image{lines: strings.Split(art, "\n")}
}

// Lines returns the image rows.
func (i *Image) Lines() []string {
	return append([]string(nil), i.lines...)
}

// SlotKind identifies a content region.
type SlotKind int

const (
	SlotImage SlotKind = iota
	SlotTitle
	SlotDescription
	SlotTextField
	SlotAction
)

func (k SlotKind) String() string {
	switch k {
	case SlotImage:
		return "image"
	case SlotTitle:
		return "title"
	case SlotDescription:
		return "description"
	case SlotTextField:
		return "text_field"
	case SlotAction:
		return "action"
	default:
		return fmt.Sprintf("slot(%d)", int(k))
	}
}

// Slot is one present region of the composed dialog.
type Slot struct {
	Kind SlotKind
	// Top is the slot's first row relative to the content origin.
	Top    int
	Height int
	// Lines holds the wrapped text for image, title, description and action slots.
	Lines []string
	Color lipgloss.Color
	// Action is set for action slots.
	Action *Action
	// Field is set for text field slots.
	Field TextField
}

// Layout is the composed structure handed to a Host.
type Layout struct {
	Style        Style
	Width        int
	ContentWidth int
	// Height is the content height; the host adds its own frame.
	Height   int
	Resolved ResolvedStyle
	Slots    []Slot
}

// Actions returns the actions in rendered order.
func (l *Layout) Actions() []*Action {
	var actions []*Action
	for _, slot := range l.Slots {
		if slot.Kind == SlotAction {
			actions = append(actions, slot.Action)
		}
	}
	return actions
}

// ActionLabels returns the action labels in rendered order.
func (l *Layout) ActionLabels() []string {
	actions := l.Actions()
	labels := make([]string, 0, len(actions))
	for _, action := range actions {
		labels = append(labels, action.Label())
	}
	return labels
}

// Fields returns the text field handles in slot order.
func (l *Layout) Fields() []TextField {
	var fields []TextField
	for _, slot := range l.Slots {
		if slot.Kind == SlotTextField {
			fields = append(fields, slot.Field)
		}
	}
	return fields
}

// Has reports whether a slot of the given kind is present.
func (l *Layout) Has(kind SlotKind) bool {
	for _, slot := range l.Slots {
		if slot.Kind == kind {
			return true
		}
	}
	return false
}

// Overflows reports whether the content is taller than viewportHeight.
// Composition never clips or scrolls.
func (l *Layout) Overflows(viewportHeight int) bool {
	return viewportHeight > 0 && l.Height > viewportHeight
}

// Environment carries what composition needs from the host.
type Environment struct {
	ViewportWidth  int
	ViewportHeight int
	Metrics        Metrics
	// NewField creates the control behind a text field slot. Nil falls back
	// to NewMemoryField.
	NewField func() TextField
}

// Compose lays out d using the resolved style. Text field controls are
// created here and their configurators run exactly once.
func Compose(d *Dialog, style ResolvedStyle, env Environment) (*Layout, error) {
	m := env.Metrics

	var width int
	switch d.style {
	case StyleAlert:
		width = m.AlertWidth
	case StyleWalkthroughAlert:
		width = max(env.ViewportWidth-2*m.WalkthroughMargin, m.MinWidth)
	case StyleActionSheet:
		return nil, alerterrors.NewNotImplementedError("action sheet style")
	default:
		return nil, alerterrors.NewNotImplementedError(d.style.String())
	}
	contentWidth := max(width-2*m.HorizontalInset, 1)

	layout := &Layout{
		Style:        d.style,
		Width:        width,
		ContentWidth: contentWidth,
		Resolved:     style,
	}

	if d.image != nil {
		lines := d.image.Lines()
		if m.MaxImageHeight > 0 && len(lines) > m.MaxImageHeight {
			lines = lines[:m.MaxImageHeight]
		}
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, contentWidth, "")
		}
		layout.Slots = append(layout.Slots, Slot{Kind: SlotImage, Height: max(len(lines), 1), Lines: lines})
	}

	if d.title != "" {
		lines := wrap(d.title, contentWidth)
		layout.Slots = append(layout.Slots, Slot{Kind: SlotTitle, Height: len(lines), Lines: lines, Color: style.TitleTextColor})
	}

	if d.description != "" {
		lines := wrap(d.description, contentWidth)
		layout.Slots = append(layout.Slots, Slot{Kind: SlotDescription, Height: len(lines), Lines: lines, Color: style.TextColor})
	}

	newField := env.NewField
	if newField == nil {
		newField = func() TextField { return NewMemoryField() }
	}
	for _, configure := range d.fieldConfigs {
		field := newField()
		if configure != nil {
			configure(field)
		}
		layout.Slots = append(layout.Slots, Slot{Kind: SlotTextField, Height: m.TextFieldHeight, Field: field})
	}

	ordered := OrderActions(d.actions)
	labels := make([][]string, len(ordered))
	rowHeight := m.ActionHeight
	for i, action := range ordered {
		labels[i] = wrap(action.Label(), contentWidth)
		rowHeight = max(rowHeight, len(labels[i]))
	}
	for i, action := range ordered {
		layout.Slots = append(layout.Slots, Slot{Kind: SlotAction, Height: rowHeight, Lines: labels[i], Color: style.TextColor, Action: action})
	}

	layout.Height = stack(layout.Slots, m)
	return layout, nil
}

// stack assigns each slot its Top and returns the total height. Spacing is
// only inserted between two present slots.
func stack(slots []Slot, m Metrics) int {
	top := 0
	for i := range slots {
		if i > 0 {
			if slots[i-1].Kind == SlotAction && slots[i].Kind == SlotAction {
				top += m.ActionSpacing
			} else {
				top += m.SlotSpacing
			}
		}
		slots[i].Top = top
		top += slots[i].Height
	}
	return top
}

func wrap(text string, width int) []string {
	wrapped := ansi.Hardwrap(ansi.Wordwrap(text, width, ""), width, true)
	return strings.Split(wrapped, "\n")
}
