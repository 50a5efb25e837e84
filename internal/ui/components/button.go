package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects a button's color treatment.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantDestructive
	ButtonVariantCancel
)

// Button is one selectable action row.
type Button struct {
	BaseComponent
	lines   []string
	variant ButtonVariant
	focused bool
	height  int
	color   lipgloss.Color
}

// NewButton creates a button; label may contain pre-wrapped lines.
func NewButton(label string) *Button {
	return NewButtonLines(strings.Split(label, "\n")...)
}

// NewButtonLines creates a button from pre-wrapped label lines.
func NewButtonLines(lines ...string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		lines:         lines,
	}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button centered across the context width.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme).Align(lipgloss.Center)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(strings.Join(fitLines(b.lines, b.height), "\n"))
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)

	text := b.color
	if text == "" {
		text = theme.Palette.Text
	}
	switch b.variant {
	case ButtonVariantDestructive:
		style = style.Foreground(theme.Palette.Destructive)
	case ButtonVariantCancel:
		style = style.Foreground(text).Bold(true)
	default:
		style = style.Foreground(text)
	}

	if b.focused {
		style = style.Background(theme.Palette.Focus).Bold(true)
		if b.variant != ButtonVariantDestructive {
			style = style.Foreground(theme.Palette.OnFocus)
		}
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithFocused marks the button as the current selection.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithHeight fixes the rendered height.
func (b *Button) WithHeight(height int) *Button {
	b.height = height
	return b
}

// WithColor sets the label color for non-destructive variants.
func (b *Button) WithColor(color lipgloss.Color) *Button {
	b.color = color
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the label lines joined by newlines.
func (b *Button) Label() string {
	return strings.Join(b.lines, "\n")
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}
