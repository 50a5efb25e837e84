package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text renders one or more lines of styled text.
type Text struct {
	BaseComponent
	lines  []string
	height int
	align  Alignment
}

// NewText creates text from content; embedded newlines start new lines.
func NewText(content string) *Text {
	return NewTextLines(strings.Split(content, "\n")...)
}

// NewTextLines creates text from pre-wrapped lines.
func NewTextLines(lines ...string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		lines:         lines,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text padded or cut to its fixed height.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme).Align(t.align.ToLipglossPosition())
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(strings.Join(fitLines(t.lines, t.height), "\n"))
}

// Lines returns the text lines.
func (t *Text) Lines() []string {
	return t.lines
}

// WithHeight fixes the rendered height; zero keeps the natural height.
func (t *Text) WithHeight(height int) *Text {
	t.height = height
	return t
}

// WithAlign sets horizontal alignment within the context width.
func (t *Text) WithAlign(align Alignment) *Text {
	t.align = align
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// fitLines pads lines with blanks or truncates them so exactly height lines
// remain. A non-positive height returns lines unchanged.
func fitLines(lines []string, height int) []string {
	if height <= 0 {
		return lines
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}
