package components

import "strings"

// Spacer renders blank rows.
type Spacer struct {
	height int
}

// VerticalSpacer creates a spacer of the given height.
func VerticalSpacer(height int) *Spacer {
	return &Spacer{height: height}
}

// View renders the spacer with the default context.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders height rows as wide as the context.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	if s.height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(ctx.Width, 0))
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
