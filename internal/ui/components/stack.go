package components

import (
	"github.com/alexisbeaulieu97/vsalert/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Stack arranges children top to bottom.
type Stack struct {
	BaseComponent
	children []ui.Renderable
	gap      int
	align    Alignment
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every non-nil child in order, separated by gap
// blank rows. Zero-height spacers contribute nothing, and a stack with
// nothing to draw renders as the empty string.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children)*2)
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if spacer, ok := child.(*Spacer); ok && spacer.Height() <= 0 {
			continue
		}
		if len(views) > 0 && s.gap > 0 {
			views = append(views, VerticalSpacer(s.gap).ViewWithContext(ctx))
		}
		views = append(views, render(child, ctx))
	}

	if len(views) == 0 {
		return ""
	}
	style := s.ComputeStyle(ctx.Theme)
	return style.Render(lipgloss.JoinVertical(s.align.ToLipglossPosition(), views...))
}

// WithGap sets the blank rows inserted between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross-axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
