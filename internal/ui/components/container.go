package components

import (
	"strings"

	"github.com/alexisbeaulieu97/vsalert/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container draws a bordered, padded box around a vertical stack of children.
type Container struct {
	BaseComponent
	layout      *Stack
	border      *lipgloss.Border
	borderColor lipgloss.Color
	width       int
}

// NewContainer creates a container holding children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame. The container's own width, when set,
// is its outer width including border and padding; children receive the
// remaining inner width.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	border := theme.Border
	if c.border != nil {
		border = *c.border
	}
	borderColor := c.borderColor
	if borderColor == "" {
		borderColor = theme.Palette.Border
	}

	style := c.ComputeStyle(theme).
		Border(border).
		BorderForeground(borderColor).
		Padding(0, theme.PaddingX)

	outer := c.width
	if outer == 0 {
		outer = ctx.Width
	}
	inner := ctx
	if outer > 0 {
		frame := style.GetHorizontalFrameSize()
		style = style.Width(outer - style.GetHorizontalBorderSize())
		inner = ctx.WithWidth(max(outer-frame, 0))
	}

	body := c.layout.ViewWithContext(inner)
	out := style.Render(body)
	if body == "" && style.GetVerticalPadding() == 0 && style.GetVerticalBorderSize() == 2 {
		// lipgloss always draws one content row; an empty box is just its frame.
		lines := strings.Split(out, "\n")
		out = lines[0] + "\n" + lines[len(lines)-1]
	}
	return out
}

// WithBorder overrides the theme border.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = &border
	return c
}

// WithBorderColor overrides the theme border color.
func (c *Container) WithBorderColor(color lipgloss.Color) *Container {
	c.borderColor = color
	return c
}

// WithWidth sets the outer width.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Children returns the contained renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
