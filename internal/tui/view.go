package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/ui"
	"github.com/alexisbeaulieu97/vsalert/internal/ui/components"
)

// View draws the dialog centered in the terminal. Nothing is drawn once the
// dialog has been hidden.
func (m Model) View() string {
	if !m.host.Visible() {
		return ""
	}

	box := m.renderDialog()
	if m.hints {
		box = lipgloss.JoinVertical(lipgloss.Center, box, hintStyle.Render(hintText))
	}

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderDialog draws every slot at the row the layout assigned it, so the
// framed content is exactly layout.Height rows tall.
func (m Model) renderDialog() string {
	layout := m.host.Layout()
	theme := m.theme
	theme.PaddingX = max((layout.Width-layout.ContentWidth)/2-1, 0)
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(layout.ContentWidth)

	children := make([]ui.Renderable, 0, len(layout.Slots)*2)
	row, fieldIndex, actionIndex := 0, 0, 0
	for _, slot := range layout.Slots {
		children = append(children, components.VerticalSpacer(slot.Top-row))
		row = slot.Top + slot.Height

		switch slot.Kind {
		case alert.SlotImage:
			children = append(children, components.NewTextLines(slot.Lines...).
				WithHeight(slot.Height).
				WithAlign(components.AlignCenter).
				WithAppliers(components.Foreground(func(p components.Palette) lipgloss.Color { return p.Muted })))

		case alert.SlotTitle:
			children = append(children, components.NewTextLines(slot.Lines...).
				WithHeight(slot.Height).
				WithAlign(components.AlignCenter).
				WithStyle(lipgloss.NewStyle().Foreground(slot.Color).Bold(true)))

		case alert.SlotDescription:
			children = append(children, components.NewTextLines(slot.Lines...).
				WithHeight(slot.Height).
				WithAlign(components.AlignCenter).
				WithStyle(lipgloss.NewStyle().Foreground(slot.Color)))

		case alert.SlotTextField:
			children = append(children, m.renderField(fieldIndex, slot, layout.ContentWidth))
			fieldIndex++

		case alert.SlotAction:
			focused := m.focus == len(m.host.fields)+actionIndex
			children = append(children, components.NewButtonLines(slot.Lines...).
				WithVariant(buttonVariant(slot.Action.Kind())).
				WithHeight(slot.Height).
				WithColor(slot.Color).
				WithFocused(focused))
			actionIndex++
		}
	}

	return components.NewContainer(children...).
		WithWidth(layout.Width).
		ViewWithContext(ctx)
}

func (m Model) renderField(index int, slot alert.Slot, width int) ui.Renderable {
	field := m.host.fields[index]
	style := fieldStyle
	if field.Focused() {
		style = focusedFieldStyle(m.theme)
	}
	return components.NewText(field.view(width)).
		WithHeight(slot.Height).
		WithStyle(style)
}

func buttonVariant(kind alert.Kind) components.ButtonVariant {
	switch kind {
	case alert.KindDestructive:
		return components.ButtonVariantDestructive
	case alert.KindCancel:
		return components.ButtonVariantCancel
	default:
		return components.ButtonVariantDefault
	}
}
