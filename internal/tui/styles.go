package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vsalert/internal/ui/components"
)

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	fieldStyle = lipgloss.NewStyle().Underline(true)
)

const hintText = "tab: move • enter: select • esc: dismiss"

func focusedFieldStyle(theme components.Theme) lipgloss.Style {
	return fieldStyle.Foreground(theme.Palette.Focus)
}
