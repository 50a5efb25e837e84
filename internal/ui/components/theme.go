package components

import "github.com/charmbracelet/lipgloss"

// Palette holds the semantic colors used by alert components.
type Palette struct {
	Text        lipgloss.Color
	Title       lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Focus       lipgloss.Color
	OnFocus     lipgloss.Color
	Destructive lipgloss.Color
	Surface     lipgloss.Color
}

// Theme bundles the palette with the frame settings of a dialog.
type Theme struct {
	Palette Palette
	Border  lipgloss.Border
	// PaddingX is the blank columns between the border and the content.
	PaddingX int
}

// DefaultTheme returns the stock dark-terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: Palette{
			Text:        lipgloss.Color("252"),
			Title:       lipgloss.Color("255"),
			Muted:       lipgloss.Color("241"),
			Border:      lipgloss.Color("240"),
			Focus:       lipgloss.Color("99"),
			OnFocus:     lipgloss.Color("255"),
			Destructive: lipgloss.Color("196"),
			Surface:     lipgloss.Color("235"),
		},
		Border:   lipgloss.RoundedBorder(),
		PaddingX: 1,
	}
}

// Normalize fills empty palette entries from DefaultTheme.
func (t Theme) Normalize() Theme {
	d := DefaultTheme()
	fill := func(c *lipgloss.Color, fallback lipgloss.Color) {
		if *c == "" {
			*c = fallback
		}
	}
	fill(&t.Palette.Text, d.Palette.Text)
	fill(&t.Palette.Title, d.Palette.Title)
	fill(&t.Palette.Muted, d.Palette.Muted)
	fill(&t.Palette.Border, d.Palette.Border)
	fill(&t.Palette.Focus, d.Palette.Focus)
	fill(&t.Palette.OnFocus, d.Palette.OnFocus)
	fill(&t.Palette.Destructive, d.Palette.Destructive)
	fill(&t.Palette.Surface, d.Palette.Surface)
	if t.Border.Top == "" {
		t.Border = d.Border
	}
	return t
}

// Foreground applies a palette color chosen by pick.
func Foreground(pick func(Palette) lipgloss.Color) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c := pick(theme.Palette); c != "" {
			return base.Foreground(c)
		}
		return base
	}
}

// Bold makes text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}
