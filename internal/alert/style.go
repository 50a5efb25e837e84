package alert

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTextColor is the built-in text color used when nothing else is set.
const DefaultTextColor = lipgloss.Color("252")

// Defaults holds process-wide style settings that every dialog falls back to.
// Writes are serialized; readers see either the value before or after a
// concurrent write, and the last write wins.
type Defaults struct {
	mu             sync.RWMutex
	textColor      lipgloss.Color
	titleTextColor lipgloss.Color
}

// NewDefaults returns settings holding the built-in text color and no title color.
func NewDefaults() *Defaults {
	return &Defaults{textColor: DefaultTextColor}
}

var globalDefaults = NewDefaults()

// GlobalDefaults returns the process-wide style settings used by dialogs that
// were not given their own Defaults.
func GlobalDefaults() *Defaults {
	return globalDefaults
}

// TextColor returns the default text color.
func (d *Defaults) TextColor() lipgloss.Color {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.textColor
}

// SetTextColor replaces the default text color. An empty color restores
// DefaultTextColor.
func (d *Defaults) SetTextColor(c lipgloss.Color) {
	if c == "" {
		c = DefaultTextColor
	}
	d.mu.Lock()
	d.textColor = c
	d.mu.Unlock()
}

// TitleTextColor returns the default title color, or "" when unset.
func (d *Defaults) TitleTextColor() lipgloss.Color {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.titleTextColor
}

// SetTitleTextColor replaces the default title color. An empty color unsets
// it so titles follow the text color.
func (d *Defaults) SetTitleTextColor(c lipgloss.Color) {
	d.mu.Lock()
	d.titleTextColor = c
	d.mu.Unlock()
}

// Overrides are per-dialog style settings. Empty fields defer to Defaults.
type Overrides struct {
	TextColor      lipgloss.Color
	TitleTextColor lipgloss.Color
}

// ResolvedStyle is the outcome of the cascade at a single point in time.
type ResolvedStyle struct {
	TextColor      lipgloss.Color
	TitleTextColor lipgloss.Color
}

// EffectiveTextColor resolves the text color for d right now.
func EffectiveTextColor(d *Dialog) lipgloss.Color {
	if d.overrides.TextColor != "" {
		return d.overrides.TextColor
	}
	return d.defaults.TextColor()
}

// EffectiveTitleTextColor resolves the title color for d right now, falling
// back to the effective text color when neither tier sets one.
func EffectiveTitleTextColor(d *Dialog) lipgloss.Color {
	if d.overrides.TitleTextColor != "" {
		return d.overrides.TitleTextColor
	}
	if c := d.defaults.TitleTextColor(); c != "" {
		return c
	}
	return EffectiveTextColor(d)
}

// Resolve snapshots both effective colors for d.
func Resolve(d *Dialog) ResolvedStyle {
	return ResolvedStyle{
		TextColor:      EffectiveTextColor(d),
		TitleTextColor: EffectiveTitleTextColor(d),
	}
}
