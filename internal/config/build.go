package config

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
)

// Apply writes the style settings into defaults. Empty fields leave the
// current values alone.
func (s StyleConfig) Apply(defaults *alert.Defaults) {
	if s.TextColor != "" {
		defaults.SetTextColor(lipgloss.Color(s.TextColor))
	}
	if s.TitleTextColor != "" {
		defaults.SetTitleTextColor(lipgloss.Color(s.TitleTextColor))
	}
}

// Resolve overlays the configured extents on alert.DefaultMetrics.
func (m MetricsConfig) Resolve() alert.Metrics {
	out := alert.DefaultMetrics()
	if m.AlertWidth > 0 {
		out.AlertWidth = m.AlertWidth
	}
	if m.WalkthroughMargin != nil {
		out.WalkthroughMargin = *m.WalkthroughMargin
	}
	if m.MinWidth > 0 {
		out.MinWidth = m.MinWidth
	}
	if m.SlotSpacing != nil {
		out.SlotSpacing = *m.SlotSpacing
	}
	if m.ActionSpacing != nil {
		out.ActionSpacing = *m.ActionSpacing
	}
	if m.TextFieldHeight > 0 {
		out.TextFieldHeight = m.TextFieldHeight
	}
	if m.ActionHeight > 0 {
		out.ActionHeight = m.ActionHeight
	}
	if m.MaxImageHeight != nil {
		out.MaxImageHeight = *m.MaxImageHeight
	}
	return out
}

// HandlerFunc supplies the handler for a declared action.
type HandlerFunc func(spec ActionSpec) alert.Handler

// Build creates the dialog described by the spec. handlers may be nil, in
// which case every action gets a no-op handler.
func (a *AlertSpec) Build(handlers HandlerFunc, opts ...alert.Option) (*alert.Dialog, error) {
	style, err := alert.ParseStyle(a.Style)
	if err != nil {
		return nil, err
	}

	var image *alert.Image
	if a.Image != "" {
		image = alert.NewImage(a.Image)
	}

	d := alert.Create(a.Title, a.Description, image, style, opts...)
	if a.TextColor != "" {
		if err := d.SetTextColor(lipgloss.Color(a.TextColor)); err != nil {
			return nil, err
		}
	}
	if a.TitleTextColor != "" {
		if err := d.SetTitleTextColor(lipgloss.Color(a.TitleTextColor)); err != nil {
			return nil, err
		}
	}

	for _, spec := range a.Actions {
		kind, err := alert.ParseKind(spec.Kind)
		if err != nil {
			return nil, err
		}
		var handler alert.Handler
		if handlers != nil {
			handler = handlers(spec)
		}
		if err := d.AddAction(alert.NewAction(spec.Label, kind, handler)); err != nil {
			return nil, err
		}
	}

	for _, spec := range a.TextFields {
		if err := d.AddTextField(func(field alert.TextField) {
			field.SetPlaceholder(spec.Placeholder)
			field.SetSecure(spec.Secure)
			if spec.Value != "" {
				field.SetValue(spec.Value)
			}
		}); err != nil {
			return nil, err
		}
	}

	return d, nil
}
