package config

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
)

type stubHost struct{}

func (stubHost) Viewport() (int, int) { return 80, 24 }
func (stubHost) NewTextField() alert.TextField { return alert.NewMemoryField() }
func (stubHost) Show(*alert.Dialog, *alert.Layout) error { return nil }
func (stubHost) Hide(*alert.Dialog) {}

func TestStyleApplySetsDefaults(t *testing.T) {
	t.Parallel()

	defaults := alert.NewDefaults()
	StyleConfig{TitleTextColor: "212"}.Apply(defaults)

	require.Equal(t, alert.DefaultTextColor, defaults.TextColor())
	require.Equal(t, lipgloss.Color("212"), defaults.TitleTextColor())
}

func TestAlertSpecBuild(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sampleYAML), "inline")
	require.NoError(t, err)

	var fired []string
	handlers := func(spec ActionSpec) alert.Handler {
		return func() error {
			fired = append(fired, spec.Label)
			return nil
		}
	}

	d, err := cfg.Alert.Build(handlers, alert.WithDefaults(alert.NewDefaults()), alert.WithMetrics(cfg.Metrics.Resolve()))
	require.NoError(t, err)
	require.Equal(t, "Delete item?", d.Title())
	require.Equal(t, alert.StyleAlert, d.Style())

	require.NoError(t, d.Present(stubHost{}))
	layout := d.Layout()
	require.Equal(t, 50, layout.Width)
	require.Equal(t, []string{"Delete", "Cancel"}, layout.ActionLabels())
	require.Equal(t, "Type DELETE", d.TextFields()[0].Placeholder())

	require.NoError(t, d.Activate(0))
	require.Equal(t, []string{"Delete"}, fired)
}

func TestAlertSpecBuildOverridesAndSecureFields(t *testing.T) {
	t.Parallel()

	spec := &AlertSpec{
		Title:          "Sign in",
		Style:          "walkthrough",
		Image:          "[*]",
		TextColor:      "#ffffff",
		TitleTextColor: "99",
		TextFields:     []FieldSpec{{Placeholder: "Password", Secure: true, Value: "hunter2"}},
	}

	d, err := spec.Build(nil, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, err)
	require.Equal(t, lipgloss.Color("#ffffff"), alert.EffectiveTextColor(d))
	require.Equal(t, lipgloss.Color("99"), alert.EffectiveTitleTextColor(d))

	require.NoError(t, d.Present(stubHost{}))
	field := d.TextFields()[0]
	require.True(t, field.Secure())
	require.Equal(t, "hunter2", field.Value())
	require.True(t, d.Layout().Has(alert.SlotImage))
	require.Equal(t, alert.StyleWalkthroughAlert, d.Layout().Style)
}

func TestAlertSpecBuildRejectsUnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := (&AlertSpec{Style: "popover"}).Build(nil)
	require.Error(t, err)
}

func TestAlertSpecBuildConfiguresEachFieldFromItsOwnSpec(t *testing.T) {
	t.Parallel()

	spec := &AlertSpec{
		TextFields: []FieldSpec{
			{Placeholder: "Username", Value: "ada"},
			{Placeholder: "Password", Secure: true},
		},
	}

	d, err := spec.Build(nil, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, err)
	require.NoError(t, d.Present(stubHost{}))

	fields := d.TextFields()
	require.Len(t, fields, 2)
	require.Equal(t, "Username", fields[0].Placeholder())
	require.Equal(t, "ada", fields[0].Value())
	require.False(t, fields[0].Secure())
	require.Equal(t, "Password", fields[1].Placeholder())
	require.True(t, fields[1].Secure())
}
