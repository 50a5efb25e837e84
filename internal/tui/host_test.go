package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/logger"
)

func TestHostShowAndHide(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	host := NewHost(80, 24, log)
	d := alert.New("Title", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, d.AddTextField(nil))
	require.NoError(t, d.Present(host))

	require.True(t, host.Visible())
	require.Same(t, d, host.Dialog())
	require.Same(t, d.Layout(), host.Layout())
	require.Len(t, host.Fields(), 1)
	require.Same(t, host.Fields()[0], d.TextFields()[0].(*Field))
	require.Contains(t, buf.String(), "alert shown")

	d.Dismiss()
	require.False(t, host.Visible())
	require.Contains(t, buf.String(), "alert hidden")
}

func TestHostRejectsSecondDialog(t *testing.T) {
	t.Parallel()

	host := NewHost(80, 24, nil)
	first := alert.New("One", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	second := alert.New("Two", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, second.AddTextField(nil))
	require.NoError(t, first.Present(host))

	err := second.Present(host)

	require.ErrorIs(t, err, ErrHostBusy)
	require.Equal(t, alert.StateUnpresented, second.State())
	require.Same(t, first, host.Dialog())
	require.Empty(t, host.Fields())
}

func TestHostIgnoresHideForOtherDialog(t *testing.T) {
	t.Parallel()

	host := NewHost(80, 24, nil)
	shown := alert.New("One", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, shown.Present(host))

	host.Hide(alert.New("Other", "", nil, alert.StyleAlert))
	require.True(t, host.Visible())
}

func TestHostWarnsOnOverflow(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	host := NewHost(80, 2, log)
	d := alert.New("Title", "Body", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, d.Present(host))

	require.Contains(t, buf.String(), "taller than the terminal")
}

func TestFieldSecureAndDelegate(t *testing.T) {
	t.Parallel()

	f := NewField()
	require.False(t, f.Secure())
	require.Empty(t, f.Placeholder())

	delegate := &recordingDelegate{}
	f.SetDelegate(delegate)
	f.SetSecure(true)
	f.SetPlaceholder("Password")
	f.SetValue("pw")
	f.SetValue("pw")

	require.True(t, f.Secure())
	require.Equal(t, "Password", f.Placeholder())
	require.Same(t, delegate, f.Delegate())
	require.Equal(t, []string{"pw"}, delegate.changes)
	require.NotContains(t, f.view(20), "pw")
	require.Contains(t, f.view(20), "••")

	f.SetSecure(false)
	require.False(t, f.Secure())
}

type recordingDelegate struct {
	changes   []string
	submitted int
}

func (r *recordingDelegate) FieldChanged(field alert.TextField) {
	r.changes = append(r.changes, field.Value())
}

func (r *recordingDelegate) FieldSubmitted(alert.TextField) {
	r.submitted++
}
