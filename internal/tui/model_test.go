package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	alerterrors "github.com/alexisbeaulieu97/vsalert/pkg/errors"
)

func presentDeleteDialog(t *testing.T, fired *[]string) (*Host, *alert.Dialog) {
	t.Helper()

	record := func(label string) alert.Handler {
		return func() error {
			*fired = append(*fired, label)
			return nil
		}
	}

	d := alert.Create("Delete item?", "This cannot be undone.", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, d.AddAction(alert.NewAction("Cancel", alert.KindCancel, record("Cancel"))))
	require.NoError(t, d.AddAction(alert.NewAction("Delete", alert.KindDestructive, record("Delete"))))
	require.NoError(t, d.AddTextField(func(f alert.TextField) { f.SetPlaceholder("Reason") }))

	host := NewHost(80, 24, nil)
	require.NoError(t, d.Present(host))
	return host, d
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModelTypesIntoFocusedFieldAndActivates(t *testing.T) {
	t.Parallel()

	var fired []string
	host, d := presentDeleteDialog(t, &fired)
	m := NewModel(host)
	m.Init()

	require.True(t, host.Fields()[0].Focused())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("old")})
	require.Equal(t, "old", host.Fields()[0].Value())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.Focus())
	require.False(t, host.Fields()[0].Focused())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	require.True(t, m.Done())
	require.Equal(t, Result{Action: "Delete", Fields: []string{"old"}}, m.Result())
	require.Equal(t, []string{"Delete"}, fired)
	require.Equal(t, alert.StateDismissed, d.State())
	require.False(t, host.Visible())
	require.Empty(t, m.View())
}

func TestModelEnterOnFieldAdvancesFocus(t *testing.T) {
	t.Parallel()

	var fired []string
	host, _ := presentDeleteDialog(t, &fired)
	delegate := &recordingDelegate{}
	host.Fields()[0].SetDelegate(delegate)
	m := NewModel(host)
	m.Init()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 1, m.Focus())
	require.Equal(t, 1, delegate.submitted)
	require.Empty(t, fired)
}

func TestModelFocusWraps(t *testing.T) {
	t.Parallel()

	var fired []string
	host, _ := presentDeleteDialog(t, &fired)
	m := NewModel(host)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 2, m.Focus())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 0, m.Focus())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, "Cancel", m.Result().Action)
	require.Equal(t, []string{"Cancel"}, fired)
}

func TestModelEscapeDismissesWithoutHandlers(t *testing.T) {
	t.Parallel()

	var fired []string
	host, d := presentDeleteDialog(t, &fired)
	m := NewModel(host)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	require.True(t, m.Result().Dismissed)
	require.Empty(t, m.Result().Action)
	require.Empty(t, fired)
	require.Equal(t, alert.StateDismissed, d.State())

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	require.Empty(t, fired)
}

func TestModelReportsHandlerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	d := alert.New("", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, d.AddAction(alert.NewAction("Go", alert.KindDefault, func() error { return boom })))
	host := NewHost(80, 24, nil)
	require.NoError(t, d.Present(host))

	m, _ := send(t, NewModel(host), tea.KeyMsg{Type: tea.KeyEnter})

	require.Same(t, boom, m.Result().Err)
	require.Equal(t, "Go", m.Result().Action)
}

func TestModelTracksWindowSize(t *testing.T) {
	t.Parallel()

	var fired []string
	host, d := presentDeleteDialog(t, &fired)
	width := d.Layout().Width
	m := NewModel(host)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	w, h := host.Viewport()
	require.Equal(t, 120, w)
	require.Equal(t, 40, h)
	require.Equal(t, width, d.Layout().Width, "layout is not recomposed")
	require.Equal(t, 40, lipgloss.Height(m.View()))
}

func TestViewRendersSlotsInLayoutOrder(t *testing.T) {
	t.Parallel()

	var fired []string
	host, d := presentDeleteDialog(t, &fired)
	m := NewModel(host, WithHints(false))
	m.width, m.height = 0, 0

	view := m.View()

	require.Equal(t, d.Layout().Height+2, lipgloss.Height(view))
	require.Equal(t, d.Layout().Width, lipgloss.Width(view))
	require.Contains(t, view, "Delete item?")
	require.Contains(t, view, "Reason")
	require.Less(t, strings.Index(view, "Delete item?"), strings.Index(view, "This cannot be undone."))
	require.Less(t, strings.Index(view, "This cannot be undone."), strings.Index(view, "Reason"))
	require.Less(t, strings.LastIndex(view, "Delete"), strings.Index(view, "Cancel"))
}

func TestViewEmptyDialogIsOnlyFrame(t *testing.T) {
	t.Parallel()

	d := alert.New("", "", nil, alert.StyleAlert, alert.WithDefaults(alert.NewDefaults()))
	host := NewHost(80, 24, nil)
	require.NoError(t, d.Present(host))
	require.Zero(t, d.Layout().Height)

	m := NewModel(host, WithHints(false))
	m.width, m.height = 0, 0

	require.Equal(t, 2, lipgloss.Height(m.View()))
}

func TestViewIncludesHints(t *testing.T) {
	t.Parallel()

	var fired []string
	host, _ := presentDeleteDialog(t, &fired)
	m := NewModel(host)

	require.Contains(t, m.View(), hintText)
}

func TestRunRejectsActionSheetBeforeDrawing(t *testing.T) {
	t.Parallel()

	d := alert.New("Pick", "", nil, alert.StyleActionSheet, alert.WithDefaults(alert.NewDefaults()))
	require.NoError(t, d.AddAction(alert.NewAction("OK", alert.KindDefault, nil)))

	result, err := Run(context.Background(), d, RunOptions{Width: 80, Height: 24})

	require.ErrorIs(t, err, alerterrors.ErrNotImplemented)
	require.Equal(t, Result{}, result)
	require.Equal(t, alert.StateUnpresented, d.State())
}
