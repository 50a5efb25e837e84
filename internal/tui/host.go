package tui

import (
	"errors"

	"github.com/alexisbeaulieu97/vsalert/internal/alert"
	"github.com/alexisbeaulieu97/vsalert/internal/logger"
)

// ErrHostBusy is returned when a second dialog is shown while one is visible.
var ErrHostBusy = errors.New("host is already showing a dialog")

// Host is the terminal rendering collaborator for alert dialogs. It creates
// textinput-backed fields and records the layout it is asked to show; Model
// draws it.
type Host struct {
	width   int
	height  int
	log     *logger.Logger
	dialog  *alert.Dialog
	layout  *alert.Layout
	pending []*Field
	fields  []*Field
	visible bool
}

var _ alert.Host = (*Host)(nil)

// NewHost creates a host for a terminal of the given size. log may be nil.
func NewHost(width, height int, log *logger.Logger) *Host {
	return &Host{width: width, height: height, log: log}
}

// Viewport returns the terminal size.
func (h *Host) Viewport() (int, int) {
	return h.width, h.height
}

// Resize records a new terminal size. Layouts already shown keep their extents.
func (h *Host) Resize(width, height int) {
	h.width = width
	h.height = height
}

// NewTextField creates a control for a text field slot.
func (h *Host) NewTextField() alert.TextField {
	f := NewField()
	h.pending = append(h.pending, f)
	return f
}

// Show makes the layout the visible dialog.
func (h *Host) Show(d *alert.Dialog, layout *alert.Layout) error {
	if h.visible {
		h.pending = nil
		return ErrHostBusy
	}
	h.dialog = d
	h.layout = layout
	h.fields = h.pending
	h.pending = nil
	h.visible = true

	if layout.Overflows(h.height) {
		h.log.WithFields(map[string]any{"height": layout.Height, "viewport": h.height}).
			Warn("alert is taller than the terminal")
	}
	h.log.WithFields(map[string]any{
		"style":   layout.Style.String(),
		"width":   layout.Width,
		"height":  layout.Height,
		"actions": len(layout.Actions()),
		"fields":  len(h.fields),
	}).Debug("alert shown")
	return nil
}

// Hide removes d if it is the visible dialog.
func (h *Host) Hide(d *alert.Dialog) {
	if !h.visible || h.dialog != d {
		return
	}
	h.visible = false
	h.log.Debug("alert hidden")
}

// Visible reports whether a dialog is on screen.
func (h *Host) Visible() bool { return h.visible }

// Dialog returns the dialog most recently shown.
func (h *Host) Dialog() *alert.Dialog { return h.dialog }

// Layout returns the layout most recently shown.
func (h *Host) Layout() *alert.Layout { return h.layout }

// Fields returns the controls of the shown dialog in slot order.
func (h *Host) Fields() []*Field {
	return append([]*Field(nil), h.fields...)
}
