package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if f := m.focusedField(); f != nil {
		return m, f.update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.dialog.Dismiss()
		m.result.Dismissed = true
		m.finish()
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		return m, m.setFocus(m.focus + 1)

	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFocus(m.focus - 1)

	case tea.KeyEnter:
		if f := m.focusedField(); f != nil {
			f.submit()
			return m, m.setFocus(m.focus + 1)
		}
		return m.activate(m.focus - len(m.host.fields))
	}

	if f := m.focusedField(); f != nil {
		return m, f.update(msg)
	}
	return m, nil
}

// activate fires the index-th rendered action. The core runs the handler and
// dismisses the dialog; the program then quits.
func (m Model) activate(index int) (tea.Model, tea.Cmd) {
	actions := m.host.Layout().Actions()
	if index < 0 || index >= len(actions) {
		return m, nil
	}

	m.result.Action = actions[index].Label()
	m.finish()
	m.result.Err = m.dialog.Activate(index)
	return m, tea.Quit
}
