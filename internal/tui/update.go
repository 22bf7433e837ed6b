package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/validation"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case submitDoneMsg, resetDoneMsg, copyDoneMsg:
		m.busy = false
		m.syncInputs()
		m.collectNotices()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// An open alert swallows the next key, like a modal dialog.
	if len(m.alerts) > 0 {
		m.alerts = m.alerts[1:]
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.busy = true
		return m, submitCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Reset):
		m.busy = true
		return m, resetCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Copy):
		if !m.ctrl.CopyEnabled() {
			return m, nil
		}
		m.busy = true
		return m, copyCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	}

	if m.onUnit() {
		if key.Matches(msg, m.keys.Unit) {
			next := validation.NextFontUnit(m.ctrl.Field(form.FieldFontUnit))
			m.ctrl.SetField(form.FieldFontUnit, next)
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.ctrl.SetField(m.fields[m.focus], after)
	}
	return m, cmd
}
