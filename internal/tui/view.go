package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/validation"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.alerts) > 0 {
		return m.renderAlert(m.alerts[0])
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("designvars • %s layout", m.ctrl.Layout())),
		m.renderFields(),
		mutedStyle.Render("State: " + m.stateLabel()),
		sectionStyle.Render("Preview"),
		m.renderSwatch(),
		previewStyle.Render(m.ctrl.CSS()),
		m.renderCopyStatus(),
		"",
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) stateLabel() string {
	if m.busy {
		return "working…"
	}
	return m.ctrl.State().String()
}

func (m Model) renderFields() string {
	rows := make([]string, 0, len(m.inputs)+1)
	for i, f := range m.fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, m.label(f, i == m.focus), m.inputs[i].View()))
	}
	if m.ctrl.Layout().SupportsFonts() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, m.label(form.FieldFontUnit, m.onUnit()), m.renderUnits()))
	}
	return strings.Join(rows, "\n")
}

func (m Model) label(f form.Field, focused bool) string {
	if focused {
		return focusedLabel.Render(labels[f])
	}
	return labelStyle.Render(labels[f])
}

func (m Model) renderUnits() string {
	current := m.ctrl.Field(form.FieldFontUnit)
	parts := make([]string, 0, len(validation.FontUnits()))
	for _, u := range validation.FontUnits() {
		if u == current {
			parts = append(parts, selectedUnitStyle.Render(u))
		} else {
			parts = append(parts, unitStyle.Render(u))
		}
	}
	return "  " + strings.Join(parts, " ")
}

func (m Model) renderSwatch() string {
	value := strings.TrimSpace(m.ctrl.Field(form.FieldColorValue))
	if value == "" {
		return mutedStyle.Render("No color entered")
	}
	c, ok := validation.ParseColor(value)
	if !ok {
		return mutedStyle.Render(fmt.Sprintf("%q is not a hex or HSL color", value))
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
	return fmt.Sprintf("%s %s", block, c.Hex())
}

func (m Model) renderCopyStatus() string {
	if m.ctrl.CopyEnabled() {
		return enabledStyle.Render("Copy available (ctrl+y)")
	}
	return mutedStyle.Render("Copy disabled until a variable is added")
}

func (m Model) renderAlert(n form.Notice) string {
	style := alertStyle
	if n.Kind == form.NoticeError {
		style = alertErrorStyle
	}
	box := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(n.Message),
		mutedStyle.Render("press any key to continue"),
	)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	}
	return box
}
