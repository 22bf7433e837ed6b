// Package tui renders the design variable form in the terminal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designvars/internal/form"
)

// Model is the bubbletea state for the form.
type Model struct {
	ctx     context.Context
	ctrl    *form.Controller
	notices *NoticeQueue

	keys   keyMap
	help   help.Model
	inputs []textinput.Model
	fields []form.Field
	focus  int

	alerts   []form.Notice
	busy     bool
	quitting bool
	width    int
}

// NewModel builds a form model over ctrl. notices must be the notifier the
// controller was created with.
func NewModel(ctx context.Context, ctrl *form.Controller, notices *NoticeQueue) Model {
	fields := []form.Field{form.FieldColorName, form.FieldColorValue}
	if ctrl.Layout().SupportsFonts() {
		fields = append(fields, form.FieldFontName, form.FieldFontSize)
	}

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		notices: notices,
		keys:    defaultKeyMap(),
		help:    help.New(),
		inputs:  initialInputs(fields),
		fields:  fields,
	}
	m.syncInputs()
	m.setFocus(0)
	return m
}

var placeholders = map[form.Field]string{
	form.FieldColorName:  "primary",
	form.FieldColorValue: "#3366ff or hsl(220, 100%, 60%)",
	form.FieldFontName:   "heading",
	form.FieldFontSize:   "1.5",
}

var labels = map[form.Field]string{
	form.FieldColorName:  "Color name",
	form.FieldColorValue: "Color",
	form.FieldFontName:   "Font name",
	form.FieldFontSize:   "Font size",
	form.FieldFontUnit:   "Unit",
}

func initialInputs(fields []form.Field) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		t := textinput.New()
		t.Placeholder = placeholders[f]
		t.CharLimit = 64
		t.Width = 36
		t.Prompt = "› "
		t.PromptStyle = promptStyle
		inputs[i] = t
	}
	return inputs
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Alerts returns the notices waiting to be dismissed, oldest first.
func (m Model) Alerts() []form.Notice {
	return append([]form.Notice(nil), m.alerts...)
}

// Busy reports whether an action is still running.
func (m Model) Busy() bool {
	return m.busy
}

// Focused returns the field under the cursor.
func (m Model) Focused() form.Field {
	if m.focus < len(m.fields) {
		return m.fields[m.focus]
	}
	return form.FieldFontUnit
}

func (m Model) focusable() int {
	if m.ctrl.Layout().SupportsFonts() {
		return len(m.inputs) + 1
	}
	return len(m.inputs)
}

func (m Model) onUnit() bool {
	return m.focus == len(m.inputs)
}

func (m *Model) setFocus(i int) {
	n := m.focusable()
	m.focus = ((i % n) + n) % n
	for idx := range m.inputs {
		if idx == m.focus {
			m.inputs[idx].Focus()
		} else {
			m.inputs[idx].Blur()
		}
	}
}

// syncInputs copies controller field values into the text inputs, which
// matters after a submit clears the applied pairs.
func (m *Model) syncInputs() {
	for i, f := range m.fields {
		if v := m.ctrl.Field(f); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) collectNotices() {
	if m.notices == nil {
		return
	}
	m.alerts = append(m.alerts, m.notices.Drain()...)
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, ctrl *form.Controller, notices *NoticeQueue) error {
	p := tea.NewProgram(NewModel(ctx, ctrl, notices), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
