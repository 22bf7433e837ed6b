package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/designvars/internal/form"
)

func submitCmd(ctx context.Context, ctrl *form.Controller) tea.Cmd {
	return func() tea.Msg {
		_, err := ctrl.Submit(ctx)
		return submitDoneMsg{err: err}
	}
}

func resetCmd(ctx context.Context, ctrl *form.Controller) tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: ctrl.Reset(ctx)}
	}
}

func copyCmd(ctx context.Context, ctrl *form.Controller) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: ctrl.Copy(ctx)}
	}
}
