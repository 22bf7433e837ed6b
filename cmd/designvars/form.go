package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/tui"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func runForm(cmd *cobra.Command, flags *rootFlags) error {
	app, err := openApp(cmd, flags, "open form", logQuiet)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	store, err := app.openStore(ctx, "open form")
	if err != nil {
		return err
	}

	notices := tui.NewNoticeQueue()
	ctrl := app.controller(store, form.WithNotifier(notices), form.WithClipboard(newClipboard()))

	if err := runTUI(ctx, ctrl, notices); err != nil {
		app.log.Error(err, "form exited with error")
		return newCommandError("open form", "running the terminal UI", err, "Run designvars from an interactive terminal, or use the add and css commands.")
	}
	return nil
}
