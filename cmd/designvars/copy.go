package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/clipboard"
	"github.com/alexisbeaulieu97/designvars/internal/form"
)

func newCopyCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the generated CSS to the system clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, rootFlags)
		},
	}
}

func runCopy(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := openApp(cmd, rootFlags, "copy css", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	store, err := app.openStore(ctx, "copy css")
	if err != nil {
		return err
	}

	ctrl := app.controller(store,
		form.WithNotifier(printNotices(cmd.OutOrStdout())),
		form.WithClipboard(newClipboard()),
	)

	if err := ctrl.Copy(ctx); err != nil {
		switch {
		case errors.Is(err, form.ErrNothingToCopy):
			return newCommandError("copy css", "checking saved variables", err, "Add a variable with 'designvars add' first.")
		case errors.Is(err, clipboard.ErrUnsupported):
			return newCommandError("copy css", "accessing the clipboard", err, "Install xclip, xsel or wl-clipboard, or use 'designvars css' instead.")
		default:
			return newCommandError("copy css", "writing to the clipboard", err, "Use 'designvars css' and copy the output manually.")
		}
	}
	return nil
}
