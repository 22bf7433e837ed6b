package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designvars/internal/web"
)

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the variable form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootFlags)
		},
	}

	cmd.Flags().StringVar(&rootFlags.listen, "listen", "", "Address to listen on (default from settings, 127.0.0.1:8080)")

	return cmd
}

func runServe(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := openApp(cmd, rootFlags, "serve form", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	addr := app.settings.Listen

	ctx := cmd.Context()
	store, err := app.openStore(ctx, "serve form")
	if err != nil {
		return err
	}

	srv, err := web.NewServer(store, web.WithLogger(app.log), web.WithDefaultUnit(app.settings.DefaultUnit))
	if err != nil {
		return newCommandError("serve form", "preparing page templates", err, "Reinstall designvars; the embedded templates are damaged.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving designvars on http://%s (Ctrl+C to stop)\n", addr)
	app.log.WithFields(map[string]any{"addr": addr}).Info("web server listening")

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return newCommandError("serve form", fmt.Sprintf("listening on %s", addr), err, "Pick a free address with --listen.")
	}
	return nil
}
