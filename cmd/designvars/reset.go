package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/designvars/internal/form"
	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

type resetOptions struct {
	force bool
}

func newResetCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every saved variable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Reset without confirmation")

	return cmd
}

func runReset(cmd *cobra.Command, rootFlags *rootFlags, opts *resetOptions) error {
	app, err := openApp(cmd, rootFlags, "reset variables", logToStderr)
	if err != nil {
		return err
	}
	defer app.Close()

	if !opts.force {
		confirmed, err := confirmReset(cmd)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	ctx := cmd.Context()
	store, err := app.openStore(ctx, "reset variables")
	if err != nil {
		var parseErr *apperrors.ParseError
		if !errors.As(err, &parseErr) {
			return err
		}
		// A corrupt record cannot be loaded, so drop it straight from storage.
		key := app.layout.Key()
		if err := app.kv.Delete(ctx, key); err != nil {
			return newCommandError("reset variables", fmt.Sprintf("removing corrupt record %q", key), err, "Check that the data directory is writable.")
		}
		app.log.Warn("corrupt record discarded")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ All variables have been reset!")
		return nil
	}

	ctrl := app.controller(store, form.WithNotifier(printNotices(cmd.OutOrStdout())))
	if err := ctrl.Reset(ctx); err != nil {
		return newCommandError("reset variables", "removing the saved record", err, "Check that the data directory is writable.")
	}
	return nil
}

func confirmReset(cmd *cobra.Command) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("reset variables", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Remove all saved colors and fonts? [y/N]: ")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
